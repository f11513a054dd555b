package riot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jerok0/riot/report"
)

func Test_ConfigureFromEnv_unsetLeavesDefaults(t *testing.T) {
	t.Setenv(ReporterEnv, "")
	t.Setenv(PlainEnv, "")
	tested := New()
	require.NoError(t, ConfigureFromEnv(tested))
	require.Equal(t, report.KindStory, tested.Options().Reporter)
	require.False(t, tested.Options().ReporterOptions.Plain)
}

func Test_ConfigureFromEnv_appliesReporterAndPlain(t *testing.T) {
	t.Setenv(ReporterEnv, "dots")
	t.Setenv(PlainEnv, "1")
	tested := New()
	require.NoError(t, ConfigureFromEnv(tested))
	require.Equal(t, report.KindDots, tested.Options().Reporter)
	require.True(t, tested.Options().ReporterOptions.Plain)
}

func Test_ConfigureFromEnv_badReporter(t *testing.T) {
	t.Setenv(ReporterEnv, "interpretive-dance")
	t.Setenv(PlainEnv, "")
	tested := New()
	require.Error(t, ConfigureFromEnv(tested))
}
