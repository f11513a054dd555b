package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseKind(t *testing.T) {
	kind, err := ParseKind("dots")
	require.NoError(t, err)
	require.Equal(t, KindDots, kind)

	kind, err = ParseKind("pretty-dots")
	require.NoError(t, err)
	require.Equal(t, KindPrettyDots, kind)

	_, err = ParseKind("interpretive-dance")
	require.Error(t, err)
}

func Test_Kind_String_roundTrip(t *testing.T) {
	for _, kind := range []Kind{KindStory, KindVerboseStory, KindDots, KindPrettyDots, KindSilent} {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}
}

func Test_New_kinds(t *testing.T) {
	require.IsType(t, &story{}, New(KindStory, Options{}))
	require.IsType(t, &story{}, New(KindVerboseStory, Options{}))
	require.IsType(t, &dots{}, New(KindDots, Options{}))
	require.IsType(t, &dots{}, New(KindPrettyDots, Options{}))
	require.IsType(t, &silent{}, New(KindSilent, Options{}))
}

func Test_silent_countsWithoutOutput(t *testing.T) {
	tested := newSilent()
	require.True(t, tested.Success())

	tested.Summarize(func() {
		tested.Describe("ctx", 0)
		tested.Pass("a")
		tested.Fail("b", errTest)
		tested.Error("c", errTest)
	})
	require.False(t, tested.Success())
	require.Equal(t, 1, tested.passes)
	require.Equal(t, 1, tested.failures)
	require.Equal(t, 1, tested.errors)
}
