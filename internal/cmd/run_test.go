package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jerok0/riot"
)

// writeSuiteScript creates an executable shell script standing in for
// a compiled suite binary.
func writeSuiteScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func Test_runCmd_impl_allPassing(t *testing.T) {
	var out bytes.Buffer
	first := writeSuiteScript(t, "first", "echo first ran")
	second := writeSuiteScript(t, "second", "echo second ran")

	tested := runCmd{out: &out}
	code, err := tested.impl([]string{first, second})
	require.NoError(t, err)
	require.Zero(t, code)
	require.Contains(t, out.String(), "first ran")
	require.Contains(t, out.String(), "second ran")
}

func Test_runCmd_impl_adoptsFirstFailure(t *testing.T) {
	var out bytes.Buffer
	marker := filepath.Join(t.TempDir(), "marker")
	failing := writeSuiteScript(t, "failing", "exit 7")
	never := writeSuiteScript(t, "never", "touch "+marker)

	tested := runCmd{out: &out}
	code, err := tested.impl([]string{failing, never})
	require.NoError(t, err)
	require.Equal(t, 7, code)

	// The pipeline stopped: the suite after the failure never ran.
	_, statErr := os.Stat(marker)
	require.True(t, os.IsNotExist(statErr))
}

func Test_runCmd_impl_missingSuite(t *testing.T) {
	var out bytes.Buffer
	tested := runCmd{out: &out}
	code, err := tested.impl([]string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	require.Equal(t, 1, code)
}

func Test_runCmd_impl_forwardsReporterEnv(t *testing.T) {
	var out bytes.Buffer
	suite := writeSuiteScript(t, "env-echo", `echo "reporter=$RIOT_REPORTER"`)

	tested := runCmd{out: &out, reporter: "dots"}
	code, err := tested.impl([]string{suite})
	require.NoError(t, err)
	require.Zero(t, code)
	require.Contains(t, out.String(), "reporter=dots")
}

func Test_runCmd_suiteEnv_flags(t *testing.T) {
	tested := runCmd{reporter: "dots", plain: true}
	env, err := tested.suiteEnv()
	require.NoError(t, err)
	require.Contains(t, env, riot.ReporterEnv+"=dots")
	require.Contains(t, env, riot.PlainEnv+"=1")
}

func Test_runCmd_suiteEnv_flagOverridesConfig(t *testing.T) {
	cfgPath := writeConfig(t, "reporter: story\nplain: true\n")
	tested := runCmd{config: cfgPath, reporter: "dots"}
	env, err := tested.suiteEnv()
	require.NoError(t, err)
	require.Contains(t, env, riot.ReporterEnv+"=dots")
	require.Contains(t, env, riot.PlainEnv+"=1")
}

func Test_runCmd_suiteEnv_configOnly(t *testing.T) {
	cfgPath := writeConfig(t, "reporter: silent\n")
	tested := runCmd{config: cfgPath}
	env, err := tested.suiteEnv()
	require.NoError(t, err)
	require.Equal(t, []string{riot.ReporterEnv + "=silent"}, env)
}

func Test_runCmd_suiteEnv_badReporterFlag(t *testing.T) {
	tested := runCmd{reporter: "interpretive-dance"}
	_, err := tested.suiteEnv()
	require.Error(t, err)
}

func Test_runCmd_suiteEnv_defaultIsEmpty(t *testing.T) {
	tested := runCmd{}
	env, err := tested.suiteEnv()
	require.NoError(t, err)
	require.Empty(t, env)
}
