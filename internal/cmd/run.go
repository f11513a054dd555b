// Package cmd implements the riot harness subcommands.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/Jerok0/riot"
	"github.com/Jerok0/riot/internal/run"
	"github.com/Jerok0/riot/report"
)

// RunCmd returns a subcommand that runs suite binaries in order.
func RunCmd() subcommands.Command {
	return &runCmd{out: os.Stdout}
}

type runCmd struct {
	out io.Writer

	config   string
	reporter string
	plain    bool
}

func (*runCmd) Name() string {
	return "run"
}

func (*runCmd) Synopsis() string {
	return "run riot suite binaries in order, stopping at the first failure"
}

func (*runCmd) Usage() string {
	return `run [-config <path>] [-reporter <kind>] [-plain] <suite-binary>...:
  Run each suite binary sequentially. The first suite that exits with a
  non-zero status ends the pipeline and its status becomes the harness
  exit status, so an upstream failure is neither masked nor duplicated.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.config, "config", "", "riot.yml file with harness defaults")
	f.StringVar(&r.reporter, "reporter", "", "reporter kind forwarded to suites (story, verbose, dots, pretty-dots, silent)")
	f.BoolVar(&r.plain, "plain", false, "forward plain (uncolored) output selection to suites")
}

//revive:disable:unused-parameter
func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return executeSuitePaths(f, r.impl)
}

// impl runs each suite binary in order. The returned code is the
// harness exit status: the first failing suite's status, or zero when
// every suite passed.
func (r *runCmd) impl(paths []string) (int, error) {
	env, err := r.suiteEnv()
	if err != nil {
		return 1, err
	}

	for _, path := range paths {
		res, runErr := run.Suite(path, nil, run.Env(env...), run.Log(r.out))
		if runErr != nil {
			return 1, fmt.Errorf("failed to run suite %q: %w", path, runErr)
		}
		if !res.Passed() {
			return res.ExitCode, nil
		}
	}
	return 0, nil
}

// suiteEnv resolves the reporter selection (flags over config file)
// into environment variables for the suite binaries.
func (r *runCmd) suiteEnv() ([]string, error) {
	reporter := r.reporter
	plain := r.plain

	if r.config != "" {
		cfg, err := LoadConfig(r.config)
		if err != nil {
			return nil, err
		}
		if reporter == "" {
			reporter = cfg.Reporter
		}
		plain = plain || cfg.Plain
	}

	var env []string
	if reporter != "" {
		if _, err := report.ParseKind(reporter); err != nil {
			return nil, err
		}
		env = append(env, riot.ReporterEnv+"="+reporter)
	}
	if plain {
		env = append(env, riot.PlainEnv+"=1")
	}
	return env, nil
}
