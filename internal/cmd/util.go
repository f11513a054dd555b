package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// executeSuitePaths checks that at least one suite binary path was
// passed, and if so runs impl() with the positional arguments.
//
// If no paths were provided a usage error is written and
// subcommands.ExitUsageError is returned.
//
// If impl() returns an error it is written to f.Output() and
// subcommands.ExitFailure is returned. Otherwise the code impl()
// returned becomes the exit status, which lets the harness propagate a
// failing suite's own status.
func executeSuitePaths(f *flag.FlagSet, impl func(paths []string) (int, error)) subcommands.ExitStatus {
	if f.NArg() == 0 {
		_, _ = fmt.Fprintln(f.Output(), "expected at least one suite binary")
		f.Usage()
		return subcommands.ExitUsageError
	}
	code, err := impl(f.Args())
	if err != nil {
		_, _ = fmt.Fprintln(f.Output(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitStatus(code)
}
