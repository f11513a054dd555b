// Package run executes suite binaries and captures their output and
// exit status.
package run

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/Jerok0/riot/internal/printing"
)

const (
	outPrefix = "  > "
	errPrefix = "  ! "
)

// Result is the observed outcome of one suite binary.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Passed reports whether the suite exited with status zero.
func (r Result) Passed() bool { return r.ExitCode == 0 }

type suiteinfo struct {
	cmd       *exec.Cmd
	log       *printing.LogWriter
	logStdout bool
	logStderr bool
}

// Suite runs the suite binary at path with the provided args and
// returns its captured output and exit status. A non-zero exit is a
// normal Result, not an error; err is non-nil only when the binary
// could not be run at all.
//
// By default Suite writes to os.Stdout:
//   - a message naming the suite before it runs,
//   - the suite's stdout, each line prefixed with "  > ",
//   - the suite's stderr, each line prefixed with "  ! ",
//   - a completion message with the exit status.
//
// Use Log to redirect this, SuppressStdout/SuppressStderr to keep the
// suite output out of it, and Env to pass additional environment
// variables (e.g. reporter selection) to the suite.
func Suite(path string, args []string, opts ...Option) (Result, error) {
	info := suiteinfo{
		cmd:       exec.Command(path, args...),
		log:       printing.NewLogWriter(os.Stdout),
		logStdout: true,
		logStderr: true,
	}
	for _, opt := range opts {
		opt(&info)
	}

	var stdout, stderr bytes.Buffer

	stdouts := []io.Writer{&stdout}
	if info.logStdout {
		stdouts = append(stdouts, printing.NewLinePrefixWriter(info.log, outPrefix))
	}
	info.cmd.Stdout = io.MultiWriter(stdouts...)

	stderrs := []io.Writer{&stderr}
	if info.logStderr {
		stderrs = append(stderrs, printing.NewLinePrefixWriter(info.log, errPrefix))
	}
	info.cmd.Stderr = io.MultiWriter(stderrs...)

	info.log.Logf("Running suite %q...", path)
	err := info.cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		info.log.Logf("Suite failed with status %d", res.ExitCode)
		return res, nil
	}
	if err != nil {
		info.log.Logf("Suite could not be run: %v", err)
		return res, err
	}
	info.log.Logf("Suite completed successfully")
	return res, nil
}

// Option alters the way Suite runs a binary.
type Option func(*suiteinfo)

// Env sets *additional* environment variables for the suite.
func Env(env ...string) Option {
	return func(s *suiteinfo) {
		if len(s.cmd.Env) == 0 {
			s.cmd.Env = append(os.Environ(), env...)
		} else {
			s.cmd.Env = append(s.cmd.Env, env...)
		}
	}
}

// Log changes where Suite writes log-like information and the prefixed
// suite output.
func Log(to io.Writer) Option {
	return func(s *suiteinfo) {
		s.log = printing.NewLogWriter(to)
	}
}

// SuppressStdout keeps the suite stdout out of the log. It is still
// captured in the Result.
func SuppressStdout() Option {
	return func(s *suiteinfo) {
		s.logStdout = false
	}
}

// SuppressStderr keeps the suite stderr out of the log. It is still
// captured in the Result.
func SuppressStderr() Option {
	return func(s *suiteinfo) {
		s.logStderr = false
	}
}
