// Package report defines the reporter contract consumed while running
// contexts, and the closed set of reporters the framework ships.
//
// A reporter is handed to every root context for one run. It records
// each assertion outcome (Pass, Fail, Error), renders output in its own
// style, and answers Success once the run's summarization scope ends.
package report

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives the outcomes of a single run. One instance is
// shared by every context in the run so results aggregate into one
// report.
type Reporter interface {
	// Summarize wraps a full run. The reporter times the scope and
	// renders its final tally after the scope returns.
	Summarize(scope func())

	// Describe announces a context before its assertions run. level is
	// the context's nesting depth, starting at zero for root contexts.
	Describe(description string, level int)

	// Pass records a passed assertion.
	Pass(description string)

	// Fail records an assertion that evaluated to a failure.
	Fail(description string, err error)

	// Error records an assertion (or context setup) that blew up rather
	// than failing cleanly.
	Error(description string, err error)

	// Success reports whether the run recorded no failures and no
	// errors. A reporter whose summarization scope was never entered
	// reports success.
	Success() bool
}

// Kind identifies one of the built-in reporters.
type Kind int

const (
	// KindStory is the default narrative reporter.
	KindStory Kind = iota
	// KindVerboseStory is the narrative reporter with full error detail.
	KindVerboseStory
	// KindDots prints one character per assertion.
	KindDots
	// KindPrettyDots is KindDots with colored output.
	KindPrettyDots
	// KindSilent records the score and writes nothing.
	KindSilent
)

var kindNames = map[Kind]string{
	KindStory:        "story",
	KindVerboseStory: "verbose",
	KindDots:         "dots",
	KindPrettyDots:   "pretty-dots",
	KindSilent:       "silent",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a reporter name (as accepted by the harness
// -reporter flag and the RIOT_REPORTER environment variable) into a
// Kind.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if name == kindName {
			return kind, nil
		}
	}
	return KindStory, fmt.Errorf("unknown reporter kind %q", name)
}

// Options configures reporter construction.
type Options struct {
	// Plain disables colored output.
	Plain bool
	// Out is where the reporter writes. Defaults to os.Stdout.
	Out io.Writer
}

// New constructs a fresh reporter of the given kind. It always
// produces a value.
func New(kind Kind, opts Options) Reporter {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	switch kind {
	case KindVerboseStory:
		return newStory(opts, true)
	case KindDots:
		return newDots(opts, false)
	case KindPrettyDots:
		return newDots(opts, true)
	case KindSilent:
		return newSilent()
	default:
		return newStory(opts, false)
	}
}
