package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Jerok0/riot/internal/printing"
)

// story is the narrative reporter. It prints context descriptions
// indented by nesting level and one line per assertion underneath. The
// verbose variant additionally prints full error detail for failures
// and errors, which the terse variant truncates to the first line.
type story struct {
	score
	out     io.Writer
	colors  palette
	verbose bool

	// level is the nesting depth of the most recently described
	// context. Assertion lines indent one step past it.
	level int
}

var _ Reporter = (*story)(nil)

func newStory(opts Options, verbose bool) *story {
	return &story{
		out:     opts.Out,
		colors:  newPalette(opts.Plain),
		verbose: verbose,
	}
}

func (s *story) Summarize(scope func()) {
	s.time(scope)
	_, _ = fmt.Fprintln(s.out, s.tally())
}

func (s *story) Describe(description string, level int) {
	s.level = level
	_, _ = fmt.Fprintf(s.out, "%s%s\n", printing.Indent(level), description)
}

func (s *story) Pass(description string) {
	s.recordPass()
	_, _ = s.colors.pass.Fprintf(s.out, "%s+ %s\n", printing.Indent(s.level+1), description)
}

func (s *story) Fail(description string, err error) {
	s.recordFail()
	_, _ = s.colors.fail.Fprintf(s.out, "%s- %s: %s\n", printing.Indent(s.level+1), description, s.detail(err))
}

func (s *story) Error(description string, err error) {
	s.recordError()
	_, _ = s.colors.problem.Fprintf(s.out, "%s! %s: %s\n", printing.Indent(s.level+1), description, s.detail(err))
}

func (s *story) Success() bool { return s.success() }

// detail renders an error for an assertion line. The terse story keeps
// only the first line so multi-line errors cannot break the narrative
// layout.
func (s *story) detail(err error) string {
	msg := err.Error()
	if s.verbose {
		return msg
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
