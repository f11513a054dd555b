package report

import (
	"fmt"
	"io"
)

// problem remembers a failed or errored assertion so the dot-matrix
// reporters can detail it after the run.
type problem struct {
	glyph       string
	description string
	err         error
}

// dots prints one character per assertion: "." for a pass, "F" for a
// failure, "E" for an error. Context structure is not rendered.
// Failures and errors are detailed after the summarization scope ends.
type dots struct {
	score
	out      io.Writer
	colors   palette
	problems []problem
}

var _ Reporter = (*dots)(nil)

func newDots(opts Options, pretty bool) *dots {
	return &dots{
		out:    opts.Out,
		colors: newPalette(opts.Plain || !pretty),
	}
}

func (d *dots) Summarize(scope func()) {
	d.time(scope)
	_, _ = fmt.Fprintln(d.out)
	for i, p := range d.problems {
		_, _ = fmt.Fprintf(d.out, "%d) %s %s: %v\n", i+1, p.glyph, p.description, p.err)
	}
	_, _ = fmt.Fprintln(d.out, d.tally())
}

func (d *dots) Describe(string, int) {}

func (d *dots) Pass(string) {
	d.recordPass()
	_, _ = d.colors.pass.Fprint(d.out, ".")
}

func (d *dots) Fail(description string, err error) {
	d.recordFail()
	d.problems = append(d.problems, problem{glyph: "F", description: description, err: err})
	_, _ = d.colors.fail.Fprint(d.out, "F")
}

func (d *dots) Error(description string, err error) {
	d.recordError()
	d.problems = append(d.problems, problem{glyph: "E", description: description, err: err})
	_, _ = d.colors.problem.Fprint(d.out, "E")
}

func (d *dots) Success() bool { return d.success() }
