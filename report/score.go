package report

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// score tallies assertion outcomes and times the summarization scope.
// Every built-in reporter embeds one.
type score struct {
	passes   int
	failures int
	errors   int
	elapsed  time.Duration
}

func (s *score) time(scope func()) {
	start := time.Now()
	scope()
	s.elapsed = time.Since(start)
}

func (s *score) recordPass()  { s.passes++ }
func (s *score) recordFail()  { s.failures++ }
func (s *score) recordError() { s.errors++ }

func (s *score) success() bool {
	return s.failures == 0 && s.errors == 0
}

func (s *score) tally() string {
	return fmt.Sprintf(
		"%d passes, %d failures, %d errors in %.2fs",
		s.passes, s.failures, s.errors, s.elapsed.Seconds())
}

// palette holds the per-outcome colors. A plain palette writes
// unstyled text.
type palette struct {
	pass    *color.Color
	fail    *color.Color
	problem *color.Color
}

func newPalette(plain bool) palette {
	p := palette{
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgYellow),
		problem: color.New(color.FgRed),
	}
	if plain {
		p.pass.DisableColor()
		p.fail.DisableColor()
		p.problem.DisableColor()
	}
	return p
}
