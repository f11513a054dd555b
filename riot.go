// Package riot is a small context/assertion test framework. A Runner
// owns the process configuration and an ordered registry of root
// contexts, runs every registered context against a single reporter,
// and resolves the final process exit status.
//
// The hosting program constructs one Runner, registers contexts, and
// wires the exit explicitly:
//
//	func main() {
//	    r := riot.New()
//	    r.Context("a calculator", func(c *suite.Context) {
//	        c.Assert("adds", func(s *suite.Situation) error {
//	            return suite.Equals(4, 2+2)
//	        })
//	    })
//	    r.Exit(riot.ChildStatus{})
//	}
//
// When the program itself ran an upstream child process that already
// failed, pass its status as the ChildStatus: the Runner adopts it
// without running any tests, so the upstream failure is neither masked
// nor duplicated.
package riot

import (
	"os"

	"github.com/Jerok0/riot/report"
	"github.com/Jerok0/riot/suite"
)

// RootContext is a runnable top-level test group. The standard
// implementation is suite.Context; WithFactory substitutes another.
type RootContext interface {
	Run(rep report.Reporter)
}

// Factory builds a root context from a description and its deferred
// definition block. The block is handed over untouched: the Runner
// never invokes or validates it.
type Factory func(description string, define func(*suite.Context)) RootContext

// Options is the process-wide configuration. It is created with
// defaults on first access and mutated only through the Runner's
// setters; no operation resets it.
type Options struct {
	// Silent forces the silent reporter regardless of Reporter.
	Silent bool
	// Standalone disables Exit entirely; the hosting program runs and
	// acts on the result itself.
	Standalone bool
	// Reporter is the configured reporter kind. It keeps its value
	// while Silent is set, it just loses the resolution.
	Reporter report.Kind
	// ReporterOptions is snapshotted at reporter construction time.
	ReporterOptions report.Options
}

// Runner owns the configuration and the ordered registry of root
// contexts. Registration order is run order.
type Runner struct {
	opts  *Options
	roots []RootContext
}

// New constructs an empty Runner.
func New() *Runner { return &Runner{} }

// Options returns the live configuration, creating it with defaults on
// first access.
func (r *Runner) Options() *Options {
	if r.opts == nil {
		r.opts = &Options{Reporter: report.KindStory}
	}
	return r.opts
}

// SetSilent forces the silent reporter for every subsequent run.
func (r *Runner) SetSilent() { r.Options().Silent = true }

// SetStandalone marks the Runner as embedded: Exit becomes a no-op and
// the hosting program drives Run itself.
func (r *Runner) SetStandalone() { r.Options().Standalone = true }

// SetReporter selects the reporter kind. While Silent is set the value
// is stored but not used for resolution.
func (r *Runner) SetReporter(kind report.Kind) { r.Options().Reporter = kind }

// SetPlainOutput disables colored reporter output.
func (r *Runner) SetPlainOutput() { r.Options().ReporterOptions.Plain = true }

func (r *Runner) IsSilent() bool     { return r.Options().Silent }
func (r *Runner) IsStandalone() bool { return r.Options().Standalone }

// ContextOption configures a single registration.
type ContextOption func(*contextConfig)

type contextConfig struct {
	factory Factory
}

// WithFactory substitutes the context implementation used for one
// registration. The default builds a suite.Context.
func WithFactory(f Factory) ContextOption {
	return func(c *contextConfig) { c.factory = f }
}

func standardContext(description string, define func(*suite.Context)) RootContext {
	return suite.New(description, define)
}

// Context builds a root context through the configured factory,
// appends it to the registry, and returns the handle. Duplicate
// descriptions are allowed; each registration is independent. The
// registry is append-only.
func (r *Runner) Context(description string, define func(*suite.Context), opts ...ContextOption) RootContext {
	cfg := contextConfig{factory: standardContext}
	for _, opt := range opts {
		opt(&cfg)
	}
	root := cfg.factory(description, define)
	r.roots = append(r.roots, root)
	return root
}

// ResolveReporter maps the current configuration to a reporter kind
// plus a snapshot of the reporter options. Silent wins over any
// configured kind.
func (r *Runner) ResolveReporter() (report.Kind, report.Options) {
	o := r.Options()
	if o.Silent {
		return report.KindSilent, o.ReporterOptions
	}
	return o.Reporter, o.ReporterOptions
}

// Run constructs a fresh reporter and runs every registered root
// context against it, strictly sequentially in registration order,
// inside the reporter's summarization scope. With an empty registry
// the scope is never entered: no "zero tests" report is produced, and
// the returned reporter counts as a success.
func (r *Runner) Run() report.Reporter {
	kind, opts := r.ResolveReporter()
	rep := report.New(kind, opts)
	if len(r.roots) == 0 {
		return rep
	}
	rep.Summarize(func() {
		for _, root := range r.roots {
			root.Run(rep)
		}
	})
	return rep
}

// ChildStatus is the exit status of an upstream child process observed
// before this run, if any.
type ChildStatus struct {
	Code  int
	Known bool
}

// ExitCode resolves the final process status. A known non-zero prior
// status is adopted as-is and no tests run; otherwise the run's
// aggregate success maps to 0, failure to 1.
func (r *Runner) ExitCode(prior ChildStatus) int {
	if prior.Known && prior.Code != 0 {
		return prior.Code
	}
	if r.Run().Success() {
		return 0
	}
	return 1
}

// Exit terminates the process with the resolved status. It does
// nothing in standalone mode. This is the last thing the hosting
// program does; wire it at the end of main.
func (r *Runner) Exit(prior ChildStatus) {
	if r.IsStandalone() {
		return
	}
	osExit(r.ExitCode(prior))
}

var osExit = os.Exit
