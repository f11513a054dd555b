// Package suite provides the standard context implementation: a tree
// of test groups with setups, teardowns, and assertions, run against a
// shared reporter.
//
// A context's body is a deferred definition block. It registers the
// pieces but runs nothing:
//
//	suite.New("a stack", func(c *suite.Context) {
//	    c.Setup(func(s *suite.Situation) {
//	        s.SetTopic(newStack())
//	    })
//	    c.Assert("starts empty", func(s *suite.Situation) error {
//	        return suite.Equals(0, s.Topic().(*stack).Len())
//	    })
//	    c.Context("after a push", func(c *suite.Context) {
//	        c.Setup(func(s *suite.Situation) {
//	            s.Topic().(*stack).Push(1)
//	        })
//	        c.Assert("has one element", func(s *suite.Situation) error {
//	            return suite.Equals(1, s.Topic().(*stack).Len())
//	        })
//	    })
//	})
//
// Execution only happens when Run is called with a reporter, usually by
// the riot Runner. Each context runs against a fresh Situation: its
// ancestors' setups run first, then its own, then its assertions, then
// its child contexts, then teardowns in reverse order.
package suite

import (
	"fmt"

	"github.com/Jerok0/riot/report"
)

// SetupFunc prepares a Situation before a context's assertions run.
type SetupFunc func(s *Situation)

// AssertFunc evaluates one assertion against the Situation. A nil
// return is a pass; a non-nil return is a failure. A panic is recorded
// as an error rather than a failure.
type AssertFunc func(s *Situation) error

type assertion struct {
	description string
	check       AssertFunc
}

// Context is one test group: an ordered list of setups, teardowns,
// assertions, and nested child contexts.
type Context struct {
	description string
	parent      *Context
	level       int

	setups     []SetupFunc
	teardowns  []SetupFunc
	assertions []assertion
	children   []*Context
}

// New constructs a root context and applies its definition block. The
// block registers setups, assertions, and nested contexts; nothing is
// executed until Run.
func New(description string, define func(*Context)) *Context {
	c := &Context{description: description}
	if define != nil {
		define(c)
	}
	return c
}

// Description returns the context's identifying label.
func (c *Context) Description() string { return c.description }

// Setup registers a preparation step. Setups run in registration
// order, after any inherited from ancestor contexts.
func (c *Context) Setup(fn SetupFunc) {
	c.setups = append(c.setups, fn)
}

// Teardown registers a cleanup step. Teardowns run after the context's
// assertions and children, in reverse registration order, own before
// inherited.
func (c *Context) Teardown(fn SetupFunc) {
	c.teardowns = append(c.teardowns, fn)
}

// Assert registers an assertion.
func (c *Context) Assert(description string, check AssertFunc) {
	c.assertions = append(c.assertions, assertion{description: description, check: check})
}

// Context registers a nested child context and applies its definition
// block immediately.
func (c *Context) Context(description string, define func(*Context)) *Context {
	child := &Context{
		description: description,
		parent:      c,
		level:       c.level + 1,
	}
	if define != nil {
		define(child)
	}
	c.children = append(c.children, child)
	return child
}

// Run executes the context against the reporter: announce, set up a
// fresh Situation, evaluate assertions, recurse into children, tear
// down. A setup panic is recorded as an error against the context and
// skips its assertions and children; sibling contexts still run.
func (c *Context) Run(rep report.Reporter) {
	rep.Describe(c.description, c.level)

	s := NewSituation()
	if err := c.prepare(s); err != nil {
		rep.Error(c.description, err)
		return
	}

	for _, a := range c.assertions {
		a.run(s, rep)
	}
	for _, child := range c.children {
		child.Run(rep)
	}

	if err := c.cleanup(s); err != nil {
		rep.Error(c.description, err)
	}
}

// prepare runs inherited setups outermost-first, then the context's
// own.
func (c *Context) prepare(s *Situation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()
	for _, fn := range c.lineageSetups() {
		fn(s)
	}
	return nil
}

// cleanup runs teardowns in reverse order, own before inherited.
func (c *Context) cleanup(s *Situation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()
	teardowns := c.lineageTeardowns()
	for i := len(teardowns) - 1; i >= 0; i-- {
		teardowns[i](s)
	}
	return nil
}

func (c *Context) lineageSetups() []SetupFunc {
	if c.parent == nil {
		return c.setups
	}
	inherited := c.parent.lineageSetups()
	combined := make([]SetupFunc, 0, len(inherited)+len(c.setups))
	combined = append(combined, inherited...)
	return append(combined, c.setups...)
}

func (c *Context) lineageTeardowns() []SetupFunc {
	if c.parent == nil {
		return c.teardowns
	}
	inherited := c.parent.lineageTeardowns()
	combined := make([]SetupFunc, 0, len(inherited)+len(c.teardowns))
	combined = append(combined, inherited...)
	return append(combined, c.teardowns...)
}

func (a assertion) run(s *Situation, rep report.Reporter) {
	defer func() {
		if r := recover(); r != nil {
			rep.Error(a.description, recoveredError(r))
		}
	}()
	if err := a.check(s); err != nil {
		rep.Fail(a.description, err)
		return
	}
	rep.Pass(a.description)
}

func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
