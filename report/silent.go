package report

// silent keeps the score and writes nothing.
type silent struct {
	score
}

var _ Reporter = (*silent)(nil)

func newSilent() *silent { return &silent{} }

func (s *silent) Summarize(scope func()) { s.time(scope) }

func (*silent) Describe(string, int) {}

func (s *silent) Pass(string) { s.recordPass() }

func (s *silent) Fail(string, error) { s.recordFail() }

func (s *silent) Error(string, error) { s.recordError() }

func (s *silent) Success() bool { return s.success() }
