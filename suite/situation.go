package suite

// Situation is the mutable state a context runs its assertions
// against. Each context run gets a fresh one; setups populate it and
// assertions read it. Topic holds the conventional subject under test,
// Set/Get hold any additional named state.
type Situation struct {
	topic  interface{}
	values map[string]interface{}
}

func NewSituation() *Situation {
	return &Situation{values: make(map[string]interface{})}
}

// SetTopic records the subject under test.
func (s *Situation) SetTopic(v interface{}) { s.topic = v }

// Topic returns the subject under test, or nil if no setup recorded
// one.
func (s *Situation) Topic() interface{} { return s.topic }

// Set stores a named value.
func (s *Situation) Set(key string, v interface{}) { s.values[key] = v }

// Get returns the named value, or nil if it was never set.
func (s *Situation) Get(key string) interface{} { return s.values[key] }
