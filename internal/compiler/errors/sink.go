package errors

// Sink is the append-only, ordered collection of diagnostics produced by one
// analysis. A non-empty sink tells later phases to skip their work.
type Sink struct {
	diagnostics ErrorList
}

// NewSink creates an empty sink
func NewSink() *Sink {
	return &Sink{diagnostics: make(ErrorList, 0)}
}

// Add appends a copy of d
func (s *Sink) Add(d *Diagnostic) {
	c := *d
	s.diagnostics = append(s.diagnostics, &c)
}

// Len returns the number of diagnostics collected so far
func (s *Sink) Len() int {
	return len(s.diagnostics)
}

// Empty reports whether no diagnostic has been added
func (s *Sink) Empty() bool {
	return len(s.diagnostics) == 0
}

// Diagnostics returns a copy of the collected diagnostics in order
func (s *Sink) Diagnostics() ErrorList {
	out := make(ErrorList, len(s.diagnostics))
	for i, d := range s.diagnostics {
		c := *d
		out[i] = &c
	}
	return out
}

// Strings returns the one-line rendering of every diagnostic in order
func (s *Sink) Strings() []string {
	out := make([]string, len(s.diagnostics))
	for i, d := range s.diagnostics {
		out[i] = d.String()
	}
	return out
}

// Err returns the diagnostics as an error, or nil when the sink is empty
func (s *Sink) Err() error {
	if s.Empty() {
		return nil
	}
	return s.Diagnostics()
}

// ToJSON returns all diagnostics as a JSON array
func (s *Sink) ToJSON() (string, error) {
	return s.diagnostics.ToJSON()
}
