package router

// Resumable is implemented by screen inputs that accept resume state when
// the router returns to them.
type Resumable interface {
	WithResume(resume any) any
}

// StackEntry is a screen to return to, with the input it ran with and the
// state it asked to be restored.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Restore returns the input to rerun the entry with. Inputs implementing
// Resumable receive the resume state; others are returned as stored.
func (e StackEntry) Restore() any {
	if r, ok := e.Input.(Resumable); ok && e.Resume != nil {
		return r.WithResume(e.Resume)
	}
	return e.Input
}

// Stack is the back-navigation history.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Push(screen Screen, input, resume any) {
	s.entries = append(s.entries, StackEntry{Screen: screen, Input: input, Resume: resume})
}

// Pop removes the top entry. Returns nil when empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopTo removes entries above the most recent one for screen and pops it.
// Returns nil, leaving the stack untouched, if screen is not on the stack.
func (s *Stack) PopTo(screen Screen) *StackEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen == screen {
			entry := s.entries[i]
			s.entries = s.entries[:i]
			return &entry
		}
	}
	return nil
}

// Peek returns the top entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }
func (s *Stack) Len() int      { return len(s.entries) }
func (s *Stack) Clear()        { s.entries = s.entries[:0] }
