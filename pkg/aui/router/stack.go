package router

// StackEntry is one handler scope: a name for logging and the handlers
// registered while it was the innermost scope.
type StackEntry struct {
	Name          string
	Registrations []*Registration
}

// Stack holds the nested handler scopes of a Router, outermost first.
type Stack struct {
	entries []*StackEntry
}

// NewStack creates a new empty scope stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*StackEntry, 0),
	}
}

// Push opens a new innermost scope.
func (s *Stack) Push(name string) {
	s.entries = append(s.entries, &StackEntry{Name: name})
}

// Pop removes and returns the innermost scope.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry
}

// Peek returns the innermost scope without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
