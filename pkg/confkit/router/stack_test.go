package router

import "testing"

func TestStackPopTo(t *testing.T) {
	s := NewStack()
	s.Push(1, "a", nil)
	s.Push(2, "b", nil)
	s.Push(3, "c", nil)

	if got := s.PopTo(9); got != nil || s.Len() != 3 {
		t.Fatalf("PopTo(missing) = %v, len %d", got, s.Len())
	}

	got := s.PopTo(2)
	if got == nil || got.Input != "b" {
		t.Fatalf("PopTo(2) = %v, want entry b", got)
	}
	if s.Len() != 1 || s.Peek().Screen != 1 {
		t.Errorf("after PopTo len = %d, top = %v", s.Len(), s.Peek())
	}

	s.Clear()
	if !s.IsEmpty() || s.Pop() != nil {
		t.Error("cleared stack should be empty")
	}
}
