package lrkit

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if x := s.Extend(Span{1, 2}); x != (Span{1, 5}) {
		t.Errorf("expected (1…5), got %v", x)
	}
	if x := s.Extend(Span{4, 9}); x != (Span{3, 9}) {
		t.Errorf("expected (3…9), got %v", x)
	}
	if x := s.Extend(Span{7, 7}); x != s {
		t.Errorf("null span should not extend %v, got %v", s, x)
	}
	if x := (Span{2, 2}).Extend(s); x != s {
		t.Errorf("extending a null span should yield %v, got %v", s, x)
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, got %d", s.Len())
	}
}

func TestReserved(t *testing.T) {
	if !IsReserved("$") || !IsReserved("ε") || IsReserved("a") {
		t.Errorf("reserved markers not recognized correctly")
	}
}
