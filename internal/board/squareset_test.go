package board

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSquareSet(t *testing.T) {
	tests := []struct {
		name  string
		input Setish
		want  SquareSet
	}{
		{"nil", nil, EmptySet},
		{"mask", Mask(42), 42},
		{"full mask", Mask(^uint64(0)), FullSet},
		{"square", A1, 0b1},
		{"set", SquareSet(42), 42},
		{"name", Name("e4"), 1 << 28},
		{"list of squares", Squares{A1, B1, C1}, 0b111},
		{"mix of types", Squares{A1, Index(2), Name("B1"), SquareSet(1 << 3)}, 0b1111},
		{"duplicates", Squares{E4, Name("e4")}, 1 << 28},
		{"empty list", Squares{}, EmptySet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewSquareSet(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %#x, want %#x", uint64(got), uint64(tc.want))
			}
		})
	}
}

func TestNewSquareSetErrors(t *testing.T) {
	_, err := NewSquareSet(Squares{A1, Index(70), Name("zz")})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "element 1") {
		t.Errorf("error should name the failing element: %v", err)
	}

	_, err = NewSquareSet(Squares{Name("a1"), SquareSet(3)})
	if !errors.Is(err, ErrNotASingleton) || !strings.Contains(err.Error(), "element 1") {
		t.Errorf("expected element 1 ErrNotASingleton, got %v", err)
	}

	if _, err := NewSquareSet(Name("a10")); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}

	var sqErr *SquareError
	if _, err := NewSquareSet(Squares{nil}); !errors.As(err, &sqErr) || !errors.Is(err, ErrNoInput) {
		t.Errorf("expected wrapped *SquareError with ErrNoInput, got %v", err)
	}
}

func TestSetOf(t *testing.T) {
	if set, err := SetOf(uint64(1) << 63); err != nil || set != H8.Mask() {
		t.Errorf("SetOf(1<<63) = %#x, %v", uint64(set), err)
	}
	if _, err := SetOf(-1); !errors.Is(err, ErrMaskOutOfRange) {
		t.Errorf("expected ErrMaskOutOfRange, got %v", err)
	}
}

func TestSquareSetAlgebra(t *testing.T) {
	s := EmptySet.With(E4).With(D5).With(E4)
	if s.Len() != 2 {
		t.Errorf("expected 2 members, got %d", s.Len())
	}
	if !s.Contains(E4) || !s.Contains(D5) || s.Contains(A1) {
		t.Error("Contains reports wrong membership")
	}
	if s.Without(E4) != D5.Mask() {
		t.Error("Without did not remove e4")
	}
	if FileE.Intersect(Rank4) != E4.Mask() {
		t.Error("FileE & Rank4 should be e4")
	}
	if FileA.Union(FileH).Len() != 16 {
		t.Error("FileA | FileH should have 16 squares")
	}
	if Rank1.Difference(A1.Mask()).Len() != 7 {
		t.Error("Rank1 minus a1 should have 7 squares")
	}
	if EmptySet.Complement() != FullSet {
		t.Error("complement of empty should be full")
	}
	if LightSquares.Len() != 32 || DarkSquares.Len() != 32 {
		t.Error("light and dark should split the board evenly")
	}
	if FileSet(4) != FileE || RankSet(3) != Rank4 || FileSet(8) != EmptySet || RankSet(-1) != EmptySet {
		t.Error("FileSet/RankSet lookup is wrong")
	}
	if !E4.Mask().IsSingleton() || EmptySet.IsSingleton() || s.IsSingleton() {
		t.Error("IsSingleton is wrong")
	}
	if !EmptySet.IsEmpty() || s.IsEmpty() {
		t.Error("IsEmpty is wrong")
	}
}

func TestSquareSetIteration(t *testing.T) {
	s := SquareSet(0).With(H8).With(A1).With(E4)

	sq, ok := s.Lowest()
	if !ok || sq != A1 {
		t.Errorf("Lowest = %v, %v", sq, ok)
	}
	if _, ok := EmptySet.Lowest(); ok {
		t.Error("Lowest of empty set should report false")
	}

	got := s.Squares()
	want := []Square{A1, E4, H8}
	if len(got) != len(want) {
		t.Fatalf("Squares = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	var count int
	FullSet.ForEach(func(Square) { count++ })
	if count != 64 {
		t.Errorf("ForEach visited %d squares", count)
	}
}

func TestSquareSetString(t *testing.T) {
	out := A1.Mask().Union(H8.Mask()).String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "8 . . . . . . . 1 " {
		t.Errorf("rank 8 line = %q", lines[0])
	}
	if lines[7] != "1 1 . . . . . . . " {
		t.Errorf("rank 1 line = %q", lines[7])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("label line = %q", lines[8])
	}
}
