// Package board implements the chessboard coordinate primitives: squares,
// square sets and the conversions between their encodings.
package board

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// files maps a column (0-7) to its file letter.
const files = "abcdefgh"

// Square identifies one of the 64 board cells.
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
//
// The index is unexported so every Square outside this package is either one
// of the named squares below or the result of a validated conversion.
type Square struct {
	index uint8
}

// Named squares.
var (
	A1 = Square{0}
	B1 = Square{1}
	C1 = Square{2}
	D1 = Square{3}
	E1 = Square{4}
	F1 = Square{5}
	G1 = Square{6}
	H1 = Square{7}
	A2 = Square{8}
	B2 = Square{9}
	C2 = Square{10}
	D2 = Square{11}
	E2 = Square{12}
	F2 = Square{13}
	G2 = Square{14}
	H2 = Square{15}
	A3 = Square{16}
	B3 = Square{17}
	C3 = Square{18}
	D3 = Square{19}
	E3 = Square{20}
	F3 = Square{21}
	G3 = Square{22}
	H3 = Square{23}
	A4 = Square{24}
	B4 = Square{25}
	C4 = Square{26}
	D4 = Square{27}
	E4 = Square{28}
	F4 = Square{29}
	G4 = Square{30}
	H4 = Square{31}
	A5 = Square{32}
	B5 = Square{33}
	C5 = Square{34}
	D5 = Square{35}
	E5 = Square{36}
	F5 = Square{37}
	G5 = Square{38}
	H5 = Square{39}
	A6 = Square{40}
	B6 = Square{41}
	C6 = Square{42}
	D6 = Square{43}
	E6 = Square{44}
	F6 = Square{45}
	G6 = Square{46}
	H6 = Square{47}
	A7 = Square{48}
	B7 = Square{49}
	C7 = Square{50}
	D7 = Square{51}
	E7 = Square{52}
	F7 = Square{53}
	G7 = Square{54}
	H7 = Square{55}
	A8 = Square{56}
	B8 = Square{57}
	C8 = Square{58}
	D8 = Square{59}
	E8 = Square{60}
	F8 = Square{61}
	G8 = Square{62}
	H8 = Square{63}
)

// Side selects which back rank(s) IsPromotion checks.
type Side int

const (
	White Side = iota
	Black
	Both
)

// AllSquares returns every square in index order.
func AllSquares() [64]Square {
	var all [64]Square
	for i := range all {
		all[i] = Square{uint8(i)}
	}
	return all
}

// Index returns the square index (0-63).
func (sq Square) Index() uint8 {
	return sq.index
}

// Row returns the zero-based row (0 = first rank).
func (sq Square) Row() uint8 {
	return sq.index >> 3
}

// Col returns the zero-based column (0 = a-file).
func (sq Square) Col() uint8 {
	return sq.index & 7
}

// RC returns the (row, col) pair, both in [0,7].
func (sq Square) RC() (row, col uint8) {
	return sq.Row(), sq.Col()
}

// Rank returns the rank number (1-8).
func (sq Square) Rank() uint8 {
	return sq.Row() + 1
}

// File returns the file letter ('a'-'h').
func (sq Square) File() rune {
	return rune(files[sq.Col()])
}

// RF returns the (rank, file) pair, e.g. (4, 'e') for e4.
func (sq Square) RF() (rank uint8, file rune) {
	return sq.Rank(), sq.File()
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	return string([]byte{files[sq.Col()], '1' + sq.Row()})
}

// Compare orders squares by index.
func (sq Square) Compare(other Square) int {
	return cmp.Compare(sq.index, other.index)
}

// Mask returns the singleton set holding only this square.
func (sq Square) Mask() SquareSet {
	return SquareSet(1) << sq.index
}

// IsLight reports whether the square is a light square (a1 is dark).
func (sq Square) IsLight() bool {
	return (sq.Row()+sq.Col())%2 == 1
}

// IsDark reports whether the square is a dark square.
func (sq Square) IsDark() bool {
	return !sq.IsLight()
}

// IsPromotion reports whether the square lies on a promotion rank for the
// given side: the 8th rank for White, the 1st for Black.
func (sq Square) IsPromotion(side Side) bool {
	switch side {
	case White:
		return sq.Row() == 7
	case Black:
		return sq.Row() == 0
	default:
		return sq.Row() == 0 || sq.Row() == 7
	}
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return Square{sq.index ^ 56}
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	return NewSquare(Name(s))
}

// SquareOf converts any integer to a Square, rejecting values outside 0-63.
func SquareOf[T constraints.Integer](v T) (Square, error) {
	if v < 0 || uint64(v) > 63 {
		return Square{}, &SquareError{Input: fmt.Sprint(v), Err: ErrOutOfRange}
	}
	return Square{uint8(v)}, nil
}
