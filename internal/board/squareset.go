package board

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// SquareSet is a set of squares stored as a 64-bit mask.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type SquareSet uint64

// File sets
const (
	FileA SquareSet = 0x0101010101010101
	FileB SquareSet = 0x0202020202020202
	FileC SquareSet = 0x0404040404040404
	FileD SquareSet = 0x0808080808080808
	FileE SquareSet = 0x1010101010101010
	FileF SquareSet = 0x2020202020202020
	FileG SquareSet = 0x4040404040404040
	FileH SquareSet = 0x8080808080808080
)

// Rank sets
const (
	Rank1 SquareSet = 0x00000000000000FF
	Rank2 SquareSet = 0x000000000000FF00
	Rank3 SquareSet = 0x0000000000FF0000
	Rank4 SquareSet = 0x00000000FF000000
	Rank5 SquareSet = 0x000000FF00000000
	Rank6 SquareSet = 0x0000FF0000000000
	Rank7 SquareSet = 0x00FF000000000000
	Rank8 SquareSet = 0xFF00000000000000
)

const (
	EmptySet SquareSet = 0
	FullSet  SquareSet = 0xFFFFFFFFFFFFFFFF

	LightSquares SquareSet = 0x55AA55AA55AA55AA
	DarkSquares  SquareSet = ^LightSquares
)

var fileSets = [8]SquareSet{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

var rankSets = [8]SquareSet{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// FileSet returns the squares of a column (0-7). Columns outside the board
// yield the empty set.
func FileSet(col int) SquareSet {
	if col < 0 || col > 7 {
		return EmptySet
	}
	return fileSets[col]
}

// RankSet returns the squares of a row (0-7). Rows outside the board yield
// the empty set.
func RankSet(row int) SquareSet {
	if row < 0 || row > 7 {
		return EmptySet
	}
	return rankSets[row]
}

// SetOf converts any integer to a SquareSet mask. Negative values cannot be
// represented as a 64-cell mask and are rejected.
func SetOf[T constraints.Integer](v T) (SquareSet, error) {
	if v < 0 {
		return EmptySet, &SquareError{Input: fmt.Sprint(v), Err: ErrMaskOutOfRange}
	}
	return SquareSet(uint64(v)), nil
}

// Mask returns the raw bit mask.
func (s SquareSet) Mask() uint64 {
	return uint64(s)
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if no square is set.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// IsSingleton returns true if exactly one square is set.
func (s SquareSet) IsSingleton() bool {
	return s != 0 && s&(s-1) == 0
}

// Contains returns true if the square is a member.
func (s SquareSet) Contains(sq Square) bool {
	return s&sq.Mask() != 0
}

// With returns the set with sq added.
func (s SquareSet) With(sq Square) SquareSet {
	return s | sq.Mask()
}

// Without returns the set with sq removed.
func (s SquareSet) Without(sq Square) SquareSet {
	return s &^ sq.Mask()
}

func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

func (s SquareSet) Intersect(other SquareSet) SquareSet {
	return s & other
}

func (s SquareSet) Difference(other SquareSet) SquareSet {
	return s &^ other
}

func (s SquareSet) Complement() SquareSet {
	return ^s
}

// Lowest returns the member with the lowest index.
func (s SquareSet) Lowest() (Square, bool) {
	if s == 0 {
		return Square{}, false
	}
	return Square{uint8(bits.TrailingZeros64(uint64(s)))}, true
}

// ForEach calls the function for each member in ascending order.
func (s SquareSet) ForEach(f func(Square)) {
	for s != 0 {
		f(Square{uint8(bits.TrailingZeros64(uint64(s)))})
		s &= s - 1
	}
}

// Squares returns the members in ascending order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	s.ForEach(func(sq Square) {
		squares = append(squares, sq)
	})
	return squares
}

// String returns a visual representation of the set, rank 8 on top.
func (s SquareSet) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < 8; col++ {
			if s.Contains(Square{uint8(row*8 + col)}) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
