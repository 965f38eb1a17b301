package board

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Squarish is any value that denotes exactly one square:
// Index, Name, SquareSet (a singleton) or Square.
type Squarish interface {
	squarish()
}

// Setish is any value that denotes a set of squares:
// Mask, Square, SquareSet, Name or Squares.
type Setish interface {
	setish()
}

// Index is a raw square index. Only 0-63 are board squares.
type Index uint8

// Name is a square in algebraic notation, e.g. "e4" or "E4".
type Name string

// Mask is a raw 64-bit set mask.
type Mask uint64

// Squares is a sequence of square encodings, unioned into one set.
type Squares []Squarish

func (Index) squarish()     {}
func (Name) squarish()      {}
func (SquareSet) squarish() {}
func (Square) squarish()    {}

func (Mask) setish()      {}
func (Square) setish()    {}
func (SquareSet) setish() {}
func (Name) setish()      {}
func (Squares) setish()   {}

// NewSquare resolves a Squarish value into a Square.
func NewSquare(in Squarish) (Square, error) {
	switch v := in.(type) {
	case Index:
		if v > 63 {
			return Square{}, &SquareError{Input: strconv.Itoa(int(v)), Err: ErrOutOfRange}
		}
		return Square{uint8(v)}, nil
	case Square:
		return v, nil
	case Name:
		return parseName(string(v))
	case SquareSet:
		if !v.IsSingleton() {
			return Square{}, &SquareError{Input: fmt.Sprintf("%#x", uint64(v)), Err: ErrNotASingleton}
		}
		return Square{uint8(bits.TrailingZeros64(uint64(v)))}, nil
	default:
		return Square{}, &SquareError{Input: fmt.Sprint(in), Err: ErrNoInput}
	}
}

func parseName(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, &SquareError{Input: s, Err: ErrInvalidLength}
	}

	rank := s[1]
	if rank < '1' || rank > '8' {
		return Square{}, &SquareError{Input: s, Err: ErrInvalidRank}
	}
	row := rank - '1'

	var col byte
	switch file := s[0]; {
	case file >= 'a' && file <= 'h':
		col = file - 'a'
	case file >= 'A' && file <= 'H':
		col = file - 'A'
	default:
		return Square{}, &SquareError{Input: s, Err: ErrInvalidFile}
	}

	return Square{row*8 + col}, nil
}

// NewSquareSet resolves a Setish value into a SquareSet. A nil input yields
// the empty set.
func NewSquareSet(in Setish) (SquareSet, error) {
	switch v := in.(type) {
	case nil:
		return EmptySet, nil
	case Mask:
		return SquareSet(v), nil
	case Square:
		return v.Mask(), nil
	case SquareSet:
		return v, nil
	case Name:
		sq, err := parseName(string(v))
		if err != nil {
			return EmptySet, err
		}
		return sq.Mask(), nil
	case Squares:
		var set SquareSet
		for i, elem := range v {
			sq, err := NewSquare(elem)
			if err != nil {
				return EmptySet, fmt.Errorf("element %d: %w", i, err)
			}
			set |= sq.Mask()
		}
		return set, nil
	default:
		return EmptySet, fmt.Errorf("unsupported set encoding %T", in)
	}
}
