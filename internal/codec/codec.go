// Package codec serializes squares and square sets for storage and transport.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/hailam/chesscoord/internal/board"
)

// Format selects the wire representation.
type Format byte

const (
	// FormatAlgebraic encodes a square as "e4" and a set as ["a1","e4"].
	FormatAlgebraic Format = iota
	// FormatIndex encodes a square as 28 and a set as its numeric mask.
	FormatIndex
)

// ErrUnknownFormat is returned for format names or tags that are not defined.
var ErrUnknownFormat = errors.New("unknown wire format")

// ParseFormat maps a format name ("algebraic" or "index") to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "algebraic", "":
		return FormatAlgebraic, nil
	case "index":
		return FormatIndex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

func (f Format) String() string {
	switch f {
	case FormatAlgebraic:
		return "algebraic"
	case FormatIndex:
		return "index"
	default:
		return "format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Valid reports whether f is a defined format.
func (f Format) Valid() bool {
	return f == FormatAlgebraic || f == FormatIndex
}

// Codec encodes and decodes board values as JSON in one Format.
type Codec struct {
	Format Format
}

// New returns a codec for the given format.
func New(format Format) Codec {
	return Codec{Format: format}
}

// EncodeSquare encodes a single square.
func (c Codec) EncodeSquare(sq board.Square) ([]byte, error) {
	switch c.Format {
	case FormatIndex:
		return sonic.Marshal(sq.Index())
	case FormatAlgebraic:
		return sonic.Marshal(sq.String())
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, c.Format)
	}
}

// DecodeSquare decodes a square, validating it like any other input.
func (c Codec) DecodeSquare(data []byte) (board.Square, error) {
	switch c.Format {
	case FormatIndex:
		var idx int64
		if err := sonic.Unmarshal(data, &idx); err != nil {
			return board.Square{}, fmt.Errorf("decode square index: %w", err)
		}
		return board.SquareOf(idx)
	case FormatAlgebraic:
		var name string
		if err := sonic.Unmarshal(data, &name); err != nil {
			return board.Square{}, fmt.Errorf("decode square name: %w", err)
		}
		return board.NewSquare(board.Name(name))
	default:
		return board.Square{}, fmt.Errorf("%w: %v", ErrUnknownFormat, c.Format)
	}
}

// EncodeSet encodes a square set. Algebraic sets list members in ascending
// index order.
func (c Codec) EncodeSet(set board.SquareSet) ([]byte, error) {
	switch c.Format {
	case FormatIndex:
		return sonic.Marshal(set.Mask())
	case FormatAlgebraic:
		names := make([]string, 0, set.Len())
		set.ForEach(func(sq board.Square) {
			names = append(names, sq.String())
		})
		return sonic.Marshal(names)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, c.Format)
	}
}

// DecodeSet decodes a square set. A numeric mask that does not fit in 64
// bits, or is below zero, fails with board.ErrMaskOutOfRange.
func (c Codec) DecodeSet(data []byte) (board.SquareSet, error) {
	switch c.Format {
	case FormatIndex:
		return decodeMask(data)
	case FormatAlgebraic:
		var names []string
		if err := sonic.Unmarshal(data, &names); err != nil {
			return board.EmptySet, fmt.Errorf("decode square names: %w", err)
		}
		elems := make(board.Squares, len(names))
		for i, name := range names {
			elems[i] = board.Name(name)
		}
		return board.NewSquareSet(elems)
	default:
		return board.EmptySet, fmt.Errorf("%w: %v", ErrUnknownFormat, c.Format)
	}
}

// numberAPI decodes JSON numbers as json.Number so masks above 2^53 keep
// every bit.
var numberAPI = sonic.Config{UseNumber: true}.Froze()

func decodeMask(data []byte) (board.SquareSet, error) {
	var v interface{}
	if err := numberAPI.Unmarshal(data, &v); err != nil {
		return board.EmptySet, fmt.Errorf("decode square mask: %w", err)
	}
	num, ok := v.(json.Number)
	if !ok {
		return board.EmptySet, fmt.Errorf("decode square mask: expected a number, got %T", v)
	}

	text := num.String()
	digits, negative := strings.CutPrefix(text, "-")
	mask, err := strconv.ParseUint(digits, 10, 64)
	switch {
	case err == nil && (!negative || mask == 0):
		return board.NewSquareSet(board.Mask(mask))
	case err == nil || errors.Is(err, strconv.ErrRange):
		return board.EmptySet, &board.SquareError{Input: text, Err: board.ErrMaskOutOfRange}
	default:
		return board.EmptySet, fmt.Errorf("decode square mask %q: %w", text, err)
	}
}
