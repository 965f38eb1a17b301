package codec

import (
	"errors"
	"testing"

	"github.com/hailam/chesscoord/internal/board"
)

func TestSquareRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatAlgebraic, FormatIndex} {
		t.Run(format.String(), func(t *testing.T) {
			c := New(format)
			for _, sq := range board.AllSquares() {
				data, err := c.EncodeSquare(sq)
				if err != nil {
					t.Fatalf("encode %v: %v", sq, err)
				}
				got, err := c.DecodeSquare(data)
				if err != nil {
					t.Fatalf("decode %s: %v", data, err)
				}
				if got != sq {
					t.Errorf("round trip of %v gave %v", sq, got)
				}
			}
		})
	}
}

func TestSquareWireForm(t *testing.T) {
	data, err := New(FormatAlgebraic).EncodeSquare(board.E4)
	if err != nil || string(data) != `"e4"` {
		t.Errorf("algebraic e4 = %s, %v", data, err)
	}
	data, err = New(FormatIndex).EncodeSquare(board.E4)
	if err != nil || string(data) != `28` {
		t.Errorf("index e4 = %s, %v", data, err)
	}
}

func TestSetRoundTrip(t *testing.T) {
	sets := []board.SquareSet{
		board.EmptySet,
		board.FullSet,
		board.E4.Mask(),
		board.FileA | board.Rank8,
		board.LightSquares,
	}
	for _, format := range []Format{FormatAlgebraic, FormatIndex} {
		c := New(format)
		for _, set := range sets {
			data, err := c.EncodeSet(set)
			if err != nil {
				t.Fatalf("%v: encode %#x: %v", format, set.Mask(), err)
			}
			got, err := c.DecodeSet(data)
			if err != nil {
				t.Fatalf("%v: decode %s: %v", format, data, err)
			}
			if got != set {
				t.Errorf("%v: round trip of %#x gave %#x", format, set.Mask(), got.Mask())
			}
		}
	}
}

func TestSetWireForm(t *testing.T) {
	set := board.H8.Mask().With(board.A1).With(board.E4)
	data, err := New(FormatAlgebraic).EncodeSet(set)
	if err != nil || string(data) != `["a1","e4","h8"]` {
		t.Errorf("algebraic set = %s, %v", data, err)
	}
	data, err = New(FormatIndex).EncodeSet(board.A1.Mask().With(board.B1))
	if err != nil || string(data) != `3` {
		t.Errorf("index set = %s, %v", data, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		set    bool
		input  string
		want   error
	}{
		{"index out of range", FormatIndex, false, `64`, board.ErrOutOfRange},
		{"negative index", FormatIndex, false, `-1`, board.ErrOutOfRange},
		{"bad name", FormatAlgebraic, false, `"e9"`, board.ErrInvalidRank},
		{"long name", FormatAlgebraic, false, `"e10"`, board.ErrInvalidLength},
		{"mask too wide", FormatIndex, true, `18446744073709551616`, board.ErrMaskOutOfRange},
		{"negative mask", FormatIndex, true, `-5`, board.ErrMaskOutOfRange},
		{"bad member", FormatAlgebraic, true, `["a1","q1"]`, board.ErrInvalidFile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.format)
			var err error
			if tc.set {
				_, err = c.DecodeSet([]byte(tc.input))
			} else {
				_, err = c.DecodeSquare([]byte(tc.input))
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("index"); err != nil || f != FormatIndex {
		t.Errorf("ParseFormat(index) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatAlgebraic {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("binary"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := New(Format(9)).EncodeSquare(board.A1); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestDecodeMaskNumbers(t *testing.T) {
	c := New(FormatIndex)

	tests := []struct {
		input string
		want  board.SquareSet
	}{
		{`0`, board.EmptySet},
		{`-0`, board.EmptySet},
		{` 3 `, board.A1.Mask().With(board.B1)},
		{`9223372036854775808`, board.H8.Mask()},
		{`18446744073709551615`, board.FullSet},
	}
	for _, tc := range tests {
		got, err := c.DecodeSet([]byte(tc.input))
		if err != nil {
			t.Errorf("DecodeSet(%s) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DecodeSet(%s) = %#x, want %#x", tc.input, got.Mask(), tc.want.Mask())
		}
	}

	for _, input := range []string{`"3"`, `1.5`, `[1]`, `nope`} {
		_, err := c.DecodeSet([]byte(input))
		if err == nil {
			t.Errorf("DecodeSet(%s) should fail", input)
			continue
		}
		if errors.Is(err, board.ErrMaskOutOfRange) {
			t.Errorf("DecodeSet(%s) is malformed, not out of range: %v", input, err)
		}
	}

	if _, err := c.DecodeSet([]byte(`-18446744073709551616`)); !errors.Is(err, board.ErrMaskOutOfRange) {
		t.Errorf("Expected ErrMaskOutOfRange, got %v", err)
	}
}
