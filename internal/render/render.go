// Package render draws square sets as terminal board diagrams.
package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/hailam/chesscoord/internal/board"
)

// Cell glyphs
const (
	glyphMember = "x"
	glyphLight  = "."
	glyphDark   = ":"
	glyphFocus  = "*"
)

// Options controls how a board is drawn.
type Options struct {
	// Color enables ANSI colouring.
	Color bool
	// Flip draws the board from Black's side (rank 1 on top, h-file left).
	Flip bool
	// Focus marks one square separately from the set, if non-nil.
	Focus *board.Square
}

// Render returns an 8x8 diagram of set with rank and file labels.
func Render(set board.SquareSet, opts Options) string {
	au := aurora.NewAurora(opts.Color)

	rows := []int{7, 6, 5, 4, 3, 2, 1, 0}
	cols := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if opts.Flip {
		rows, cols = cols, rows
	}

	squares := board.AllSquares()

	var sb strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&sb, "%d ", au.Faint(row+1))
		for _, col := range cols {
			sb.WriteString(cell(au, set, squares[row*8+col], opts.Focus).String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ")
	for _, col := range cols {
		fmt.Fprintf(&sb, "%s ", au.Faint(string(rune('a'+col))))
	}
	sb.WriteString("\n")
	return sb.String()
}

func cell(au aurora.Aurora, set board.SquareSet, sq board.Square, focus *board.Square) aurora.Value {
	switch {
	case focus != nil && *focus == sq:
		return au.Yellow(glyphFocus).Bold()
	case set.Contains(sq):
		return au.Green(glyphMember).Bold()
	case sq.IsLight():
		return au.White(glyphLight)
	default:
		return au.Blue(glyphDark)
	}
}

// Describe returns a one-line summary of a square: its name, index and
// row/column and rank/file views.
func Describe(sq board.Square) string {
	row, col := sq.RC()
	rank, file := sq.RF()
	return fmt.Sprintf("%s index=%d row=%d col=%d rank=%d file=%c", sq, sq.Index(), row, col, rank, file)
}
