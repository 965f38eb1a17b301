// Package inspect implements a small line protocol for examining squares and
// square sets: parse them, render them, encode them and keep named sets in
// storage.
package inspect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/chesscoord/internal/board"
	"github.com/hailam/chesscoord/internal/codec"
	"github.com/hailam/chesscoord/internal/render"
	"github.com/hailam/chesscoord/internal/storage"
)

// ErrQuit is returned by Exec for the "quit" command.
var ErrQuit = errors.New("quit")

// ErrNoStorage is returned by storage commands when no database is open.
var ErrNoStorage = errors.New("no database configured")

// ErrUsage is returned for unknown commands or missing arguments.
var ErrUsage = errors.New("usage")

// Config holds the shell settings.
type Config struct {
	Format codec.Format
	Color  bool
	Flip   bool
}

// Shell executes inspection commands against a current square set.
type Shell struct {
	out     io.Writer
	store   *storage.Storage
	codec   codec.Codec
	opts    render.Options
	current board.SquareSet
}

// New creates a shell writing to out. store may be nil, in which case the
// storage commands fail with ErrNoStorage.
func New(out io.Writer, store *storage.Storage, cfg Config) *Shell {
	return &Shell{
		out:   out,
		store: store,
		codec: codec.New(cfg.Format),
		opts:  render.Options{Color: cfg.Color, Flip: cfg.Flip},
	}
}

// Current returns the current square set.
func (s *Shell) Current() board.SquareSet {
	return s.current
}

// Run reads commands line by line until EOF or "quit". Command errors are
// reported on the output and do not stop the loop.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := s.Exec(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command line.
//
// Commands:
//   - square <sq>            describe one square (name or index)
//   - set <sq>...            replace the current set
//   - add <sq>... / remove <sq>...
//   - show                   draw the current set
//   - flip                   toggle board orientation
//   - encode / decode <data> convert the current set with the wire codec
//   - save <name> / load <name> / delete <name> / list
//   - quit
func (s *Shell) Exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "square", "sq":
		return s.handleSquare(args)
	case "set":
		return s.handleSet(args)
	case "add":
		return s.handleAdd(args)
	case "remove", "rm":
		return s.handleRemove(args)
	case "show", "d":
		s.show()
		return nil
	case "flip":
		s.opts.Flip = !s.opts.Flip
		s.show()
		return nil
	case "encode":
		return s.handleEncode()
	case "decode":
		return s.handleDecode(strings.TrimSpace(strings.TrimPrefix(line, cmd)))
	case "save":
		return s.handleSave(args)
	case "load":
		return s.handleLoad(args)
	case "delete":
		return s.handleDelete(args)
	case "list", "ls":
		return s.handleList()
	case "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (s *Shell) handleSquare(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: square <sq>...", ErrUsage)
	}
	for _, arg := range args {
		in, err := squarish(arg)
		if err != nil {
			return err
		}
		sq, err := board.NewSquare(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, render.Describe(sq))
	}
	return nil
}

func (s *Shell) handleSet(args []string) error {
	set, err := parseSet(args)
	if err != nil {
		return err
	}
	s.current = set
	s.show()
	return nil
}

func (s *Shell) handleAdd(args []string) error {
	set, err := parseSet(args)
	if err != nil {
		return err
	}
	s.current = s.current.Union(set)
	s.show()
	return nil
}

func (s *Shell) handleRemove(args []string) error {
	set, err := parseSet(args)
	if err != nil {
		return err
	}
	s.current = s.current.Difference(set)
	s.show()
	return nil
}

func (s *Shell) handleEncode() error {
	data, err := s.codec.EncodeSet(s.current)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s\n", data)
	return nil
}

func (s *Shell) handleDecode(data string) error {
	if data == "" {
		return fmt.Errorf("%w: decode <data>", ErrUsage)
	}
	set, err := s.codec.DecodeSet([]byte(data))
	if err != nil {
		return err
	}
	s.current = set
	s.show()
	return nil
}

func (s *Shell) handleSave(args []string) error {
	if s.store == nil {
		return ErrNoStorage
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: save <name>", ErrUsage)
	}
	if err := s.store.SaveSet(args[0], s.current); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s (%d squares)\n", args[0], s.current.Len())
	return nil
}

func (s *Shell) handleLoad(args []string) error {
	if s.store == nil {
		return ErrNoStorage
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: load <name>", ErrUsage)
	}
	set, err := s.store.LoadSet(args[0])
	if err != nil {
		return err
	}
	s.current = set
	s.show()
	return nil
}

func (s *Shell) handleDelete(args []string) error {
	if s.store == nil {
		return ErrNoStorage
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <name>", ErrUsage)
	}
	return s.store.DeleteSet(args[0])
}

func (s *Shell) handleList() error {
	if s.store == nil {
		return ErrNoStorage
	}
	names, err := s.store.ListSets()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
	return nil
}

func (s *Shell) show() {
	fmt.Fprint(s.out, render.Render(s.current, s.opts))
}

// squarish maps a command argument to a square encoding: arguments made only
// of decimal digits are indices, anything else is algebraic notation.
func squarish(arg string) (board.Squarish, error) {
	if !isDigits(arg) {
		return board.Name(arg), nil
	}
	n, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return nil, &board.SquareError{Input: arg, Err: board.ErrOutOfRange}
	}
	return board.Index(n), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseSet(args []string) (board.SquareSet, error) {
	elems := make(board.Squares, len(args))
	for i, arg := range args {
		in, err := squarish(arg)
		if err != nil {
			return board.EmptySet, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = in
	}
	return board.NewSquareSet(elems)
}
