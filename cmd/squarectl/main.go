package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hailam/chesscoord/internal/codec"
	"github.com/hailam/chesscoord/internal/inspect"
	"github.com/hailam/chesscoord/internal/storage"
)

var (
	format  = flag.String("format", "algebraic", "wire format for encode/decode and storage: algebraic or index")
	dbDir   = flag.String("db", "", "database directory (\"default\" for the platform data dir)")
	noColor = flag.Bool("no-color", false, "disable ANSI colours")
	flip    = flag.Bool("flip", false, "draw boards from Black's side")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		_, _ = out.Write([]byte("usage: squarectl [flags] [command args...]\n" +
			"Without a command, commands are read from stdin.\n\n"))
		flag.PrintDefaults()
	}
	flag.Parse()

	wire, err := codec.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	// Database location (via flag or environment variable)
	dir := *dbDir
	if dir == "" {
		dir = os.Getenv("SQUARECTL_DB")
	}

	var store *storage.Storage
	switch dir {
	case "":
	case "default":
		store, err = storage.NewStorage(wire)
	default:
		store, err = storage.Open(dir, wire)
	}
	if err != nil {
		log.Fatal("could not open database: ", err)
	}
	if store != nil {
		defer store.Close()
	}

	shell := inspect.New(os.Stdout, store, inspect.Config{
		Format: wire,
		Color:  !*noColor && os.Getenv("NO_COLOR") == "",
		Flip:   *flip,
	})

	if flag.NArg() == 0 {
		if err := shell.Run(os.Stdin); err != nil {
			log.Printf("read error: %v", err)
		}
		return
	}

	if err := shell.Exec(strings.Join(flag.Args(), " ")); err != nil && !errors.Is(err, inspect.ErrQuit) {
		log.Printf("Error: %v", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
