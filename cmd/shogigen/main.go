// Command shogigen searches magic multipliers for the lance, bishop and rook
// tables. It writes either a blob for the -tables flag of shogiplay-usi or,
// with -format go, the board package's built-in magics_table.go.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/stdr"

	"github.com/hailam/shogiplay/internal/board"
	"github.com/hailam/shogiplay/internal/storage"
)

var (
	seed      = flag.Uint64("seed", board.DefaultMagicSeed, "search seed")
	out       = flag.String("out", "", "output file (default: data dir for blob, stdout for go)")
	format    = flag.String("format", "blob", "output format: blob or go")
	verbosity = flag.Int("v", 0, "log verbosity")
)

func main() {
	flag.Parse()

	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	if *format != "blob" && *format != "go" {
		log.Fatalf("unknown format %q (want blob or go)", *format)
	}

	path := *out
	if path == "" && *format == "blob" {
		var err error
		if path, err = storage.GetTablesPath(); err != nil {
			log.Fatal(err)
		}
	}

	start := time.Now()
	magics, err := board.FindMagics(*seed)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("magics found", "seed", *seed, "elapsed", time.Since(start))

	if *format == "go" {
		if err := writeGoSource(path, magics); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}

	w := bufio.NewWriter(f)
	n, err := board.WriteMagics(w, magics)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("tables written", "path", path, "size", humanize.Bytes(uint64(n)))
}

func writeGoSource(path string, magics *board.Magics) error {
	if path == "" {
		return writeGoTable(os.Stdout, magics)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeGoTable(f, magics); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
