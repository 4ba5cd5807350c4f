package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hailam/shogiplay/internal/board"
)

func TestWriteGoTable(t *testing.T) {
	var m board.Magics
	m.Rook[0] = board.NewBitboard(0x8000000000000001, 0x1ffff)

	var buf bytes.Buffer
	if err := writeGoTable(&buf, &m); err != nil {
		t.Fatal(err)
	}
	src := buf.String()

	if !strings.HasPrefix(src, "package board\n") {
		t.Errorf("missing package clause:\n%s", src[:40])
	}
	if n := strings.Count(src, "{0x"); n != 4*board.NumSquares {
		t.Errorf("wrote %d entries, want %d", n, 4*board.NumSquares)
	}
	if !strings.Contains(src, "\tRook: [NumSquares]Bitboard{\n\t\t{0x8000000000000001, 0x1ffff},") {
		t.Errorf("rook entry not rendered:\n%s", src)
	}
	if got := strings.Count(src, "\n\t\t\t{0x"); got != 2*board.NumSquares/3 {
		t.Errorf("lance rows = %d, want %d", got, 2*board.NumSquares/3)
	}
}
