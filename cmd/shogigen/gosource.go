package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hailam/shogiplay/internal/board"
)

const perRow = 3

// writeGoTable writes the multipliers as the board package's magics_table.go.
func writeGoTable(w io.Writer, m *board.Magics) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "package board")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "// Multipliers found by FindMagics(DefaultMagicSeed). Regenerate with")
	fmt.Fprintln(bw, "// cmd/shogigen and keep them in sync with the search.")
	fmt.Fprintln(bw, "var defaultMagics = Magics{")
	fmt.Fprintln(bw, "\tLance: [2][NumSquares]Bitboard{")
	for c := range m.Lance {
		fmt.Fprintln(bw, "\t\t{")
		writeRows(bw, m.Lance[c][:], "\t\t\t")
		fmt.Fprintln(bw, "\t\t},")
	}
	fmt.Fprintln(bw, "\t},")
	fmt.Fprintln(bw, "\tBishop: [NumSquares]Bitboard{")
	writeRows(bw, m.Bishop[:], "\t\t")
	fmt.Fprintln(bw, "\t},")
	fmt.Fprintln(bw, "\tRook: [NumSquares]Bitboard{")
	writeRows(bw, m.Rook[:], "\t\t")
	fmt.Fprintln(bw, "\t},")
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func writeRows(w io.Writer, magics []board.Bitboard, indent string) {
	for i, bb := range magics {
		lo, hi := bb.Halves()
		switch {
		case i%perRow == 0:
			fmt.Fprint(w, indent)
		default:
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "{0x%016x, 0x%05x},", lo, hi)
		if i%perRow == perRow-1 || i == len(magics)-1 {
			fmt.Fprintln(w)
		}
	}
}
