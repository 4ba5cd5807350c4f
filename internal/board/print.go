package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var gotePiece = color.New(color.FgRed, color.Bold)

// PrintState writes a box-drawn board, top rank first, followed by the side
// to move, both hands and the ply. Gote pieces are colored when the
// terminal supports it.
func (b *Board) PrintState(w io.Writer) {
	pos := b.top()

	fmt.Fprintln(w, "  9   8   7   6   5   4   3   2   1")
	fmt.Fprintln(w, "┌"+strings.Repeat("───┬", NumFiles-1)+"───┐")

	for rank := NumRanks - 1; rank >= 0; rank-- {
		for file := 0; file < NumFiles; file++ {
			piece := pos.PieceAt(NewSquare(file, rank))
			cell := piece.String()
			if len(cell) == 1 {
				cell = " " + cell + " "
			} else {
				cell += " "
			}
			if piece != NoPiece && piece.Color() == Gote {
				cell = gotePiece.Sprint(cell)
			}
			fmt.Fprint(w, "│"+cell)
		}
		fmt.Fprintf(w, "│ %c\n", 'i'-rank)

		if rank != 0 {
			fmt.Fprintln(w, "├"+strings.Repeat("───┼", NumFiles-1)+"───┤")
		}
	}

	fmt.Fprintln(w, "└"+strings.Repeat("───┴", NumFiles-1)+"───┘")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "stm: %v\n", b.stm)
	fmt.Fprintf(w, "sente hand: %s\n", pos.hands[Sente])
	fmt.Fprintf(w, "gote hand: %s\n", strings.ToLower(pos.hands[Gote].String()))
	fmt.Fprintf(w, "ply count: %d\n", b.ply)
	fmt.Fprintf(w, "sfen: %s\n", b.SFEN())
}
