// Package board implements the shogi board representation, attack tables
// and move generation using 128-bit bitboards.
package board

import "fmt"

// Square is a board index 0..80.
// Index 0 is the first player's near-left corner (USI "9i"), rank = idx/9, file = idx%9.
type Square uint8

// Board geometry.
const (
	NumFiles   = 9
	NumRanks   = 9
	NumSquares = NumFiles * NumRanks

	NoSquare Square = NumSquares
)

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		panic(fmt.Sprintf("board: square out of range: file=%d rank=%d", file, rank))
	}
	return Square(rank*NumFiles + file)
}

// File returns the file of the square (0-8, 0 = USI file 9).
func (sq Square) File() int {
	return int(sq) % NumFiles
}

// Rank returns the rank of the square (0-8, 0 = USI rank i).
func (sq Square) Rank() int {
	return int(sq) / NumFiles
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the rank counted from the given side's own back rank.
func (sq Square) RelativeRank(c Color) int {
	if c == Sente {
		return sq.Rank()
	}
	return NumRanks - 1 - sq.Rank()
}

// String returns USI notation for the square (e.g. "7g").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", '9'-sq.File(), 'i'-sq.Rank())
}

// ParseSquare parses USI notation (e.g. "5e") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	file := int('9' - s[0])
	rank := int('i' - s[1])

	if file < 0 || file >= NumFiles || rank < 0 || rank >= NumRanks {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	return NewSquare(file, rank), nil
}
