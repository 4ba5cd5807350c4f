package board

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares. Squares 0-63 live in lo, squares 64-80 in
// the low 17 bits of hi. Bits above square 80 are always zero.
type Bitboard struct {
	lo, hi uint64
}

const hiMask uint64 = 1<<(NumSquares-64) - 1

// Special masks
var (
	Empty = Bitboard{}
	Full  = Bitboard{^uint64(0), hiMask}
)

// FileMask and RankMask hold one mask per file and per rank (0-8).
var FileMask, RankMask = fileRankMasks()

func fileRankMasks() (files [NumFiles]Bitboard, ranks [NumRanks]Bitboard) {
	for sq := Square(0); sq < NoSquare; sq++ {
		files[sq.File()] = files[sq.File()].Set(sq)
		ranks[sq.Rank()] = ranks[sq.Rank()].Set(sq)
	}
	return files, ranks
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	if sq < 64 {
		return Bitboard{lo: 1 << sq}
	}
	return Bitboard{hi: 1 << (sq - 64)}
}

// NewBitboard builds a bitboard from its two halves, dropping bits past square 80.
func NewBitboard(lo, hi uint64) Bitboard {
	return Bitboard{lo, hi & hiMask}
}

// Halves returns the raw halves of the bitboard.
func (b Bitboard) Halves() (lo, hi uint64) {
	return b.lo, b.hi
}

// And returns the intersection.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.lo & o.lo, b.hi & o.hi}
}

// Or returns the union.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.lo | o.lo, b.hi | o.hi}
}

// Xor returns the symmetric difference.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b.lo ^ o.lo, b.hi ^ o.hi}
}

// AndNot returns the squares of b that are not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.lo &^ o.lo, b.hi &^ o.hi}
}

// Not returns the complement within the 81 board squares.
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b.lo, ^b.hi & hiMask}
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b.Or(SquareBB(sq))
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b.AndNot(SquareBB(sq))
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	if sq < 64 {
		return b.lo&(1<<sq) != 0
	}
	return b.hi&(1<<(sq-64)) != 0
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b.lo|b.hi == 0
}

// More returns true if there are any bits set.
func (b Bitboard) More() bool {
	return b.lo|b.hi != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// LSB returns the lowest set square. Panics on an empty bitboard.
func (b Bitboard) LSB() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	if b.hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.hi))
	}
	panic("board: LSB of empty bitboard")
}

// MSB returns the highest set square. Panics on an empty bitboard.
func (b Bitboard) MSB() Square {
	if b.hi != 0 {
		return Square(127 - bits.LeadingZeros64(b.hi))
	}
	if b.lo != 0 {
		return Square(63 - bits.LeadingZeros64(b.lo))
	}
	panic("board: MSB of empty bitboard")
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	if b.lo != 0 {
		b.lo &= b.lo - 1
	} else {
		b.hi &= b.hi - 1
	}
	return sq
}

// Shl shifts every square n indices up (toward rank 8), dropping squares past 80.
func (b Bitboard) Shl(n uint) Bitboard {
	switch {
	case n == 0:
		return b
	case n >= 64:
		return Bitboard{0, (b.lo << (n - 64)) & hiMask}
	}
	return Bitboard{b.lo << n, (b.hi<<n | b.lo>>(64-n)) & hiMask}
}

// Shr shifts every square n indices down (toward rank 0).
func (b Bitboard) Shr(n uint) Bitboard {
	switch {
	case n == 0:
		return b
	case n >= 64:
		return Bitboard{b.hi >> (n - 64), 0}
	}
	return Bitboard{b.lo>>n | b.hi<<(64-n), b.hi >> n}
}

// Forward shifts the bitboard one rank toward the given side's far edge.
func (b Bitboard) Forward(c Color) Bitboard {
	if c == Sente {
		return b.Shl(NumFiles)
	}
	return b.Shr(NumFiles)
}

// Squares returns a single-use sequence of the set squares in ascending order.
func (b Bitboard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for b.More() {
			if !yield(b.PopLSB()) {
				return
			}
		}
	}
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b.More() {
		f(b.PopLSB())
	}
}

// String returns a visual representation of the bitboard, top rank first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := NumRanks - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%c ", 'i'-rank)
		for file := 0; file < NumFiles; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  9 8 7 6 5 4 3 2 1\n")
	return sb.String()
}
