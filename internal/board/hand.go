package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Hand packs the captured-piece counters of one side into 32 bits.
//
//	bits  0-4   pawn   (max 18)
//	bits  5-7   lance  (max 4)
//	bits  8-10  knight (max 4)
//	bits 11-13  silver (max 4)
//	bits 14-15  bishop (max 2)
//	bits 16-17  rook   (max 2)
//	bits 18-20  gold   (max 4)
type Hand uint32

// NumHandTypes is the number of piece types that can be held in hand (Pawn..Gold).
const NumHandTypes = 7

var (
	handShift = [NumHandTypes]uint32{0, 5, 8, 11, 14, 16, 18}
	handBits  = [NumHandTypes]uint32{5, 3, 3, 3, 2, 2, 3}
	handMax   = [NumHandTypes]int{18, 4, 4, 4, 2, 2, 4}
)

// HandOrder is the SFEN output order of hand pieces.
var HandOrder = [NumHandTypes]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

// HandMax returns the largest count a hand can hold for a piece type.
func HandMax(pt PieceType) int {
	return handMax[pt]
}

func handMask(pt PieceType) uint32 {
	if pt > Gold {
		panic(fmt.Sprintf("board: %v cannot be held in hand", pt))
	}
	return (1<<handBits[pt] - 1) << handShift[pt]
}

// Count returns how many pieces of the given base kind are held.
func (h Hand) Count(pt PieceType) int {
	return int((uint32(h) & handMask(pt)) >> handShift[pt])
}

// Set overwrites the counter for a piece type.
func (h *Hand) Set(pt PieceType, n int) {
	if n < 0 || n > handMax[pt] {
		panic(fmt.Sprintf("board: hand count %d out of range for %v", n, pt))
	}
	*h = Hand(uint32(*h)&^handMask(pt) | uint32(n)<<handShift[pt])
}

// Inc adds one piece to the hand.
func (h *Hand) Inc(pt PieceType) {
	h.Set(pt, h.Count(pt)+1)
}

// Dec removes one piece from the hand. Panics when the counter is zero.
func (h *Hand) Dec(pt PieceType) {
	n := h.Count(pt)
	if n == 0 {
		panic(fmt.Sprintf("board: hand has no %v to remove", pt))
	}
	h.Set(pt, n-1)
}

// IsEmpty returns true if no pieces are held.
func (h Hand) IsEmpty() bool {
	return h == 0
}

// String renders the hand in SFEN style with uppercase letters (e.g. "R2P"),
// or "-" when empty.
func (h Hand) String() string {
	if h.IsEmpty() {
		return "-"
	}
	var sb strings.Builder
	for _, pt := range HandOrder {
		n := h.Count(pt)
		if n == 0 {
			continue
		}
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte(pt.Char() - ('a' - 'A'))
	}
	return sb.String()
}
