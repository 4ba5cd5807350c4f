package board

import "fmt"

// Color represents a side. Sente moves first.
type Color uint8

const (
	Sente Color = iota
	Gote
	NoColor Color = 2
)

// Other returns the opposite side.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the side name.
func (c Color) String() string {
	switch c {
	case Sente:
		return "sente"
	case Gote:
		return "gote"
	default:
		return "none"
	}
}

// PieceType is the 4-bit kind of a piece. Promoted kinds are base kind + 8.
type PieceType uint8

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Bishop
	Rook
	Gold
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
	NoPieceType PieceType = 14
)

const promotionOffset = 8

// NumPieceTypes is the number of real piece types.
const NumPieceTypes = 14

// CanPromote returns true for pieces that have a promoted counterpart.
func (pt PieceType) CanPromote() bool {
	return pt < Gold
}

// IsPromoted returns true for promoted kinds.
func (pt PieceType) IsPromoted() bool {
	return pt >= ProPawn && pt <= Dragon
}

// Promote returns the promoted kind.
func (pt PieceType) Promote() PieceType {
	if !pt.CanPromote() {
		panic(fmt.Sprintf("board: piece type %d cannot promote", pt))
	}
	return pt + promotionOffset
}

// Unpromote returns the base kind, which is the kind a captured piece enters the hand as.
func (pt PieceType) Unpromote() PieceType {
	if pt.IsPromoted() {
		return pt - promotionOffset
	}
	return pt
}

// String returns the piece type name.
func (pt PieceType) String() string {
	names := [...]string{
		"Pawn", "Lance", "Knight", "Silver", "Bishop", "Rook", "Gold", "King",
		"ProPawn", "ProLance", "ProKnight", "ProSilver", "Horse", "Dragon",
	}
	if pt >= NoPieceType {
		return "None"
	}
	return names[pt]
}

// letters holds the SFEN letter of each base kind.
const letters = "plnsbrgk"

// Char returns the lowercase SFEN letter of the base kind.
func (pt PieceType) Char() byte {
	return letters[pt.Unpromote()]
}

// Piece packs a PieceType (low 4 bits) with a Color (bit 4).
type Piece uint8

// NoPiece is the empty-square sentinel.
const NoPiece Piece = Piece(NoPieceType)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(c)<<4 | Piece(pt)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	return PieceType(p & 0x0F)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p >> 4)
}

// IsValid returns true for the 28 real (type, side) combinations.
func (p Piece) IsValid() bool {
	return p.Type() < NoPieceType && p>>4 <= 1
}

// String returns the SFEN token for the piece: "+" for promoted kinds,
// uppercase for sente, lowercase for gote. NoPiece renders as a blank.
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	if !p.IsValid() {
		panic(fmt.Sprintf("board: invalid piece code %#x", uint8(p)))
	}
	c := p.Type().Char()
	if p.Color() == Sente {
		c -= 'a' - 'A'
	}
	if p.Type().IsPromoted() {
		return "+" + string(c)
	}
	return string(c)
}

// PieceTypeFromChar converts an SFEN letter (either case) to its base kind.
func PieceTypeFromChar(c byte) (PieceType, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	for i := 0; i < len(letters); i++ {
		if letters[i] == c {
			return PieceType(i), true
		}
	}
	return NoPieceType, false
}

// PieceFromChar converts an SFEN letter to a Piece; the case selects the side.
func PieceFromChar(c byte) Piece {
	pt, ok := PieceTypeFromChar(c)
	if !ok {
		return NoPiece
	}
	if c >= 'a' && c <= 'z' {
		return NewPiece(pt, Gote)
	}
	return NewPiece(pt, Sente)
}
