package board

import "fmt"

// Pre-computed attack tables for non-sliding pieces
var (
	pawnAttacks   [2][NumSquares]Bitboard // [Color][Square]
	knightAttacks [2][NumSquares]Bitboard
	silverAttacks [2][NumSquares]Bitboard
	goldAttacks   [2][NumSquares]Bitboard
	kingAttacks   [NumSquares]Bitboard
)

// Step patterns from sente's point of view, as (file, rank) deltas. Gote mirrors the rank.
var (
	pawnSteps   = [][2]int{{0, 1}}
	knightSteps = [][2]int{{-1, 2}, {1, 2}}
	silverSteps = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, -1}, {1, -1}}
	goldSteps   = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
	kingSteps   = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

func init() {
	initRays()
	initStepAttacks()
}

func stepAttacks(sq Square, c Color, steps [][2]int) Bitboard {
	var attacks Bitboard
	sign := 1
	if c == Gote {
		sign = -1
	}
	for _, d := range steps {
		f, r := sq.File()+d[0], sq.Rank()+d[1]*sign
		if f >= 0 && f < NumFiles && r >= 0 && r < NumRanks {
			attacks = attacks.Set(NewSquare(f, r))
		}
	}
	return attacks
}

func initStepAttacks() {
	for sq := Square(0); sq < NoSquare; sq++ {
		for c := Sente; c <= Gote; c++ {
			pawnAttacks[c][sq] = stepAttacks(sq, c, pawnSteps)
			knightAttacks[c][sq] = stepAttacks(sq, c, knightSteps)
			silverAttacks[c][sq] = stepAttacks(sq, c, silverSteps)
			goldAttacks[c][sq] = stepAttacks(sq, c, goldSteps)
		}
		kingAttacks[sq] = stepAttacks(sq, Sente, kingSteps)
	}
}

// PawnAttacks returns the pawn attack bitboard for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the knight attack bitboard for a square and color.
func KnightAttacks(sq Square, c Color) Bitboard {
	return knightAttacks[c][sq]
}

// SilverAttacks returns the silver attack bitboard for a square and color.
func SilverAttacks(sq Square, c Color) Bitboard {
	return silverAttacks[c][sq]
}

// GoldAttacks returns the attack bitboard of gold and the promoted minors.
func GoldAttacks(sq Square, c Color) Bitboard {
	return goldAttacks[c][sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// LanceAttacks returns the lance attack bitboard for a square with given occupancy.
func LanceAttacks(sq Square, c Color, occupied Bitboard) Bitboard {
	return activeSliders().Lance(sq, c, occupied)
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return activeSliders().Bishop(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return activeSliders().Rook(sq, occupied)
}

// HorseAttacks returns the promoted bishop attacks: bishop plus king steps.
func HorseAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied).Or(kingAttacks[sq])
}

// DragonAttacks returns the promoted rook attacks: rook plus king steps.
func DragonAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied).Or(kingAttacks[sq])
}

// Attacks returns the squares a piece on sq threatens, own pieces included.
func Attacks(p Piece, sq Square, occupied Bitboard) Bitboard {
	c := p.Color()
	switch p.Type() {
	case Pawn:
		return pawnAttacks[c][sq]
	case Lance:
		return LanceAttacks(sq, c, occupied)
	case Knight:
		return knightAttacks[c][sq]
	case Silver:
		return silverAttacks[c][sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return goldAttacks[c][sq]
	case King:
		return kingAttacks[sq]
	case Horse:
		return HorseAttacks(sq, occupied)
	case Dragon:
		return DragonAttacks(sq, occupied)
	}
	panic(fmt.Sprintf("board: attacks of invalid piece %#x", uint8(p)))
}

// AttackersByColor returns the pieces of color c that attack sq under the
// given occupancy. Each pattern is generated from sq as if the defender
// stood there, then intersected with the matching attacker pieces.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	them := c.Other()
	golds := p.pieces[Gold].Or(p.pieces[ProPawn]).Or(p.pieces[ProLance]).Or(p.pieces[ProKnight]).Or(p.pieces[ProSilver])
	bishops := p.pieces[Bishop].Or(p.pieces[Horse])
	rooks := p.pieces[Rook].Or(p.pieces[Dragon])
	kings := p.pieces[King].Or(p.pieces[Horse]).Or(p.pieces[Dragon])

	attackers := pawnAttacks[them][sq].And(p.pieces[Pawn]).
		Or(LanceAttacks(sq, them, occupied).And(p.pieces[Lance])).
		Or(knightAttacks[them][sq].And(p.pieces[Knight])).
		Or(silverAttacks[them][sq].And(p.pieces[Silver])).
		Or(goldAttacks[them][sq].And(golds)).
		Or(BishopAttacks(sq, occupied).And(bishops)).
		Or(RookAttacks(sq, occupied).And(rooks)).
		Or(kingAttacks[sq].And(kings))

	return attackers.And(p.sides[c])
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color, occupied Bitboard) bool {
	return p.AttackersByColor(sq, byColor, occupied).More()
}
