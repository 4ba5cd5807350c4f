package board

import "sync"

// pextAttacks indexes the attack tables by the blocker bits themselves,
// compacted with a parallel bit extract. There is no hashing, so no collisions.
// Go exposes no PEXT intrinsic; extractBits is a software version over the two halves.
type pextAttacks struct {
	lanceMask  [2][NumSquares]Bitboard
	bishopMask [NumSquares]Bitboard
	rookMask   [NumSquares]Bitboard

	lanceTable  [2][NumSquares][1 << lanceShift]Bitboard
	bishopTable [NumSquares][1 << bishopShift]Bitboard
	rookTable   [NumSquares][1 << rookShift]Bitboard
}

func (p *pextAttacks) Lance(sq Square, c Color, occ Bitboard) Bitboard {
	return p.lanceTable[c][sq][extractBits(occ, p.lanceMask[c][sq])]
}

func (p *pextAttacks) Bishop(sq Square, occ Bitboard) Bitboard {
	return p.bishopTable[sq][extractBits(occ, p.bishopMask[sq])]
}

func (p *pextAttacks) Rook(sq Square, occ Bitboard) Bitboard {
	return p.rookTable[sq][extractBits(occ, p.rookMask[sq])]
}

var pextTables = sync.OnceValue(newPextAttacks)

func newPextAttacks() *pextAttacks {
	p := new(pextAttacks)
	var ray rayScan

	for sq := Square(0); sq < NoSquare; sq++ {
		for c := Sente; c <= Gote; c++ {
			mask := lanceMask(sq, c)
			p.lanceMask[c][sq] = mask
			for i := 0; i < 1<<mask.PopCount(); i++ {
				p.lanceTable[c][sq][i] = ray.Lance(sq, c, depositBits(i, mask))
			}
		}

		mask := bishopMask(sq)
		p.bishopMask[sq] = mask
		for i := 0; i < 1<<mask.PopCount(); i++ {
			p.bishopTable[sq][i] = ray.Bishop(sq, depositBits(i, mask))
		}

		mask = rookMask(sq)
		p.rookMask[sq] = mask
		for i := 0; i < 1<<mask.PopCount(); i++ {
			p.rookTable[sq][i] = ray.Rook(sq, depositBits(i, mask))
		}
	}

	return p
}
