package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [2][NumPieceTypes][NumSquares]uint64 // [Color][PieceType][Square]
	zobristHand       [2][NumHandTypes][19]uint64          // [Color][PieceType][count]; count 0 is zero
	zobristSideToMove uint64                               // XOR when gote to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt < NoPieceType; pt++ {
			for sq := Square(0); sq < NoSquare; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt <= Gold; pt++ {
			for n := 1; n <= handMax[pt]; n++ {
				zobristHand[c][pt][n] = rng.next()
			}
		}
	}

	zobristSideToMove = rng.next()
}

// ComputeKey recomputes the zobrist key from scratch.
func (p *Position) ComputeKey(stm Color) uint64 {
	var key uint64
	for sq := Square(0); sq < NoSquare; sq++ {
		if pc := p.mailbox[sq]; pc != NoPiece {
			key ^= zobristPiece[pc.Color()][pc.Type()][sq]
		}
	}
	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt <= Gold; pt++ {
			key ^= zobristHand[c][pt][p.hands[c].Count(pt)]
		}
	}
	if stm == Gote {
		key ^= zobristSideToMove
	}
	return key
}
