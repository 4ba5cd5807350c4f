package board

import "fmt"

// Position is one snapshot of the full board state. The Board keeps a stack
// of them; a superseded Position is never mutated again.
type Position struct {
	// Occupancy per side and per piece type. A piece type bitboard holds both sides.
	sides  [2]Bitboard
	pieces [NumPieceTypes]Bitboard

	// Square-to-piece lookup, kept in sync with the bitboards
	mailbox [NumSquares]Piece

	hands [2]Hand

	// Pieces giving check to the side to move
	checkers Bitboard

	// Zobrist key, side to move included
	key uint64
}

func emptyPosition() Position {
	var p Position
	for sq := range p.mailbox {
		p.mailbox[sq] = NoPiece
	}
	return p
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.mailbox[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.mailbox[sq] == NoPiece
}

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard {
	return p.sides[Sente].Or(p.sides[Gote])
}

// Side returns the squares occupied by one side.
func (p *Position) Side(c Color) Bitboard {
	return p.sides[c]
}

// Pieces returns the squares holding a piece type, both sides.
func (p *Position) Pieces(pt PieceType) Bitboard {
	return p.pieces[pt]
}

// SidedPieces returns the squares holding a piece type of one side.
func (p *Position) SidedPieces(pt PieceType, c Color) Bitboard {
	return p.pieces[pt].And(p.sides[c])
}

// Hand returns the pieces held by one side.
func (p *Position) Hand(c Color) Hand {
	return p.hands[c]
}

// Checkers returns the pieces attacking the side to move's king.
func (p *Position) Checkers() Bitboard {
	return p.checkers
}

// Key returns the zobrist key.
func (p *Position) Key() uint64 {
	return p.key
}

// KingSquare returns the king square of a side, or NoSquare without a king.
func (p *Position) KingSquare(c Color) Square {
	kings := p.SidedPieces(King, c)
	if kings.IsEmpty() {
		return NoSquare
	}
	return kings.LSB()
}

// AddPiece places a piece on an empty square. No legality is checked.
func (p *Position) AddPiece(sq Square, piece Piece) {
	bb := SquareBB(sq)
	p.sides[piece.Color()] = p.sides[piece.Color()].Xor(bb)
	p.pieces[piece.Type()] = p.pieces[piece.Type()].Xor(bb)
	p.mailbox[sq] = piece
	p.key ^= zobristPiece[piece.Color()][piece.Type()][sq]
}

// RemovePiece takes the given piece off its square. No legality is checked.
func (p *Position) RemovePiece(sq Square, piece Piece) {
	bb := SquareBB(sq)
	p.sides[piece.Color()] = p.sides[piece.Color()].Xor(bb)
	p.pieces[piece.Type()] = p.pieces[piece.Type()].Xor(bb)
	p.mailbox[sq] = NoPiece
	p.key ^= zobristPiece[piece.Color()][piece.Type()][sq]
}

// MovePiece removes victim from to (unless NoPiece), lifts the piece on from
// and puts placed on to. placed differs from the lifted piece on promotion.
func (p *Position) MovePiece(from, to Square, victim, placed Piece) {
	if victim != NoPiece {
		p.RemovePiece(to, victim)
	}
	p.RemovePiece(from, p.mailbox[from])
	p.AddPiece(to, placed)
}

func (p *Position) addToHand(c Color, pt PieceType) {
	n := p.hands[c].Count(pt)
	p.hands[c].Inc(pt)
	p.key ^= zobristHand[c][pt][n] ^ zobristHand[c][pt][n+1]
}

func (p *Position) takeFromHand(c Color, pt PieceType) {
	n := p.hands[c].Count(pt)
	p.hands[c].Dec(pt)
	p.key ^= zobristHand[c][pt][n] ^ zobristHand[c][pt][n-1]
}

// Validate checks that the bitboards, mailbox and hands agree.
func (p *Position) Validate() error {
	if p.sides[Sente].And(p.sides[Gote]).More() {
		return fmt.Errorf("sides overlap")
	}

	var union Bitboard
	for pt := Pawn; pt < NoPieceType; pt++ {
		if union.And(p.pieces[pt]).More() {
			return fmt.Errorf("%v bitboard overlaps another piece type", pt)
		}
		union = union.Or(p.pieces[pt])
	}
	if union != p.Occupied() {
		return fmt.Errorf("piece bitboards do not match side occupancy")
	}

	for sq := Square(0); sq < NoSquare; sq++ {
		piece := p.mailbox[sq]
		if piece == NoPiece {
			if union.IsSet(sq) {
				return fmt.Errorf("%v: mailbox empty but bitboards occupied", sq)
			}
			continue
		}
		if !piece.IsValid() {
			return fmt.Errorf("%v: invalid piece code %#x", sq, uint8(piece))
		}
		if !p.sides[piece.Color()].IsSet(sq) || !p.pieces[piece.Type()].IsSet(sq) {
			return fmt.Errorf("%v: mailbox has %v but bitboards disagree", sq, piece)
		}
	}

	for c := Sente; c <= Gote; c++ {
		if p.SidedPieces(King, c).PopCount() > 1 {
			return fmt.Errorf("%v has more than one king", c)
		}
	}

	return nil
}
