package board

var (
	// promotionZone[c] is the last three ranks from c's point of view.
	promotionZone = [2]Bitboard{lastRanks(Sente, 3), lastRanks(Gote, 3)}

	// deadRanks[c][n] is the last n ranks from c's point of view (n = 1, 2):
	// a pawn or lance there has no move, a knight has none within two ranks.
	deadRanks = [2][3]Bitboard{
		{Empty, lastRanks(Sente, 1), lastRanks(Sente, 2)},
		{Empty, lastRanks(Gote, 1), lastRanks(Gote, 2)},
	}
)

func lastRanks(c Color, n int) Bitboard {
	var bb Bitboard
	for r := 0; r < n; r++ {
		if c == Sente {
			bb = bb.Or(RankMask[NumRanks-1-r])
		} else {
			bb = bb.Or(RankMask[r])
		}
	}
	return bb
}

// PromotionZone returns the promotion zone of a side.
func PromotionZone(c Color) Bitboard {
	return promotionZone[c]
}

// mustPromote reports whether a piece landing on to would have no further move.
func mustPromote(pt PieceType, c Color, to Square) bool {
	switch pt {
	case Pawn, Lance:
		return deadRanks[c][1].IsSet(to)
	case Knight:
		return deadRanks[c][2].IsSet(to)
	}
	return false
}

// GetActions returns every pseudo-legal action for the side to move.
// Actions may leave the mover's king attacked; PerformAction filters those.
func (b *Board) GetActions() *ActionList {
	al := NewActionList()
	b.GenerateActions(al)
	return al
}

// GenerateActions fills al with the pseudo-legal actions of the side to move:
// pawn pushes first, then the other pieces by square, then drops.
func (b *Board) GenerateActions(al *ActionList) {
	al.Clear()
	pos := b.top()
	us := b.stm
	occupied := pos.Occupied()
	targets := pos.sides[us].Not()

	b.generatePawnMoves(al, pos, us, targets)

	for from := range pos.sides[us].AndNot(pos.pieces[Pawn]).Squares() {
		piece := pos.mailbox[from]
		dests := Attacks(piece, from, occupied).And(targets)
		addMoves(al, piece.Type(), us, from, dests)
	}

	b.generateDrops(al, pos, us, occupied)
}

// addMoves emits a promoting action where allowed and a plain one unless promotion is forced.
func addMoves(al *ActionList, pt PieceType, us Color, from Square, dests Bitboard) {
	canPromote := pt.CanPromote()
	fromZone := promotionZone[us].IsSet(from)
	for to := range dests.Squares() {
		if canPromote && (fromZone || promotionZone[us].IsSet(to)) {
			al.Add(NewMove(from, to, true))
		}
		if !mustPromote(pt, us, to) {
			al.Add(NewMove(from, to, false))
		}
	}
}

// generatePawnMoves pushes every pawn at once and recovers origins by the rank offset.
func (b *Board) generatePawnMoves(al *ActionList, pos *Position, us Color, targets Bitboard) {
	pawns := pos.SidedPieces(Pawn, us)
	dests := pawns.Forward(us).And(targets)

	for to := range dests.Squares() {
		from := to - NumFiles
		if us == Gote {
			from = to + NumFiles
		}
		if promotionZone[us].IsSet(to) {
			al.Add(NewMove(from, to, true))
		}
		if !deadRanks[us][1].IsSet(to) {
			al.Add(NewMove(from, to, false))
		}
	}
}

func (b *Board) generateDrops(al *ActionList, pos *Position, us Color, occupied Bitboard) {
	hand := pos.hands[us]
	if hand.IsEmpty() {
		return
	}
	empty := occupied.Not()

	for pt := Pawn; pt <= Gold; pt++ {
		if hand.Count(pt) == 0 {
			continue
		}

		dests := empty
		switch pt {
		case Pawn:
			dests = dests.AndNot(deadRanks[us][1]).AndNot(fileFill(pos.SidedPieces(Pawn, us)))
		case Lance:
			dests = dests.AndNot(deadRanks[us][1])
		case Knight:
			dests = dests.AndNot(deadRanks[us][2])
		}

		piece := NewPiece(pt, us)
		for to := range dests.Squares() {
			al.Add(NewDrop(piece, to))
		}
	}
}

// fileFill spreads every set square over its whole file.
func fileFill(b Bitboard) Bitboard {
	b = b.Or(b.Shr(NumFiles))
	b = b.Or(b.Shr(2 * NumFiles))
	b = b.Or(b.Shr(4 * NumFiles))
	b = b.Or(b.Shr(8 * NumFiles))
	b = b.Or(b.Shl(NumFiles))
	b = b.Or(b.Shl(2 * NumFiles))
	b = b.Or(b.Shl(4 * NumFiles))
	return b.Or(b.Shl(8 * NumFiles))
}
