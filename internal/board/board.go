package board

import (
	"fmt"
	"strings"
)

// DebugValidation enables a full Position consistency check after every
// applied action. A failure panics with the offending SFEN.
var DebugValidation = false

const historyCapacity = 256

// Board is a stack of Position snapshots plus side to move and ply.
// The last snapshot is the current state; the first is the loaded position.
// A Board is not safe for concurrent use; give each goroutine its own Clone.
type Board struct {
	states []Position
	stm    Color
	ply    int
}

// NewBoard returns a board seeded with an empty position, sente to move.
func NewBoard() *Board {
	b := &Board{states: make([]Position, 1, historyCapacity)}
	b.states[0] = emptyPosition()
	return b
}

// NewStartBoard returns a board holding the standard starting position.
func NewStartBoard() *Board {
	b := NewBoard()
	if err := b.Load(StartSFEN); err != nil {
		panic(err)
	}
	return b
}

// Load replaces the whole history with a position parsed from SFEN.
// The board is left untouched when parsing fails.
func (b *Board) Load(sfen string) error {
	pos, stm, ply, err := ParseSFEN(sfen)
	if err != nil {
		return err
	}
	b.states = append(b.states[:0], pos)
	b.stm = stm
	b.ply = ply
	b.UpdateCheckers()
	return nil
}

// Clone returns an independent copy of the board, history included.
func (b *Board) Clone() *Board {
	states := make([]Position, len(b.states), max(cap(b.states), historyCapacity))
	copy(states, b.states)
	return &Board{states: states, stm: b.stm, ply: b.ply}
}

func (b *Board) top() *Position {
	return &b.states[len(b.states)-1]
}

// Position returns the current snapshot. Callers must not modify it.
func (b *Board) Position() *Position {
	return b.top()
}

// SideToMove returns the side to move.
func (b *Board) SideToMove() Color {
	return b.stm
}

// Ply returns the move counter.
func (b *Board) Ply() int {
	return b.ply
}

// Depth returns how many actions are currently applied on top of the loaded position.
func (b *Board) Depth() int {
	return len(b.states) - 1
}

// ApplyAction pushes a copy of the current position and plays the action on
// it without any legality check. Captured pieces go to the mover's hand unpromoted.
func (b *Board) ApplyAction(a Action) {
	b.states = append(b.states, b.states[len(b.states)-1])
	pos := b.top()
	us := b.stm
	to := a.To()

	if a.IsDrop() {
		piece := a.DropPiece()
		pos.takeFromHand(us, piece.Type())
		pos.AddPiece(to, piece)
	} else {
		from := a.From()
		mover := pos.mailbox[from]
		victim := pos.mailbox[to]
		if victim != NoPiece {
			pos.addToHand(us, victim.Type().Unpromote())
		}
		placed := mover
		if a.IsPromotion() {
			placed = NewPiece(mover.Type().Promote(), us)
		}
		pos.MovePiece(from, to, victim, placed)
	}

	pos.key ^= zobristSideToMove
	b.stm = us.Other()
	b.ply++
	b.UpdateCheckers()

	if DebugValidation {
		if err := pos.Validate(); err != nil {
			panic(fmt.Sprintf("board: after %v: %v (%s)", a, err, b.SFEN()))
		}
	}
}

// PerformAction plays the action if it is legal and reports whether it was.
// An action is illegal when it leaves the mover's king attacked, or when it
// is a pawn drop that checkmates (uchifuzume). Illegal actions leave the board unchanged.
func (b *Board) PerformAction(a Action) bool {
	us := b.stm
	b.ApplyAction(a)

	if b.kingAttacked(us) || b.isPawnDropMate(a) {
		b.UndoAction()
		return false
	}
	return true
}

// UndoAction pops the last applied action. Panics at the loaded position.
func (b *Board) UndoAction() {
	if len(b.states) <= 1 {
		panic("board: undo past the seed position")
	}
	b.states = b.states[:len(b.states)-1]
	b.ply--
	b.stm = b.stm.Other()
}

func (b *Board) kingAttacked(c Color) bool {
	pos := b.top()
	ksq := pos.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return pos.IsSquareAttacked(ksq, c.Other(), pos.Occupied())
}

// isPawnDropMate runs after the drop has been applied, with the opponent to move.
func (b *Board) isPawnDropMate(a Action) bool {
	if !a.IsDrop() || a.DropPiece().Type() != Pawn {
		return false
	}
	if !b.top().checkers.IsSet(a.To()) {
		return false
	}
	return !b.HasLegalActions()
}

// GetAttackers returns the opponent pieces attacking sq.
func (b *Board) GetAttackers(sq Square) Bitboard {
	pos := b.top()
	return pos.AttackersByColor(sq, b.stm.Other(), pos.Occupied())
}

// SquareAttacked reports whether the opponent would attack sq under the
// given occupancy. Cached state is neither read nor written.
func (b *Board) SquareAttacked(sq Square, occupied Bitboard) bool {
	return b.top().IsSquareAttacked(sq, b.stm.Other(), occupied)
}

// UpdateCheckers recomputes the checkers of the side to move.
func (b *Board) UpdateCheckers() {
	pos := b.top()
	ksq := pos.KingSquare(b.stm)
	if ksq == NoSquare {
		pos.checkers = Empty
		return
	}
	pos.checkers = b.GetAttackers(ksq)
}

// InCheck returns true if the side to move is in check.
func (b *Board) InCheck() bool {
	return b.top().checkers.More()
}

// LegalActions returns the generated actions that PerformAction accepts.
func (b *Board) LegalActions() *ActionList {
	var pseudo ActionList
	b.GenerateActions(&pseudo)

	legal := NewActionList()
	for _, a := range pseudo.Slice() {
		if b.PerformAction(a) {
			b.UndoAction()
			legal.Add(a)
		}
	}
	return legal
}

// HasLegalActions returns true if the side to move has any legal action.
func (b *Board) HasLegalActions() bool {
	var pseudo ActionList
	b.GenerateActions(&pseudo)
	for _, a := range pseudo.Slice() {
		if b.PerformAction(a) {
			b.UndoAction()
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is in check with no legal action.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalActions()
}

// String returns the rendered board.
func (b *Board) String() string {
	var sb strings.Builder
	b.PrintState(&sb)
	return sb.String()
}
