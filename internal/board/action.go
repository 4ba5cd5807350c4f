package board

import (
	"errors"
	"fmt"
	"strings"
)

// Action encodes one ply in 16 bits:
// bits 0-6:   destination square (0-80)
// bits 7-13:  origin square, or the dropped Piece for a drop
// bit  14:    drop flag
// bit  15:    promotion flag
type Action uint16

const (
	actionDrop    Action = 1 << 14
	actionPromote Action = 1 << 15
	actionSqMask  Action = 0x7F
)

// NoAction represents an invalid or null action.
const NoAction Action = 0

// ErrInvalidAction is returned when action notation cannot be resolved.
var ErrInvalidAction = errors.New("invalid action")

// NewMove creates a board move.
func NewMove(from, to Square, promote bool) Action {
	a := Action(from)<<7 | Action(to)
	if promote {
		a |= actionPromote
	}
	return a
}

// NewDrop creates a drop of piece p onto to.
func NewDrop(p Piece, to Square) Action {
	return actionDrop | Action(p)<<7 | Action(to)
}

// To returns the destination square.
func (a Action) To() Square {
	return Square(a & actionSqMask)
}

// From returns the origin square. Panics on a drop.
func (a Action) From() Square {
	if a.IsDrop() {
		panic("board: From of a drop action")
	}
	return Square((a >> 7) & actionSqMask)
}

// DropPiece returns the piece being dropped. Panics on a board move.
func (a Action) DropPiece() Piece {
	if !a.IsDrop() {
		panic("board: DropPiece of a board move")
	}
	return Piece((a >> 7) & actionSqMask)
}

// IsDrop returns true if the action places a piece from hand.
func (a Action) IsDrop() bool {
	return a&actionDrop != 0
}

// IsPromotion returns true if the moving piece promotes.
func (a Action) IsPromotion() bool {
	return a&actionPromote != 0
}

// String returns USI notation: "7g7f", "8h2b+", "P*5e".
func (a Action) String() string {
	if a == NoAction {
		return "none"
	}
	if a.IsDrop() {
		c := a.DropPiece().Type().Char() - ('a' - 'A')
		return string(c) + "*" + a.To().String()
	}
	s := a.From().String() + a.To().String()
	if a.IsPromotion() {
		s += "+"
	}
	return s
}

// ParseAction resolves USI notation against the board's current action list.
// Only actions the generator would produce are accepted.
func ParseAction(s string, b *Board) (Action, error) {
	var want Action

	switch {
	case len(s) == 4 && s[1] == '*':
		pt, ok := PieceTypeFromChar(s[0])
		if !ok || pt > Gold {
			return NoAction, fmt.Errorf("%w: bad drop piece in %q", ErrInvalidAction, s)
		}
		to, err := ParseSquare(s[2:4])
		if err != nil {
			return NoAction, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		want = NewDrop(NewPiece(pt, b.SideToMove()), to)

	case len(s) == 4 || (len(s) == 5 && s[4] == '+'):
		from, err := ParseSquare(s[0:2])
		if err != nil {
			return NoAction, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		to, err := ParseSquare(s[2:4])
		if err != nil {
			return NoAction, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		want = NewMove(from, to, strings.HasSuffix(s, "+"))

	default:
		return NoAction, fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}

	var al ActionList
	b.GenerateActions(&al)
	if !al.Contains(want) {
		return NoAction, fmt.Errorf("%w: %s is not available", ErrInvalidAction, s)
	}
	return want, nil
}

// MaxActions bounds the pseudo-legal action count of any shogi position.
const MaxActions = 1024

// ActionList is a fixed-size list of actions to avoid allocations.
type ActionList struct {
	actions [MaxActions]Action
	count   int
}

// NewActionList creates an empty action list.
func NewActionList() *ActionList {
	return &ActionList{}
}

// Add adds an action to the list.
func (al *ActionList) Add(a Action) {
	al.actions[al.count] = a
	al.count++
}

// Len returns the number of actions in the list.
func (al *ActionList) Len() int {
	return al.count
}

// Get returns the action at index i.
func (al *ActionList) Get(i int) Action {
	return al.actions[i]
}

// Clear clears the list.
func (al *ActionList) Clear() {
	al.count = 0
}

// Contains returns true if the list contains the action.
func (al *ActionList) Contains(a Action) bool {
	for i := 0; i < al.count; i++ {
		if al.actions[i] == a {
			return true
		}
	}
	return false
}

// Slice returns the actions as a slice.
func (al *ActionList) Slice() []Action {
	return al.actions[:al.count]
}
