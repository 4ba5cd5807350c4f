package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartSFEN is the SFEN string for the standard starting position.
const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// ErrInvalidSFEN is returned for a malformed position string.
var ErrInvalidSFEN = errors.New("invalid sfen")

// ParseSFEN parses an SFEN string into a fresh Position, the side to move
// and the ply number (1 when the field is absent).
func ParseSFEN(sfen string) (Position, Color, int, error) {
	parts := strings.Fields(sfen)
	if len(parts) < 3 || len(parts) > 4 {
		return Position{}, NoColor, 0, fmt.Errorf("%w: need 3 or 4 fields, got %d", ErrInvalidSFEN, len(parts))
	}

	pos := emptyPosition()

	// Parse piece placement (field 0)
	if err := parsePlacement(&pos, parts[0]); err != nil {
		return Position{}, NoColor, 0, err
	}

	// Parse side to move (field 1)
	var stm Color
	switch parts[1] {
	case "b":
		stm = Sente
	case "w":
		stm = Gote
	default:
		return Position{}, NoColor, 0, fmt.Errorf("%w: invalid side to move %q", ErrInvalidSFEN, parts[1])
	}

	// Parse hands (field 2)
	if err := parseHands(&pos, parts[2]); err != nil {
		return Position{}, NoColor, 0, err
	}

	if err := checkMaterial(&pos); err != nil {
		return Position{}, NoColor, 0, err
	}

	// Parse ply (field 3, optional)
	ply := 1
	if len(parts) == 4 {
		n, err := strconv.Atoi(parts[3])
		if err != nil || n < 0 {
			return Position{}, NoColor, 0, fmt.Errorf("%w: invalid ply %q", ErrInvalidSFEN, parts[3])
		}
		ply = n
	}

	if err := pos.Validate(); err != nil {
		return Position{}, NoColor, 0, fmt.Errorf("%w: %v", ErrInvalidSFEN, err)
	}
	pos.key = pos.ComputeKey(stm)

	return pos, stm, ply, nil
}

// parsePlacement parses the board field, top rank first.
func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != NumRanks {
		return fmt.Errorf("%w: need %d ranks, got %d", ErrInvalidSFEN, NumRanks, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := NumRanks - 1 - i
		file := 0
		promoted := false

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c == '+':
				if promoted {
					return fmt.Errorf("%w: double '+' in rank %q", ErrInvalidSFEN, rankStr)
				}
				promoted = true
				continue

			case c >= '1' && c <= '9':
				if promoted {
					return fmt.Errorf("%w: '+' before digit in rank %q", ErrInvalidSFEN, rankStr)
				}
				file += int(c - '0')

			default:
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return fmt.Errorf("%w: invalid piece character %q", ErrInvalidSFEN, c)
				}
				if promoted {
					if !piece.Type().CanPromote() {
						return fmt.Errorf("%w: %c cannot be promoted", ErrInvalidSFEN, c)
					}
					piece = NewPiece(piece.Type().Promote(), piece.Color())
					promoted = false
				}
				if file >= NumFiles {
					return fmt.Errorf("%w: too many squares in rank %q", ErrInvalidSFEN, rankStr)
				}
				pos.AddPiece(NewSquare(file, rank), piece)
				file++
			}
		}

		if promoted || file != NumFiles {
			return fmt.Errorf("%w: rank %q does not cover %d squares", ErrInvalidSFEN, rankStr, NumFiles)
		}
	}

	return nil
}

// parseHands parses the hand field, e.g. "-", "2P", "RBg3p".
func parseHands(pos *Position, field string) error {
	if field == "-" {
		return nil
	}

	count := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			if count > 18 {
				return fmt.Errorf("%w: hand count too large in %q", ErrInvalidSFEN, field)
			}
			continue
		}

		piece := PieceFromChar(c)
		if piece == NoPiece || piece.Type() > Gold {
			return fmt.Errorf("%w: invalid hand piece %q", ErrInvalidSFEN, c)
		}
		if count == 0 {
			count = 1
		}
		hand := &pos.hands[piece.Color()]
		n := hand.Count(piece.Type()) + count
		if n > HandMax(piece.Type()) {
			return fmt.Errorf("%w: too many %v in hand", ErrInvalidSFEN, piece.Type())
		}
		hand.Set(piece.Type(), n)
		count = 0
	}

	if count != 0 {
		return fmt.Errorf("%w: dangling count in hand %q", ErrInvalidSFEN, field)
	}
	return nil
}

// checkMaterial rejects positions holding more of a kind, counting board
// (promoted or not) and both hands, than the set contains. Captures would
// otherwise overflow a hand counter.
func checkMaterial(pos *Position) error {
	for pt := Pawn; pt <= Gold; pt++ {
		n := pos.pieces[pt].PopCount() + pos.hands[Sente].Count(pt) + pos.hands[Gote].Count(pt)
		if pt.CanPromote() {
			n += pos.pieces[pt.Promote()].PopCount()
		}
		if n > HandMax(pt) {
			return fmt.Errorf("%w: %d %v in play, the set has %d", ErrInvalidSFEN, n, pt, HandMax(pt))
		}
	}
	return nil
}

// SFEN returns the SFEN representation of the current position.
func (b *Board) SFEN() string {
	pos := b.top()
	var sb strings.Builder

	// Piece placement
	for rank := NumRanks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < NumFiles; file++ {
			piece := pos.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	if b.stm == Sente {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}

	// Hands
	sb.WriteString(handField(pos.hands))

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.ply))
	return sb.String()
}

// handField renders both hands: sente uppercase first, then gote lowercase.
func handField(hands [2]Hand) string {
	switch {
	case hands[Sente].IsEmpty() && hands[Gote].IsEmpty():
		return "-"
	case hands[Gote].IsEmpty():
		return hands[Sente].String()
	case hands[Sente].IsEmpty():
		return strings.ToLower(hands[Gote].String())
	}
	return hands[Sente].String() + strings.ToLower(hands[Gote].String())
}
