package board

import (
	"strings"
	"testing"
)

func actionStrings(al *ActionList) map[string]bool {
	out := make(map[string]bool, al.Len())
	for _, a := range al.Slice() {
		out[a.String()] = true
	}
	return out
}

func loadBoard(t *testing.T, sfen string) *Board {
	t.Helper()
	b := NewBoard()
	if err := b.Load(sfen); err != nil {
		t.Fatalf("Load(%q): %v", sfen, err)
	}
	return b
}

func TestStartPositionActions(t *testing.T) {
	b := NewStartBoard()
	legal := b.LegalActions()
	if legal.Len() != 30 {
		t.Fatalf("start position has %d legal actions, want 30", legal.Len())
	}
	for _, a := range legal.Slice() {
		if a.IsDrop() || a.IsPromotion() {
			t.Errorf("unexpected action %v in start position", a)
		}
	}
	if b.GetActions().Len() != 30 {
		t.Errorf("start position has %d pseudo-legal actions, want 30", b.GetActions().Len())
	}
}

func TestPromotionRules(t *testing.T) {
	tests := []struct {
		name    string
		sfen    string
		present []string
		absent  []string
	}{
		{
			name:    "pawn must promote on last rank",
			sfen:    "k8/4P4/9/9/9/9/9/9/4K4 b - 1",
			present: []string{"5b5a+"},
			absent:  []string{"5b5a"},
		},
		{
			name:    "pawn may promote entering zone",
			sfen:    "k8/9/9/4P4/9/9/9/9/4K4 b - 1",
			present: []string{"5d5c+", "5d5c"},
		},
		{
			name:    "knight must promote within two ranks",
			sfen:    "k8/9/9/4N4/9/9/9/9/4K4 b - 1",
			present: []string{"5d4b+", "5d6b+"},
			absent:  []string{"5d4b", "5d6b"},
		},
		{
			name:    "lance must promote on last rank only",
			sfen:    "k8/9/9/9/9/9/9/9/4K3L b - 1",
			present: []string{"1i1a+", "1i1b+", "1i1b", "1i1c", "1i1c+"},
			absent:  []string{"1i1a"},
		},
		{
			name:    "silver leaving zone may promote",
			sfen:    "k8/9/4S4/9/9/9/9/9/4K4 b - 1",
			present: []string{"5c4d+", "5c4d", "5c6d+", "5c6d"},
		},
		{
			name:    "gold never promotes",
			sfen:    "k8/9/9/4G4/9/9/9/9/4K4 b - 1",
			present: []string{"5d5c"},
			absent:  []string{"5d5c+"},
		},
		{
			name:    "gote pawn must promote on its last rank",
			sfen:    "4k4/9/9/9/9/9/9/4p4/K8 w - 1",
			present: []string{"5h5i+"},
			absent:  []string{"5h5i"},
		},
		{
			name:    "gote knight must promote",
			sfen:    "4k4/9/9/9/9/4n4/9/9/K8 w - 1",
			present: []string{"5f4h+", "5f6h+"},
			absent:  []string{"5f4h", "5f6h"},
		},
		{
			name:    "promoted piece moves like gold",
			sfen:    "k8/9/9/4+P4/9/9/9/9/4K4 b - 1",
			present: []string{"5d5c", "5d4c", "5d6c", "5d4d", "5d6d", "5d5e"},
			absent:  []string{"5d5c+", "5d4e", "5d6e"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := loadBoard(t, tc.sfen)
			got := actionStrings(b.GetActions())
			for _, s := range tc.present {
				if !got[s] {
					t.Errorf("missing %s", s)
				}
			}
			for _, s := range tc.absent {
				if got[s] {
					t.Errorf("unexpected %s", s)
				}
			}
		})
	}
}

func TestDropRestrictions(t *testing.T) {
	tests := []struct {
		name      string
		sfen      string
		piece     string
		forbidden func(to Square) bool
		count     int
	}{
		{
			// Pawn on 3g: no pawn drops on file 3 and none on rank a.
			name:  "pawn",
			sfen:  "4k4/9/9/9/9/9/6P2/9/4K4 b P 1",
			piece: "P",
			forbidden: func(to Square) bool {
				return to.File() == 6 || to.Rank() == NumRanks-1
			},
			count: 78 - 15,
		},
		{
			name:  "lance",
			sfen:  "4k4/9/9/9/9/9/9/9/4K4 b L 1",
			piece: "L",
			forbidden: func(to Square) bool {
				return to.Rank() == NumRanks-1
			},
			count: 81 - 2 - 8,
		},
		{
			name:  "knight",
			sfen:  "4k4/9/9/9/9/9/9/9/4K4 b N 1",
			piece: "N",
			forbidden: func(to Square) bool {
				return to.Rank() >= NumRanks-2
			},
			count: 81 - 2 - 17,
		},
		{
			name:  "gote knight",
			sfen:  "4k4/9/9/9/9/9/9/9/4K4 w n 1",
			piece: "N",
			forbidden: func(to Square) bool {
				return to.Rank() <= 1
			},
			count: 81 - 2 - 17,
		},
		{
			name:      "gold",
			sfen:      "4k4/9/9/9/9/9/9/9/4K4 b G 1",
			piece:     "G",
			forbidden: func(Square) bool { return false },
			count:     81 - 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := loadBoard(t, tc.sfen)
			n := 0
			for _, a := range b.GetActions().Slice() {
				if !a.IsDrop() {
					continue
				}
				if !strings.HasPrefix(a.String(), tc.piece+"*") {
					t.Fatalf("unexpected drop %v", a)
				}
				if tc.forbidden(a.To()) {
					t.Errorf("illegal drop %v", a)
				}
				if !b.Position().IsEmpty(a.To()) {
					t.Errorf("drop %v onto an occupied square", a)
				}
				n++
			}
			if n != tc.count {
				t.Errorf("%d drops, want %d", n, tc.count)
			}
		})
	}
}

func TestPromotedPawnDoesNotBlockPawnDrop(t *testing.T) {
	b := loadBoard(t, "4k4/9/9/9/9/9/6+P2/9/4K4 b P 1")
	got := actionStrings(b.GetActions())
	if !got["P*3e"] {
		t.Error("a tokin on file 3 blocked P*3e")
	}
}

func TestNoCaptureOfOwnPieces(t *testing.T) {
	b := NewStartBoard()
	pos := b.Position()
	for _, a := range b.GetActions().Slice() {
		if p := pos.PieceAt(a.To()); p != NoPiece && p.Color() == Sente {
			t.Errorf("%v lands on own %v", a, p)
		}
	}
}

func TestPinnedPieceFiltered(t *testing.T) {
	// The gold on 5g is pinned by the rook on 5e.
	b := loadBoard(t, "4k4/9/9/9/4r4/9/4G4/9/4K4 b - 1")
	legal := actionStrings(b.LegalActions())
	if legal["5g4g"] || legal["5g6g"] || legal["5g4f"] {
		t.Error("pinned gold left the file")
	}
	if !legal["5g5f"] {
		t.Error("pinned gold cannot advance along the pin")
	}
}
