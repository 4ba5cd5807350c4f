package board

import (
	"strings"
	"testing"
)

// walk applies every legal action to depth, checking that undo restores the
// exact snapshot and that the incremental key matches a recomputation.
func walk(t *testing.T, b *Board, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	before := *b.Position()
	stm, ply := b.SideToMove(), b.Ply()

	for _, a := range b.LegalActions().Slice() {
		if !b.PerformAction(a) {
			t.Fatalf("%v rejected after being listed as legal", a)
		}
		if err := b.Position().Validate(); err != nil {
			t.Fatalf("after %v: %v", a, err)
		}
		if got, want := b.Position().Key(), b.Position().ComputeKey(b.SideToMove()); got != want {
			t.Fatalf("after %v: key %016x, recomputed %016x", a, got, want)
		}
		walk(t, b, depth-1)
		b.UndoAction()

		if *b.Position() != before || b.SideToMove() != stm || b.Ply() != ply {
			t.Fatalf("undo of %v did not restore the position", a)
		}
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	positions := []string{
		StartSFEN,
		"ln1g1g1nl/1r1s1k3/p1pp+Bpspp/4p4/1p7/2P6/PP1PPPPPP/7R1/LNSGKGSNL w Bp 24",
		"8k/6G2/9/7N1/9/9/9/9/K8 b RB2G3Pn2p 1",
	}
	for _, sfen := range positions {
		t.Run(sfen, func(t *testing.T) {
			t.Parallel()
			walk(t, loadBoard(t, sfen), 2)
		})
	}
}

func TestCaptureGoesToHandUnpromoted(t *testing.T) {
	b := loadBoard(t, "4k4/9/9/4+p4/9/9/4R4/9/4K4 b - 1")
	a, err := ParseAction("5g5d", b)
	if err != nil {
		t.Fatal(err)
	}
	if !b.PerformAction(a) {
		t.Fatal("capture rejected")
	}
	pos := b.Position()
	if pos.Hand(Sente).Count(Pawn) != 1 {
		t.Errorf("sente hand = %v, want one pawn", pos.Hand(Sente))
	}
	if pos.PieceAt(sq("5d")) != NewPiece(Rook, Sente) {
		t.Errorf("5d holds %v", pos.PieceAt(sq("5d")))
	}
	if got, want := b.SFEN(), "4k4/9/9/4R4/9/9/9/9/4K4 w P 2"; got != want {
		t.Errorf("SFEN() = %q, want %q", got, want)
	}

	b.UndoAction()
	if got := b.SFEN(); got != "4k4/9/9/4+p4/9/9/4R4/9/4K4 b - 1" {
		t.Errorf("after undo SFEN() = %q", got)
	}
}

func TestDropTakesFromHand(t *testing.T) {
	b := loadBoard(t, "4k4/9/9/9/9/9/9/9/4K4 b 2S 1")
	if !b.PerformAction(NewDrop(NewPiece(Silver, Sente), sq("5e"))) {
		t.Fatal("drop rejected")
	}
	if got := b.Position().Hand(Sente).Count(Silver); got != 1 {
		t.Errorf("silver count = %d, want 1", got)
	}
	if b.Position().PieceAt(sq("5e")) != NewPiece(Silver, Sente) {
		t.Error("dropped silver missing")
	}
}

func TestPerformActionRejectsSelfCheck(t *testing.T) {
	sfen := "4k4/9/9/9/4r4/9/4G4/9/4K4 b - 1"
	b := loadBoard(t, sfen)
	if b.PerformAction(NewMove(sq("5g"), sq("4g"), false)) {
		t.Fatal("pinned gold was allowed to leave the file")
	}
	if b.SFEN() != sfen || b.Depth() != 0 {
		t.Errorf("rejected action changed the board: %s", b.SFEN())
	}
	if !b.PerformAction(NewMove(sq("5g"), sq("5f"), false)) {
		t.Error("gold advance along the pin rejected")
	}
}

func TestPawnDropMate(t *testing.T) {
	tests := []struct {
		name  string
		sfen  string
		drop  string
		legal bool
	}{
		// Gold on 3b covers 2a and 2b, the knight on 2d defends 1b.
		{"pawn drop mate", "8k/6G2/9/7N1/9/9/9/9/K8 b P 1", "P*1b", false},
		// Without the knight the king takes the pawn.
		{"pawn drop check", "8k/6G2/9/9/9/9/9/9/K8 b P 1", "P*1b", true},
		// Mating with a dropped gold is fine.
		{"gold drop mate", "8k/6G2/9/7N1/9/9/9/9/K8 b G 1", "G*1b", true},
		// Gote dropping a pawn mate on sente is equally illegal.
		{"gote pawn drop mate", "8k/9/9/9/9/1n7/9/2g6/K8 w p 1", "P*9h", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := loadBoard(t, tc.sfen)
			a, err := ParseAction(tc.drop, b)
			if err != nil {
				t.Fatalf("ParseAction(%q): %v", tc.drop, err)
			}
			if got := b.PerformAction(a); got != tc.legal {
				t.Fatalf("PerformAction(%s) = %v, want %v", tc.drop, got, tc.legal)
			}
			if !tc.legal {
				if b.SFEN() != tc.sfen {
					t.Errorf("rejected drop changed the board: %s", b.SFEN())
				}
				if actionStrings(b.LegalActions())[tc.drop] {
					t.Errorf("LegalActions lists %s", tc.drop)
				}
			}
		})
	}
}

func TestPawnPushMateIsLegal(t *testing.T) {
	// Same net as the drop mate, but the pawn arrives by moving.
	b := loadBoard(t, "8k/6G2/8P/7N1/9/9/9/9/K8 b - 1")
	if !b.PerformAction(NewMove(sq("1c"), sq("1b"), false)) {
		t.Fatal("pawn push mate rejected")
	}
	if !b.IsCheckmate() {
		t.Error("expected checkmate after the pawn push")
	}
}

func TestUndoPastSeedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("UndoAction at the seed position did not panic")
		}
	}()
	NewStartBoard().UndoAction()
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewStartBoard()
	c := b.Clone()
	a, err := ParseAction("7g7f", c)
	if err != nil {
		t.Fatal(err)
	}
	c.PerformAction(a)

	if b.SFEN() != StartSFEN || b.Depth() != 0 {
		t.Error("action on the clone changed the original")
	}
	if c.Depth() != 1 || c.SideToMove() != Gote {
		t.Error("clone did not apply the action")
	}
}

func TestGetAttackersAndCheck(t *testing.T) {
	b := loadBoard(t, "4k4/9/9/9/4r4/9/9/9/4K4 b - 1")
	if !b.InCheck() {
		t.Fatal("rook check not detected")
	}
	if got := b.Position().Checkers(); got != SquareBB(sq("5e")) {
		t.Errorf("checkers = %v", got)
	}
	if got := b.GetAttackers(sq("5h")); got != SquareBB(sq("5e")) {
		t.Errorf("attackers of 5h = %v", got)
	}

	// With a blocker on 5g the king square is no longer attacked.
	occ := b.Position().Occupied().Set(sq("5g"))
	if b.SquareAttacked(sq("5i"), occ) {
		t.Error("SquareAttacked ignored the supplied occupancy")
	}
	if !b.InCheck() {
		t.Error("SquareAttacked changed the cached checkers")
	}
}

func TestPrintState(t *testing.T) {
	b := loadBoard(t, "4k4/9/9/9/9/9/9/9/4K4 w RPbp 7")
	out := b.String()
	for _, want := range []string{
		"stm: gote",
		"sente hand: RP",
		"gote hand: bp",
		"ply count: 7",
		"┌───┬",
		"└───┴",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintState output lacks %q:\n%s", want, out)
		}
	}
}
