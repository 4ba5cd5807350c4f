package board

import (
	"testing"
)

func TestCheckmate(t *testing.T) {
	// Gold on 1b protected by the pawn on 1c. The gote king on 1a has no escape.
	b := NewBoard()
	if err := b.Load("8k/8G/8P/9/9/9/9/9/K8 w - 1"); err != nil {
		t.Fatal("Error parsing SFEN:", err)
	}

	t.Log("Checkmate position:")
	t.Log(b)

	t.Log("Checkers bitboard:", b.Position().Checkers())
	t.Log("InCheck:", b.InCheck())

	legal := b.LegalActions()
	t.Log("Gote legal actions:", legal.Len())
	for _, a := range legal.Slice() {
		t.Log("  Action:", a)
	}

	if !b.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
}

func TestNotCheckmate(t *testing.T) {
	// The king can capture the unprotected gold.
	b := NewBoard()
	if err := b.Load("8k/8G/9/9/9/9/9/9/K8 w - 1"); err != nil {
		t.Fatal("Error parsing SFEN:", err)
	}

	if !b.InCheck() {
		t.Fatal("Expected check")
	}
	if b.IsCheckmate() {
		t.Error("Expected NOT checkmate but got true")
	}
	if !actionStrings(b.LegalActions())["1a1b"] {
		t.Error("King capture 1a1b missing")
	}
}

func TestCheckBlockedByDrop(t *testing.T) {
	// Rook check along the file can be interposed from hand.
	b := NewBoard()
	if err := b.Load("4k4/9/9/9/4r4/9/9/9/4K4 b G 1"); err != nil {
		t.Fatal("Error parsing SFEN:", err)
	}
	legal := actionStrings(b.LegalActions())
	for _, want := range []string{"G*5f", "G*5g", "G*5h"} {
		if !legal[want] {
			t.Errorf("Interposing drop %s missing", want)
		}
	}
	if legal["G*4e"] {
		t.Error("Drop that ignores the check listed as legal")
	}
	if b.IsCheckmate() {
		t.Error("Expected NOT checkmate but got true")
	}
}
