package board

import (
	"errors"
	"testing"
)

func TestActionEncoding(t *testing.T) {
	for from := Square(0); from < NoSquare; from++ {
		for to := Square(0); to < NoSquare; to++ {
			for _, promote := range []bool{false, true} {
				a := NewMove(from, to, promote)
				if a.IsDrop() || a.From() != from || a.To() != to || a.IsPromotion() != promote {
					t.Fatalf("NewMove(%v, %v, %v) decodes wrong", from, to, promote)
				}
			}
		}
	}

	for c := Sente; c <= Gote; c++ {
		for pt := Pawn; pt <= Gold; pt++ {
			p := NewPiece(pt, c)
			a := NewDrop(p, sq("5e"))
			if !a.IsDrop() || a.IsPromotion() || a.DropPiece() != p || a.To() != sq("5e") {
				t.Fatalf("NewDrop(%v) decodes wrong", p)
			}
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{NewMove(sq("7g"), sq("7f"), false), "7g7f"},
		{NewMove(sq("8h"), sq("2b"), true), "8h2b+"},
		{NewDrop(NewPiece(Pawn, Sente), sq("5e")), "P*5e"},
		{NewDrop(NewPiece(Silver, Gote), sq("4d")), "S*4d"},
		{NoAction, "none"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	b := NewStartBoard()

	a, err := ParseAction("7g7f", b)
	if err != nil {
		t.Fatalf("ParseAction(7g7f): %v", err)
	}
	if a != NewMove(sq("7g"), sq("7f"), false) {
		t.Errorf("ParseAction(7g7f) = %v", a)
	}

	for _, bad := range []string{"", "7g7", "7g7e", "P*5e", "K*5e", "x*5e", "7g7f+", "0g7f", "7g7f++"} {
		if _, err := ParseAction(bad, b); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("ParseAction(%q) error = %v, want ErrInvalidAction", bad, err)
		}
	}

	if err := b.Load("4k4/9/9/9/9/9/9/9/4K4 w G 1"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseAction("G*5e", b); !errors.Is(err, ErrInvalidAction) {
		t.Error("gote accepted a drop it does not hold")
	}
	if err := b.Load("4k4/9/9/9/9/9/9/9/4K4 w g 1"); err != nil {
		t.Fatal(err)
	}
	a, err = ParseAction("G*5e", b)
	if err != nil {
		t.Fatalf("ParseAction(G*5e): %v", err)
	}
	if a.DropPiece() != NewPiece(Gold, Gote) {
		t.Errorf("drop piece = %v, want gote gold", a.DropPiece())
	}
}

func TestActionList(t *testing.T) {
	al := NewActionList()
	al.Add(NewMove(1, 2, false))
	al.Add(NewMove(3, 4, true))

	if al.Len() != 2 || al.Get(1) != NewMove(3, 4, true) {
		t.Fatalf("list = %v", al.Slice())
	}
	if !al.Contains(NewMove(1, 2, false)) || al.Contains(NewMove(1, 2, true)) {
		t.Error("Contains mismatch")
	}
	al.Clear()
	if al.Len() != 0 {
		t.Error("Clear left entries")
	}
}
