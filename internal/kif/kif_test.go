package kif

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const sampleKIF = `# ---- Kifu for Windows V7 棋譜ファイル ----
開始日時：2024/01/02 10:00:00
手合割：平手
先手：先手太郎
後手：後手花子
手数----指手---------消費時間--
   1 ７六歩(77)   ( 0:01/00:00:01)
   2 ３四歩(33)   ( 0:02/00:00:02)
   3 ２二角成(88)   ( 0:03/00:00:04)
*角交換
   4 同　銀(31)   ( 0:01/00:00:03)
   5 ４五角打   ( 0:05/00:00:09)
   6 同 歩(43)   ( 0:01/00:00:04)
   7 投了   ( 0:01/00:00:10)
まで6手で後手の勝ち
`

func TestParse(t *testing.T) {
	rec, err := Parse(strings.NewReader(sampleKIF))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"7g7f", "3c3d", "8h2b+", "3a2b", "B*4e", "4c4e"}
	if len(rec.Actions) != len(want) {
		t.Fatalf("got %d actions %v, want %v", len(rec.Actions), rec.Actions, want)
	}
	for i := range want {
		if rec.Actions[i] != want[i] {
			t.Errorf("action %d = %q, want %q", i+1, rec.Actions[i], want[i])
		}
	}
	if rec.Result != "投了" {
		t.Errorf("Result = %q, want 投了", rec.Result)
	}
	if rec.Header["先手"] != "先手太郎" || rec.Header["手合割"] != "平手" {
		t.Errorf("Header = %v", rec.Header)
	}
}

func TestParseShiftJIS(t *testing.T) {
	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), sampleKIF)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := Parse(strings.NewReader(encoded))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rec.Actions) != 6 || rec.Actions[2] != "8h2b+" {
		t.Errorf("Actions = %v", rec.Actions)
	}
	if rec.Header["後手"] != "後手花子" {
		t.Errorf("Header = %v", rec.Header)
	}
}

func TestParseMove(t *testing.T) {
	prev := &square{5, 5}
	tests := []struct {
		token string
		want  string
	}{
		{"７六歩(77)", "7g7f"},
		{"76歩(77)", "7g7f"},
		{"２二角成(88)", "8h2b+"},
		{"２三銀不成(34)", "3d2c"},
		{"５五金打", "G*5e"},
		{"同　と(54)", "5d5e"},
		{"同成銀(44)", "4d5e"},
		{"１一龍(21)", "2a1a"},
		{"５九玉(58)", "5h5i"},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			got, _, err := parseMove(tc.token, prev)
			if err != nil {
				t.Fatalf("parseMove(%q): %v", tc.token, err)
			}
			if got != tc.want {
				t.Errorf("parseMove(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}

	for _, bad := range []string{"同歩(77)", "７歩(77)", "７六(77)", "７六歩", "５五と打", "７六歩成る(77)"} {
		if _, _, err := parseMove(bad, nil); err == nil {
			t.Errorf("parseMove(%q) succeeded, want error", bad)
		}
	}
}

func TestParseUnsupported(t *testing.T) {
	tests := []string{
		"手合割：香落ち\n   1 ３四歩(33)\n",
		"後手の持駒：なし\n  ９ ８ ７ ６ ５ ４ ３ ２ １\n+---------------------------+\n",
	}
	for _, kif := range tests {
		if _, err := Parse(strings.NewReader(kif)); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Parse error = %v, want ErrUnsupported", err)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("   1 ７X歩(77)\n"))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Parse error = %v, want ErrSyntax", err)
	}
}

func TestParseStopsAtVariation(t *testing.T) {
	kif := "   1 ７六歩(77)\n   2 ３四歩(33)\n\n変化：2手\n   2 ８四歩(83)\n"
	rec, err := Parse(strings.NewReader(kif))
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Actions) != 2 || rec.Actions[1] != "3c3d" {
		t.Errorf("Actions = %v", rec.Actions)
	}
	if rec.Result != "" {
		t.Errorf("Result = %q, want empty", rec.Result)
	}
}

func TestDecodeBOM(t *testing.T) {
	text, err := Decode([]byte("\xEF\xBB\xBF   1 ７六歩(77)\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "   1") {
		t.Errorf("BOM not stripped: %q", text)
	}
}
