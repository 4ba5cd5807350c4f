// Package kif reads KIF game records into USI action strings.
//
// Only games from the standard starting position are supported. Records may
// be UTF-8 (with or without a byte order mark) or Shift-JIS.
package kif

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var (
	// ErrUnsupported is returned for records this reader cannot replay,
	// such as handicap games or custom starting positions.
	ErrUnsupported = errors.New("kif: unsupported record")

	// ErrSyntax is returned for a move line that cannot be parsed.
	ErrSyntax = errors.New("kif: syntax error")
)

// Record is a parsed game record.
type Record struct {
	// Header holds the "key：value" lines before the moves, e.g. 先手, 後手, 開始日時.
	Header map[string]string

	// Actions are the moves of the main line in USI notation.
	Actions []string

	// Result is the terminal token (投了, 詰み, ...) or empty when the record just stops.
	Result string
}

var (
	moveLineRe   = regexp.MustCompile(`^\s*(\d+)\s+(同[ 　]*\S+|\S+)`)
	fromSquareRe = regexp.MustCompile(`\(([1-9])([1-9])\)`)
)

type square struct {
	file int
	rank int
}

func (s square) String() string {
	return fmt.Sprintf("%d%c", s.file, 'a'+s.rank-1)
}

// Decode converts raw KIF bytes to text, detecting Shift-JIS.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("kif: decoding Shift-JIS: %w", err)
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("kif: record is neither UTF-8 nor Shift-JIS")
	}
	return string(decoded), nil
}

// Parse reads a KIF record. Parsing stops at the first terminal move or
// at the first variation.
func Parse(r io.Reader) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}

	rec := &Record{Header: make(map[string]string)}
	var prev *square

	scanner := bufio.NewScanner(strings.NewReader(text))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*"):
			continue
		case strings.HasPrefix(trimmed, "変化"):
			return rec, nil
		case strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "+--"):
			return nil, fmt.Errorf("%w: board diagram on line %d", ErrUnsupported, lineNo)
		case strings.HasPrefix(trimmed, "手数"):
			continue
		}

		if key, value, ok := headerLine(trimmed); ok {
			if key == "手合割" && value != "平手" {
				return nil, fmt.Errorf("%w: handicap %s", ErrUnsupported, value)
			}
			if key == "先手の持駒" || key == "後手の持駒" || key == "下手の持駒" || key == "上手の持駒" {
				return nil, fmt.Errorf("%w: custom starting hands", ErrUnsupported)
			}
			rec.Header[key] = value
			continue
		}

		match := moveLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		token := match[2]
		if isTerminal(token) {
			rec.Result = token
			return rec, nil
		}

		action, dest, err := parseMove(token, prev)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		rec.Actions = append(rec.Actions, action)
		prev = &dest
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// headerLine splits "key：value" (full-width or ASCII colon).
func headerLine(line string) (key, value string, ok bool) {
	for _, sep := range []string{"：", ":"} {
		if k, v, found := strings.Cut(line, sep); found && !moveLineRe.MatchString(line) {
			return strings.TrimSpace(k), strings.TrimSpace(v), true
		}
	}
	return "", "", false
}

func isTerminal(token string) bool {
	switch token {
	case "投了", "中断", "持将棋", "千日手", "詰み", "不詰", "切れ負け", "反則勝ち", "反則負け", "入玉勝ち", "勝ち宣言":
		return true
	}
	return false
}

// parseMove converts one move token such as "７六歩(77)", "同　銀(68)",
// "５五角打" or "２二角成(88)".
func parseMove(token string, prev *square) (string, square, error) {
	var dest square
	work := token

	if rest, ok := strings.CutPrefix(work, "同"); ok {
		if prev == nil {
			return "", dest, fmt.Errorf("%q refers to a previous move that does not exist", token)
		}
		dest = *prev
		work = strings.TrimLeft(rest, " 　")
	} else {
		runes := []rune(work)
		if len(runes) < 2 {
			return "", dest, fmt.Errorf("move %q too short", token)
		}
		file, ok := parseFile(runes[0])
		if !ok {
			return "", dest, fmt.Errorf("bad destination file in %q", token)
		}
		rank, ok := parseRank(runes[1])
		if !ok {
			return "", dest, fmt.Errorf("bad destination rank in %q", token)
		}
		dest = square{file, rank}
		work = string(runes[2:])
	}

	var from square
	hasFrom := false
	if m := fromSquareRe.FindStringSubmatchIndex(work); m != nil {
		from = square{int(work[m[2]] - '0'), int(work[m[4]] - '0')}
		hasFrom = true
		work = work[:m[0]] + work[m[1]:]
	}

	letter, rest, ok := cutPiece(work)
	if !ok {
		return "", dest, fmt.Errorf("unknown piece in %q", token)
	}

	switch rest {
	case "打":
		if letter == "" {
			return "", dest, fmt.Errorf("cannot drop a promoted piece in %q", token)
		}
		return letter + "*" + dest.String(), dest, nil
	case "", "不成", "生":
		if !hasFrom {
			return "", dest, fmt.Errorf("missing origin square in %q", token)
		}
		return from.String() + dest.String(), dest, nil
	case "成":
		if !hasFrom {
			return "", dest, fmt.Errorf("missing origin square in %q", token)
		}
		return from.String() + dest.String() + "+", dest, nil
	}
	return "", dest, fmt.Errorf("unexpected %q in %q", rest, token)
}

// pieceNames maps KIF piece names to the USI drop letter. Promoted pieces
// map to "" since they can never be dropped. Longer names come first.
var pieceNames = []struct {
	name   string
	letter string
}{
	{"成銀", ""}, {"成桂", ""}, {"成香", ""},
	{"全", ""}, {"圭", ""}, {"杏", ""},
	{"と", ""}, {"馬", ""}, {"龍", ""}, {"竜", ""},
	{"玉", ""}, {"王", ""},
	{"飛", "R"}, {"角", "B"}, {"金", "G"}, {"銀", "S"},
	{"桂", "N"}, {"香", "L"}, {"歩", "P"},
}

func cutPiece(s string) (letter, rest string, ok bool) {
	for _, p := range pieceNames {
		if r, found := strings.CutPrefix(s, p.name); found {
			return p.letter, strings.TrimSpace(r), true
		}
	}
	return "", "", false
}

func parseFile(r rune) (int, bool) {
	switch {
	case r >= '1' && r <= '9':
		return int(r - '0'), true
	case r >= '１' && r <= '９':
		return int(r-'１') + 1, true
	}
	return 0, false
}

func parseRank(r rune) (int, bool) {
	if i := strings.IndexRune("一二三四五六七八九", r); i >= 0 {
		// Each kanji numeral is three bytes in UTF-8.
		return i/3 + 1, true
	}
	if r >= '1' && r <= '9' {
		return int(r - '0'), true
	}
	return 0, false
}
