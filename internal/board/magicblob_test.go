package board

import (
	"bytes"
	"errors"
	"testing"
)

func randomMagics() *Magics {
	rng := newPRNG(42)
	m := new(Magics)
	for _, bb := range m.entries() {
		*bb = rng.sparse128()
	}
	return m
}

func TestMagicBlobRoundTrip(t *testing.T) {
	want := randomMagics()

	var buf bytes.Buffer
	n, err := WriteMagics(&buf, want)
	if err != nil {
		t.Fatalf("WriteMagics: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("WriteMagics reported %d bytes, wrote %d", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("SGMG")) {
		t.Error("blob lacks the SGMG header")
	}

	got, err := ReadMagics(&buf)
	if err != nil {
		t.Fatalf("ReadMagics: %v", err)
	}
	if *got != *want {
		t.Error("decoded magics differ")
	}
}

func TestMagicBlobCorruption(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteMagics(&buf, randomMagics()); err != nil {
		t.Fatal(err)
	}
	blob := buf.Bytes()

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }},
		{"bad version", func(b []byte) []byte { b[4] = 9; return b }},
		{"bad entry count", func(b []byte) []byte { b[6]++; return b }},
		{"bad checksum", func(b []byte) []byte { b[8] ^= 0xFF; return b }},
		{"truncated header", func(b []byte) []byte { return b[:10] }},
		{"truncated payload", func(b []byte) []byte { return b[:blobHeaderSize+4] }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.mutate(bytes.Clone(blob))
			if _, err := ReadMagics(bytes.NewReader(data)); !errors.Is(err, ErrBadTableBlob) {
				t.Errorf("ReadMagics error = %v, want ErrBadTableBlob", err)
			}
		})
	}
}

func TestLoadMagicsRejectsCollisions(t *testing.T) {
	// All-zero multipliers send every occupancy to slot 0.
	var buf bytes.Buffer
	if _, err := WriteMagics(&buf, new(Magics)); err != nil {
		t.Fatal(err)
	}
	if err := LoadMagics(&buf); !errors.Is(err, ErrBadTableBlob) {
		t.Errorf("LoadMagics error = %v, want ErrBadTableBlob", err)
	}
}

func TestBuiltinMagicsVerify(t *testing.T) {
	if _, err := newMagicAttacks(&defaultMagics); err != nil {
		t.Fatalf("built-in magics fail verification: %v", err)
	}
}

func TestBuiltinMagicsMatchSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping magic search in short mode")
	}
	m, err := FindMagics(DefaultMagicSeed)
	if err != nil {
		t.Fatalf("FindMagics: %v", err)
	}
	if *m != defaultMagics {
		t.Fatal("FindMagics(DefaultMagicSeed) differs from the built-in table; regenerate it with shogigen -format go")
	}

	var buf bytes.Buffer
	if _, err := WriteMagics(&buf, m); err != nil {
		t.Fatal(err)
	}
	back, err := ReadMagics(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := newMagicAttacks(back); err != nil {
		t.Errorf("round-tripped magics fail verification: %v", err)
	}
}
