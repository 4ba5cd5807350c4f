package storage

import (
	"os"
	"testing"
	"time"
)

const startSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	s := openTestStore(t)

	t.Run("FirstLaunch", func(t *testing.T) {
		first, err := s.IsFirstLaunch()
		if err != nil {
			t.Fatal(err)
		}
		if !first {
			t.Error("Expected first launch on a fresh store")
		}
		if err := s.MarkFirstLaunchComplete(); err != nil {
			t.Fatal(err)
		}
		first, err = s.IsFirstLaunch()
		if err != nil {
			t.Fatal(err)
		}
		if first {
			t.Error("Expected first launch to be complete")
		}
	})

	t.Run("MissingPerft", func(t *testing.T) {
		_, found, err := s.LoadPerft(startSFEN, 7)
		if err != nil {
			t.Fatal(err)
		}
		if found {
			t.Error("Expected no record")
		}
	})

	t.Run("SaveLoadPerft", func(t *testing.T) {
		rec := PerftRecord{SFEN: startSFEN, Depth: 3, Nodes: 25470, Elapsed: time.Second, Backend: "magic"}
		if err := s.SavePerft(rec); err != nil {
			t.Fatal(err)
		}

		// The ply field does not take part in the key.
		got, found, err := s.LoadPerft("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 41", 3)
		if err != nil {
			t.Fatal(err)
		}
		if !found {
			t.Fatal("Expected record")
		}
		if got.Nodes != 25470 || got.Depth != 3 || got.Backend != "magic" {
			t.Errorf("Loaded %+v", got)
		}
		if got.Recorded.IsZero() {
			t.Error("Expected record time to be set")
		}
	})

	t.Run("CheckPerft", func(t *testing.T) {
		mismatch, _, err := s.CheckPerft(PerftRecord{SFEN: startSFEN, Depth: 2, Nodes: 900})
		if err != nil || mismatch {
			t.Fatalf("first CheckPerft = %v, %v", mismatch, err)
		}
		mismatch, _, err = s.CheckPerft(PerftRecord{SFEN: startSFEN, Depth: 2, Nodes: 900})
		if err != nil || mismatch {
			t.Fatalf("matching CheckPerft = %v, %v", mismatch, err)
		}
		mismatch, prev, err := s.CheckPerft(PerftRecord{SFEN: startSFEN, Depth: 2, Nodes: 901})
		if err != nil {
			t.Fatal(err)
		}
		if !mismatch || prev != 900 {
			t.Errorf("CheckPerft = %v, %d; want mismatch against 900", mismatch, prev)
		}
	})

	t.Run("ListPerft", func(t *testing.T) {
		records, err := s.ListPerft()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(records))
		}
		if records[0].Depth != 2 || records[1].Depth != 3 {
			t.Errorf("Records out of depth order: %d, %d", records[0].Depth, records[1].Depth)
		}
	})
}

func TestReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SavePerft(PerftRecord{SFEN: startSFEN, Depth: 1, Nodes: 30}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	rec, found, err := s.LoadPerft(startSFEN, 1)
	if err != nil || !found || rec.Nodes != 30 {
		t.Errorf("after reopen: %+v, %v, %v", rec, found, err)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	// Test that GetDataDir returns a valid path
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	path, err := GetTablesPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Error("GetTablesPath returned empty path")
	}

	t.Logf("Data directory: %s", dataDir)
}
