package board

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"sync"
	"sync/atomic"
)

// SliderAttacks computes lance, bishop and rook attacks for an occupancy.
// All implementations return identical bitboards; they differ only in speed.
type SliderAttacks interface {
	Lance(sq Square, c Color, occ Bitboard) Bitboard
	Bishop(sq Square, occ Bitboard) Bitboard
	Rook(sq Square, occ Bitboard) Bitboard
}

// Backend names a SliderAttacks implementation.
type Backend uint8

const (
	BackendRay Backend = iota
	BackendMagic
	BackendPext
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendRay:
		return "ray"
	case BackendMagic:
		return "magic"
	case BackendPext:
		return "pext"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// ParseBackend parses a backend name.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "ray":
		return BackendRay, nil
	case "magic":
		return BackendMagic, nil
	case "pext":
		return BackendPext, nil
	}
	return BackendRay, fmt.Errorf("unknown slider backend %q (want ray, magic or pext)", s)
}

// ErrTablesInitialized is returned when the slider backend is changed after first use.
var ErrTablesInitialized = errors.New("slider tables already initialized")

var (
	sliderMu      sync.Mutex
	sliderOnce    sync.Once
	sliderReady   atomic.Bool
	sliderBackend = BackendMagic
	loadedMagics  *Magics
	sliders       SliderAttacks
)

// SelectBackend chooses the process-wide slider backend. It must be called
// before the first attack lookup.
func SelectBackend(b Backend) error {
	if b > BackendPext {
		return fmt.Errorf("unknown slider backend %d", b)
	}
	sliderMu.Lock()
	defer sliderMu.Unlock()
	if sliderReady.Load() {
		return ErrTablesInitialized
	}
	sliderBackend = b
	return nil
}

// LoadMagics reads a magic table blob and makes it the source of the magic
// backend's multipliers. Every entry is verified against ray-scan before it
// is accepted. Like SelectBackend it must run before the first lookup.
func LoadMagics(r io.Reader) error {
	m, err := ReadMagics(r)
	if err != nil {
		return err
	}
	if _, err := newMagicAttacks(m); err != nil {
		return err
	}
	sliderMu.Lock()
	defer sliderMu.Unlock()
	if sliderReady.Load() {
		return ErrTablesInitialized
	}
	loadedMagics = m
	sliderBackend = BackendMagic
	return nil
}

// ActiveBackend reports the configured slider backend.
func ActiveBackend() Backend {
	sliderMu.Lock()
	defer sliderMu.Unlock()
	return sliderBackend
}

func initSliders() {
	sliderMu.Lock()
	defer sliderMu.Unlock()

	switch sliderBackend {
	case BackendRay:
		sliders = rayScan{}
	case BackendPext:
		sliders = pextTables()
	default:
		if loadedMagics != nil {
			m, err := newMagicAttacks(loadedMagics)
			if err != nil {
				panic(err)
			}
			sliders = m
		} else {
			sliders = builtinMagicAttacks()
		}
	}
	sliderReady.Store(true)
}

func activeSliders() SliderAttacks {
	sliderOnce.Do(initSliders)
	return sliders
}

// extractBits gathers the bits of occ selected by mask into the low bits of
// the result, lowest mask bit first.
func extractBits(occ, mask Bitboard) uint32 {
	lo := pext64(occ.lo, mask.lo)
	hi := pext64(occ.hi, mask.hi)
	return uint32(lo | hi<<bits.OnesCount64(mask.lo))
}

func pext64(x, mask uint64) uint64 {
	var out uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if x&mask&-mask != 0 {
			out |= bit
		}
		mask &= mask - 1
	}
	return out
}

// depositBits is the inverse of extractBits: it spreads the low bits of
// index over the squares of mask.
func depositBits(index int, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := 0; mask.More(); i++ {
		sq := mask.PopLSB()
		if index&(1<<i) != 0 {
			occ = occ.Set(sq)
		}
	}
	return occ
}
