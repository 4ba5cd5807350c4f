package board

import (
	"fmt"
	"math/bits"
	"sync"
)

// Magic bitboard implementation for sliding piece attacks.
// The index of an occupancy is the top Shift bits of the 81-bit product
// (occ & Mask) * Magic. Table sizes are fixed per piece, so squares with
// fewer relevant blockers get slack that makes multipliers easy to find.

const (
	lanceShift  = 7
	bishopShift = 12
	rookShift   = 14

	// DefaultMagicSeed is the seed the built-in multipliers were searched with.
	DefaultMagicSeed uint64 = 0x7a57e1e55ca5cade

	maxMagicTries = 1 << 26
)

// Magics holds one multiplier per square and piece group.
type Magics struct {
	Lance  [2][NumSquares]Bitboard
	Bishop [NumSquares]Bitboard
	Rook   [NumSquares]Bitboard
}

// Magic holds the magic bitboard data for a single square.
type Magic struct {
	Mask  Bitboard // Relevant occupancy mask (excludes edges)
	Magic Bitboard // Magic multiplier
}

func (m *Magic) index(occ Bitboard, shift uint) uint32 {
	return magicIndex(occ.And(m.Mask), m.Magic, shift)
}

// magicIndex multiplies modulo 2^128, truncates to 81 bits and keeps the top shift bits.
func magicIndex(occ, magic Bitboard, shift uint) uint32 {
	hi, _ := bits.Mul64(occ.lo, magic.lo)
	hi += occ.lo*magic.hi + occ.hi*magic.lo
	return uint32((hi & hiMask) >> (NumSquares - 64 - shift))
}

type magicAttacks struct {
	lance  [2][NumSquares]Magic
	bishop [NumSquares]Magic
	rook   [NumSquares]Magic

	lanceTable  [2][NumSquares][1 << lanceShift]Bitboard
	bishopTable [NumSquares][1 << bishopShift]Bitboard
	rookTable   [NumSquares][1 << rookShift]Bitboard
}

func (m *magicAttacks) Lance(sq Square, c Color, occ Bitboard) Bitboard {
	return m.lanceTable[c][sq][m.lance[c][sq].index(occ, lanceShift)]
}

func (m *magicAttacks) Bishop(sq Square, occ Bitboard) Bitboard {
	return m.bishopTable[sq][m.bishop[sq].index(occ, bishopShift)]
}

func (m *magicAttacks) Rook(sq Square, occ Bitboard) Bitboard {
	return m.rookTable[sq][m.rook[sq].index(occ, rookShift)]
}

// builtinMagicAttacks builds the tables from the multipliers in magics_table.go.
var builtinMagicAttacks = sync.OnceValue(func() *magicAttacks {
	m, err := newMagicAttacks(&defaultMagics)
	if err != nil {
		panic(err)
	}
	return m
})

// newMagicAttacks fills the attack tables for a multiplier set, rejecting
// any multiplier that maps two occupancies with different attacks to one slot.
func newMagicAttacks(magics *Magics) (*magicAttacks, error) {
	m := new(magicAttacks)
	var ray rayScan
	filled := make([]bool, 1<<rookShift)

	fill := func(name string, sq Square, entry *Magic, table []Bitboard, shift uint, attack func(Bitboard) Bitboard) error {
		clear(filled)
		n := 1 << entry.Mask.PopCount()
		for i := 0; i < n; i++ {
			occ := depositBits(i, entry.Mask)
			want := attack(occ)
			idx := entry.index(occ, shift)
			if filled[idx] && table[idx] != want {
				return fmt.Errorf("%w: %s magic for %v collides", ErrBadTableBlob, name, sq)
			}
			filled[idx] = true
			table[idx] = want
		}
		return nil
	}

	for c := Sente; c <= Gote; c++ {
		for sq := Square(0); sq < NoSquare; sq++ {
			m.lance[c][sq] = Magic{Mask: lanceMask(sq, c), Magic: magics.Lance[c][sq]}
			err := fill("lance", sq, &m.lance[c][sq], m.lanceTable[c][sq][:], lanceShift, func(occ Bitboard) Bitboard {
				return ray.Lance(sq, c, occ)
			})
			if err != nil {
				return nil, err
			}
		}
	}

	for sq := Square(0); sq < NoSquare; sq++ {
		m.bishop[sq] = Magic{Mask: bishopMask(sq), Magic: magics.Bishop[sq]}
		err := fill("bishop", sq, &m.bishop[sq], m.bishopTable[sq][:], bishopShift, func(occ Bitboard) Bitboard {
			return ray.Bishop(sq, occ)
		})
		if err != nil {
			return nil, err
		}

		m.rook[sq] = Magic{Mask: rookMask(sq), Magic: magics.Rook[sq]}
		err = fill("rook", sq, &m.rook[sq], m.rookTable[sq][:], rookShift, func(occ Bitboard) Bitboard {
			return ray.Rook(sq, occ)
		})
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FindMagics searches multipliers for every square. The search is
// deterministic for a given seed.
func FindMagics(seed uint64) (*Magics, error) {
	rng := newPRNG(seed)
	var ray rayScan
	m := new(Magics)
	var err error

	for c := Sente; c <= Gote; c++ {
		for sq := Square(0); sq < NoSquare; sq++ {
			m.Lance[c][sq], err = findMagic(rng, lanceMask(sq, c), lanceShift, func(occ Bitboard) Bitboard {
				return ray.Lance(sq, c, occ)
			})
			if err != nil {
				return nil, fmt.Errorf("lance %v %v: %w", c, sq, err)
			}
		}
	}

	for sq := Square(0); sq < NoSquare; sq++ {
		m.Bishop[sq], err = findMagic(rng, bishopMask(sq), bishopShift, func(occ Bitboard) Bitboard {
			return ray.Bishop(sq, occ)
		})
		if err != nil {
			return nil, fmt.Errorf("bishop %v: %w", sq, err)
		}
	}

	for sq := Square(0); sq < NoSquare; sq++ {
		m.Rook[sq], err = findMagic(rng, rookMask(sq), rookShift, func(occ Bitboard) Bitboard {
			return ray.Rook(sq, occ)
		})
		if err != nil {
			return nil, fmt.Errorf("rook %v: %w", sq, err)
		}
	}

	return m, nil
}

func findMagic(rng *prng, mask Bitboard, shift uint, attack func(Bitboard) Bitboard) (Bitboard, error) {
	n := 1 << mask.PopCount()
	occs := make([]Bitboard, n)
	attacks := make([]Bitboard, n)
	for i := 0; i < n; i++ {
		occs[i] = depositBits(i, mask)
		attacks[i] = attack(occs[i])
	}

	// epoch marks which slots belong to the current try, so the table is never cleared.
	used := make([]Bitboard, 1<<shift)
	epoch := make([]uint32, 1<<shift)

	for try := uint32(1); try <= maxMagicTries; try++ {
		magic := rng.sparse128()
		ok := true
		for i := 0; i < n; i++ {
			idx := magicIndex(occs[i], magic, shift)
			if epoch[idx] != try {
				epoch[idx] = try
				used[idx] = attacks[i]
			} else if used[idx] != attacks[i] {
				ok = false
				break
			}
		}
		if ok {
			return magic, nil
		}
	}
	return Empty, fmt.Errorf("no magic found after %d tries", maxMagicTries)
}
