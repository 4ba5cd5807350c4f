package board

// prng is a xorshift64* generator. Zobrist keys and the magic search both use
// fixed seeds so tables are reproducible across runs.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// sparse128 returns an 81-bit value with roughly a quarter of its bits set,
// which makes good magic candidates.
func (p *prng) sparse128() Bitboard {
	lo := p.next() & p.next()
	hi := p.next() & p.next()
	return NewBitboard(lo, hi)
}
