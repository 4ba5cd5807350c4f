package perft

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
)

type entry struct {
	key   uint64
	depth int
	nodes uint64
}

// Cache is a bounded map from (position key, depth) to node count.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	c *ristretto.Cache[uint64, entry]
}

// NewCache creates a cache holding about entries results.
func NewCache(entries int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[uint64, entry]{
		NumCounters:        entries * 10,
		MaxCost:            entries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c}, nil
}

// slot mixes the position key with the depth. The full key and depth are
// stored in the entry and compared on lookup.
func slot(key uint64, depth int) uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], key)
	buf[8] = byte(depth)
	return xxhash.Sum64(buf[:])
}

func (c *Cache) get(key uint64, depth int) (uint64, bool) {
	if c == nil {
		return 0, false
	}
	e, ok := c.c.Get(slot(key, depth))
	if !ok || e.key != key || e.depth != depth {
		return 0, false
	}
	return e.nodes, true
}

func (c *Cache) put(key uint64, depth int, nodes uint64) {
	if c == nil {
		return
	}
	c.c.Set(slot(key, depth), entry{key: key, depth: depth, nodes: nodes}, 1)
}

// Wait blocks until buffered writes are visible to readers.
func (c *Cache) Wait() {
	if c != nil {
		c.c.Wait()
	}
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	if c != nil {
		c.c.Close()
	}
}
