package board

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Magic table blob layout (little-endian):
//
//	offset 0   [4]byte  "SGMG"
//	offset 4   uint16   version (1)
//	offset 6   uint16   entry count (324)
//	offset 8   uint64   xxhash64 of the decompressed payload
//	offset 16  zstd frame with the payload
//
// The payload is 324 entries of 16 bytes (lo uint64, hi uint64) in the order
// lance sente [81], lance gote [81], bishop [81], rook [81].

const (
	blobVersion     = 1
	blobEntries     = 4 * NumSquares
	blobEntrySize   = 16
	blobHeaderSize  = 16
	blobPayloadSize = blobEntries * blobEntrySize
)

var blobMagic = [4]byte{'S', 'G', 'M', 'G'}

// ErrBadTableBlob is returned for a corrupt or incompatible magic table blob.
var ErrBadTableBlob = errors.New("bad magic table blob")

func (m *Magics) entries() []*Bitboard {
	out := make([]*Bitboard, 0, blobEntries)
	for c := range m.Lance {
		for sq := range m.Lance[c] {
			out = append(out, &m.Lance[c][sq])
		}
	}
	for sq := range m.Bishop {
		out = append(out, &m.Bishop[sq])
	}
	for sq := range m.Rook {
		out = append(out, &m.Rook[sq])
	}
	return out
}

// WriteMagics encodes a multiplier set as a table blob and returns the number of bytes written.
func WriteMagics(w io.Writer, m *Magics) (int, error) {
	payload := make([]byte, 0, blobPayloadSize)
	for _, bb := range m.entries() {
		payload = binary.LittleEndian.AppendUint64(payload, bb.lo)
		payload = binary.LittleEndian.AppendUint64(payload, bb.hi)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return 0, err
	}
	defer enc.Close()

	var header [blobHeaderSize]byte
	copy(header[:4], blobMagic[:])
	binary.LittleEndian.PutUint16(header[4:], blobVersion)
	binary.LittleEndian.PutUint16(header[6:], blobEntries)
	binary.LittleEndian.PutUint64(header[8:], xxhash.Sum64(payload))

	blob := enc.EncodeAll(payload, header[:])
	return w.Write(blob)
}

// ReadMagics decodes a table blob written by WriteMagics.
func ReadMagics(r io.Reader) (*Magics, error) {
	var header [blobHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrBadTableBlob, err)
	}
	if !bytes.Equal(header[:4], blobMagic[:]) {
		return nil, fmt.Errorf("%w: wrong magic %q", ErrBadTableBlob, header[:4])
	}
	if v := binary.LittleEndian.Uint16(header[4:]); v != blobVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadTableBlob, v)
	}
	if n := binary.LittleEndian.Uint16(header[6:]); n != blobEntries {
		return nil, fmt.Errorf("%w: %d entries, want %d", ErrBadTableBlob, n, blobEntries)
	}
	sum := binary.LittleEndian.Uint64(header[8:])

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTableBlob, err)
	}
	defer dec.Close()

	payload, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing: %v", ErrBadTableBlob, err)
	}
	if len(payload) != blobPayloadSize {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrBadTableBlob, len(payload), blobPayloadSize)
	}
	if got := xxhash.Sum64(payload); got != sum {
		return nil, fmt.Errorf("%w: checksum %016x, want %016x", ErrBadTableBlob, got, sum)
	}

	m := new(Magics)
	for i, bb := range m.entries() {
		off := i * blobEntrySize
		*bb = NewBitboard(
			binary.LittleEndian.Uint64(payload[off:]),
			binary.LittleEndian.Uint64(payload[off+8:]),
		)
	}
	return m, nil
}
