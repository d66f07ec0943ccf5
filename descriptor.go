package progdesc

import (
	"bytes"
	"encoding/binary"
)

// Key zone layout. The header zone sits at a fixed offset and size so two
// descriptors with equal header content compare byte-for-byte equal there
// regardless of the processor keys that follow.
const (
	// HeaderOffset is the byte offset of the header zone.
	HeaderOffset = 0

	// HeaderSize is the size of the header zone in bytes, including
	// padding. The zone is fully zeroed before population.
	HeaderSize = 8

	// ProcessorKeysOffset is the byte offset of the first processor key
	// segment. Must be 32-bit aligned.
	ProcessorKeysOffset = HeaderOffset + HeaderSize
)

// Descriptor is an immutable byte key identifying a generated shader
// program. Equal byte content means equal programs; the program cache
// computes its own hash over the bytes.
//
// The zero Descriptor is empty and matches no program.
type Descriptor struct {
	key []byte
}

// Bytes returns the key bytes. The returned slice is the descriptor's
// backing storage; callers must not modify it.
func (d Descriptor) Bytes() []byte {
	return d.key
}

// Length returns the key length in bytes.
func (d Descriptor) Length() int {
	return len(d.key)
}

// Equal reports whether two descriptors have identical byte content.
func (d Descriptor) Equal(other Descriptor) bool {
	return bytes.Equal(d.key, other.key)
}

// KeyBuilder appends 32-bit words to an in-progress descriptor key.
// Processors receive a KeyBuilder in WriteKey to emit their private key.
//
// The builder writes through to a growable slice, so callers must never
// retain a sub-slice of the key across an append; reacquire it from the
// backing slice instead.
type KeyBuilder struct {
	key *[]byte
}

// Add32 appends one 32-bit word in little-endian order.
func (b *KeyBuilder) Add32(v uint32) {
	*b.key = binary.LittleEndian.AppendUint32(*b.key, v)
}

// AddBytes appends opaque key bytes, zero-padding to the next 32-bit
// boundary. The padding counts toward the private-key length recorded in
// the meta key, which keeps the length deterministic for equal inputs.
func (b *KeyBuilder) AddBytes(p []byte) {
	*b.key = append(*b.key, p...)
	for len(*b.key)%4 != 0 {
		*b.key = append(*b.key, 0)
	}
}

// Size returns the number of bytes appended through the builder so far.
// The reserved header zone does not count.
func (b *KeyBuilder) Size() int {
	return len(*b.key) - ProcessorKeysOffset
}
