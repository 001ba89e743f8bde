package nist

// BitAccessor presents an input byte buffer as a sequence of individually
// addressable bits (spec §2 item 1). Bit ordering is MSB-first: bit k of
// iteration i is bit (k mod 8) of byte (i*n+k)/8, with MSB = bit 0 (spec
// §6, §9 Open Question #2 -- resolved in favor of NIST convention and
// checked in bitaccessor_test.go against the byte 0xA5 and a
// 0xFF 0x00 0xF0 buffer).
type BitAccessor struct {
	data []byte
}

// NewBitAccessor wraps a read-only byte buffer. The buffer is never
// copied or mutated; multiple threads may share one BitAccessor safely.
func NewBitAccessor(data []byte) *BitAccessor {
	return &BitAccessor{data: data}
}

// Len returns the total number of addressable bits.
func (b *BitAccessor) Len() int64 {
	return int64(len(b.data)) * 8
}

// Bit returns bit k (0-indexed, MSB-first) of the buffer.
func (b *BitAccessor) Bit(k int64) byte {
	byteIdx := k / 8
	bitIdx := uint(k % 8)
	return (b.data[byteIdx] >> (7 - bitIdx)) & 1
}

// Extract copies the n bits starting at absolute bit offset into dst as
// individual {0,1} bytes, one per bit (spec §4.4 step 1). dst must have
// length >= n.
func (b *BitAccessor) Extract(offset, n int64, dst []byte) {
	for k := int64(0); k < n; k++ {
		dst[k] = b.Bit(offset + k)
	}
}
