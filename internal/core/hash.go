package core

import (
	"encoding/binary"

	"github.com/opd-ai/go-argon2/internal/blake2b"
)

// Variant selects Argon2d (data-dependent) or Argon2i (data-independent)
// addressing.
type Variant uint32

const (
	VariantArgon2d Variant = 0
	VariantArgon2i Variant = 1
)

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// InitialHash computes H0, the BLAKE2b-512 seed hash that feeds the first
// two blocks of every lane, per spec.md section 4.4.
func InitialHash(lanes, tagLength, memoryKiB, passes, version uint32, variant Variant,
	password, salt, secret, ad []byte) [64]byte {

	h, _ := blake2b.New(nil, 64)
	h.Write(le32(lanes))
	h.Write(le32(tagLength))
	h.Write(le32(memoryKiB))
	h.Write(le32(passes))
	h.Write(le32(version))
	h.Write(le32(uint32(variant)))

	h.Write(le32(uint32(len(password))))
	h.Write(password)
	h.Write(le32(uint32(len(salt))))
	h.Write(salt)
	h.Write(le32(uint32(len(secret))))
	h.Write(secret)
	h.Write(le32(uint32(len(ad))))
	h.Write(ad)

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HPrime is the Argon2 variable-length hash H' (spec.md 4.2): for outLen up
// to 64 bytes it is a single BLAKE2b call; longer outputs chain BLAKE2b-64
// calls, taking the first half of each intermediate digest and the full
// tail of the last one.
func HPrime(outLen uint32, message []byte) []byte {
	if outLen <= 64 {
		h, _ := blake2b.New(nil, int(outLen))
		h.Write(le32(outLen))
		h.Write(message)
		return h.Sum(nil)
	}

	// r = ceil(outLen/32); V_1..V_{r-2} each contribute their first 32
	// bytes, and the last of them, V_{r-2}, is hashed once more to the
	// remaining length.
	r := (outLen + 31) / 32

	h, _ := blake2b.New(nil, 64)
	h.Write(le32(outLen))
	h.Write(message)
	v := h.Sum(nil) // V_1

	out := make([]byte, 0, outLen)
	out = append(out, v[:32]...)
	for i := uint32(2); i <= r-2; i++ {
		h2, _ := blake2b.New(nil, 64)
		h2.Write(v)
		v = h2.Sum(nil)
		out = append(out, v[:32]...)
	}

	finalLen := outLen - 32*(r-2)
	hf, _ := blake2b.New(nil, int(finalLen))
	hf.Write(v)
	out = append(out, hf.Sum(nil)...)

	return out
}

// InitBlock computes one of the two seed blocks for a lane:
// H'_1024(H0 || LE32(blockIndex) || LE32(lane)).
func InitBlock(h0 [64]byte, blockIndex, lane uint32) Block {
	msg := make([]byte, 0, 72)
	msg = append(msg, h0[:]...)
	msg = append(msg, le32(blockIndex)...)
	msg = append(msg, le32(lane)...)

	var b Block
	b.SetBytes(HPrime(BlockSize, msg))
	return b
}
