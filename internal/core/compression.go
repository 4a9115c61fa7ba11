package core

// Version identifiers recognized by the engine.
const (
	Version10 uint32 = 0x10
	Version13 uint32 = 0x13
)

// fillBlock computes the Argon2 compression of prev and ref into dst.
//
//	R = prev XOR ref
//	Q = P(R)          (P = 8 row rounds then 8 column rounds)
//	Z = R XOR Q
//
// For version 0x10, dst is always overwritten with Z. For version 0x13, the
// first pass (pass == 0) overwrites dst with Z; later passes XOR Z into the
// block's existing contents, which is what makes later passes mix in
// material from the previous pass rather than discarding it.
func fillBlock(dst, prev, ref *Block, version uint32, pass uint32) {
	var r, q Block
	r.XORBlocks(prev, ref)
	q = r

	permuteDispatch(&r)
	r.XOR(&q)

	if version == Version10 {
		*dst = r
		return
	}

	if pass == 0 {
		*dst = r
	} else {
		dst.XOR(&r)
	}
}
