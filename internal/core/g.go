package core

// fBlaMka is the Argon2-specific variant of the BLAKE2b mixing addition:
// a + b + 2*(a_low * b_low), where a_low/b_low are the low 32 bits of each
// operand. This extra multiplicative term is what distinguishes Argon2's P
// permutation from a plain BLAKE2b round.
func fBlaMka(a, b uint64) uint64 {
	lo := uint64(uint32(a)) * uint64(uint32(b))
	return a + b + 2*lo
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// g is the Argon2 round function on four 64-bit words.
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = rotr64(d^a, 32)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 24)

	a = fBlaMka(a, b)
	d = rotr64(d^a, 16)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// gRound applies g to the 16 words of one 128-byte row or column of the
// 8x8 lane matrix: first as four independent "columns" of the 4x4 view,
// then as four "diagonals" — this is the same two-pass pattern BLAKE2b
// itself uses within a round.
func gRound(v *[16]uint64) {
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}

// permute applies the Argon2 P permutation in place to a 1024-byte block
// viewed as an 8x8 matrix of 128-bit (two-uint64) lanes: one gRound per row,
// then one gRound per column. This is the scalar reference kernel; it is
// always correct and used as the oracle for the vector kernel in g_simd.go.
func permute(r *Block) {
	// Rows: row i is the 16 consecutive words [16i, 16i+16).
	for row := 0; row < 8; row++ {
		var v [16]uint64
		copy(v[:], r[row*16:row*16+16])
		gRound(&v)
		copy(r[row*16:row*16+16], v[:])
	}

	// Columns: column c is the 16 words at offsets {16k+2c, 16k+2c+1} for
	// k in 0..7 — i.e. the two 64-bit halves of lane-cell c in every row.
	for col := 0; col < 8; col++ {
		var v [16]uint64
		for k := 0; k < 8; k++ {
			v[2*k] = r[16*k+2*col]
			v[2*k+1] = r[16*k+2*col+1]
		}
		gRound(&v)
		for k := 0; k < 8; k++ {
			r[16*k+2*col] = v[2*k]
			r[16*k+2*col+1] = v[2*k+1]
		}
	}
}
