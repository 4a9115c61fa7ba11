package core

// RunParams carries the already-validated parameters the engine needs to
// execute one Argon2 call. Validation itself lives in the public argon2
// package (spec.md 7: validation happens before any allocation); by the
// time Run is called every field is known to be in range.
type RunParams struct {
	Variant        Variant
	Version        uint32
	Passes         uint32
	Lanes          uint32
	MemoryKiB      uint32 // raw, as supplied by the caller (fed into H0 verbatim)
	TagLength      uint32
	SingleThreaded bool
}

// Run executes the full Argon2 computation: H0, lane seeding, the
// pass/slice/lane fill, and finalization, returning a freshly allocated tag
// of p.TagLength bytes. The matrix and H0 buffer are wiped before Run
// returns, satisfying spec.md's zero-on-release requirement.
func Run(p RunParams, password, salt, secret, ad []byte) []byte {
	_, laneLength := LaneMemoryKiB(p.MemoryKiB, p.Lanes)

	h0 := InitialHash(p.Lanes, p.TagLength, p.MemoryKiB, p.Passes, p.Version, p.Variant, password, salt, secret, ad)
	defer zeroBytes64(&h0)

	m := NewMatrix(p.Lanes, laneLength)
	defer m.Wipe()

	for lane := uint32(0); lane < p.Lanes; lane++ {
		*m.At(lane, 0) = InitBlock(h0, 0, lane)
		*m.At(lane, 1) = InitBlock(h0, 1, lane)
	}

	Fill(m, FillConfig{
		Variant:        p.Variant,
		Version:        p.Version,
		Passes:         p.Passes,
		SingleThreaded: p.SingleThreaded,
	})

	return Finalize(m, p.TagLength)
}

func zeroBytes64(b *[64]byte) {
	for i := range b {
		b[i] = 0
	}
}
