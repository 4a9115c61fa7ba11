package core

// Position identifies a block being filled: which pass, lane, slice, and
// index within the segment.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32 // index within the segment (0-based)
}

// referenceLane picks the lane of the reference block from J2. The very
// first slice of the very first pass is restricted to referencing the
// current lane only (spec.md 4.4), since no other lane has produced any
// blocks yet at that point.
func referenceLane(pos Position, lanes uint32, j2 uint32) uint32 {
	if pos.Pass == 0 && pos.Slice == 0 {
		return pos.Lane
	}
	return j2 % lanes
}

// indexAlpha maps (pos, pseudoRand) to an absolute offset within the
// reference lane. This follows the Argon2 reference implementation's
// index_alpha exactly, per spec.md 4.4/4.9's instruction to match reference
// behavior over a literal reading of the prose for the segment-boundary
// subtract-one rule.
func indexAlpha(pos Position, sameLane bool, pseudoRand uint32, segmentLength, laneLength uint32) uint32 {
	var referenceAreaSize uint32

	if pos.Pass == 0 {
		if pos.Slice == 0 {
			referenceAreaSize = pos.Index - 1
		} else if sameLane {
			referenceAreaSize = pos.Slice*segmentLength + pos.Index - 1
		} else {
			referenceAreaSize = pos.Slice * segmentLength
			if pos.Index == 0 {
				referenceAreaSize--
			}
		}
	} else {
		if sameLane {
			referenceAreaSize = laneLength - segmentLength + pos.Index - 1
		} else {
			referenceAreaSize = laneLength - segmentLength
			if pos.Index == 0 {
				referenceAreaSize--
			}
		}
	}

	rel := uint64(pseudoRand)
	rel = (rel * rel) >> 32
	rel = uint64(referenceAreaSize) - 1 - ((uint64(referenceAreaSize) * rel) >> 32)

	var startPosition uint32
	if pos.Pass != 0 {
		if pos.Slice == SyncPoints-1 {
			startPosition = 0
		} else {
			startPosition = (pos.Slice + 1) * segmentLength
		}
	}

	return (startPosition + uint32(rel)) % laneLength
}

// argon2dPseudoRand extracts Argon2d's data-dependent (J1, J2) pair from
// the previous block's first 64-bit word: J1 is its low half, J2 its high
// half.
func argon2dPseudoRand(prev *Block) (j1, j2 uint32) {
	w := prev[0]
	return uint32(w), uint32(w >> 32)
}

// addressGenerator produces the Argon2i pseudorandom (J1, J2) stream: one
// address block of 128 pairs at a time, computed as G(0, G(0, counterBlock))
// with counterBlock holding (pass, lane, slice, totalBlocks, passes, type,
// counter) as little-endian uint64 fields (spec.md 4.5). A new address block
// is generated on the first Next call and again each time the previous 128
// pairs have been used up.
type addressGenerator struct {
	inputBlock   Block
	addressBlock Block
	counter      uint64
	idx          int
}

// newAddressGenerator builds a generator seeded for one (pass, lane, slice)
// segment. variant is fixed at 1 (Argon2i) per spec.md 4.5's counter-block
// layout; totalBlocks is lanes*laneLength.
func newAddressGenerator(pass, lane, slice uint32, totalBlocks, passes uint32) *addressGenerator {
	ag := &addressGenerator{}
	ag.inputBlock[0] = uint64(pass)
	ag.inputBlock[1] = uint64(lane)
	ag.inputBlock[2] = uint64(slice)
	ag.inputBlock[3] = uint64(totalBlocks)
	ag.inputBlock[4] = uint64(passes)
	ag.inputBlock[5] = 1 // type: Argon2i
	ag.counter = 0
	ag.idx = 128 // force generation on first Next()
	return ag
}

func (ag *addressGenerator) generate() {
	ag.counter++
	ag.inputBlock[6] = ag.counter

	var zero Block
	var mid Block
	fillBlock(&mid, &zero, &ag.inputBlock, Version13, 0)
	fillBlock(&ag.addressBlock, &zero, &mid, Version13, 0)
	ag.idx = 0
}

// Next returns the next (J1, J2) pair in the address stream.
func (ag *addressGenerator) Next() (j1, j2 uint32) {
	if ag.idx >= 128 {
		ag.generate()
	}
	w := ag.addressBlock[ag.idx]
	ag.idx++
	return uint32(w), uint32(w >> 32)
}
