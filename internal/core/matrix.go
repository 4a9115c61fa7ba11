package core

// SyncPoints is the number of slices each lane is divided into per pass.
// Argon2 fixes this at 4 to bound how much state crosses the barrier
// between workers.
const SyncPoints = 4

// Matrix is the memory-hard working set: lanes x laneLength blocks, stored
// as one flat arena so that indexing is a single multiply-add and workers
// can share the backing array without per-block ownership bookkeeping (see
// DESIGN.md). Each lane is split into SyncPoints equal-width slices; the
// fill driver's barrier guarantees all writes to slice s across every lane
// happen-before any read of slice s while filling slice s+1.
type Matrix struct {
	blocks        []Block
	lanes         uint32
	laneLength    uint32
	segmentLength uint32
}

// NewMatrix allocates a zeroed matrix for the given lane count and
// per-lane length. laneLength must already be a multiple of SyncPoints.
func NewMatrix(lanes, laneLength uint32) *Matrix {
	return &Matrix{
		blocks:        make([]Block, uint64(lanes)*uint64(laneLength)),
		lanes:         lanes,
		laneLength:    laneLength,
		segmentLength: laneLength / SyncPoints,
	}
}

// Lanes returns the lane count p.
func (m *Matrix) Lanes() uint32 { return m.lanes }

// LaneLength returns the number of blocks per lane.
func (m *Matrix) LaneLength() uint32 { return m.laneLength }

// SegmentLength returns the number of blocks per (lane, slice) segment.
func (m *Matrix) SegmentLength() uint32 { return m.segmentLength }

// At returns a pointer to block (lane, offset) for in-place mixing.
func (m *Matrix) At(lane, offset uint32) *Block {
	return &m.blocks[uint64(lane)*uint64(m.laneLength)+uint64(offset)]
}

// Wipe zeroes every block in the matrix. Callers must do this before the
// matrix goes out of scope, per spec.md 3 ("Sensitive blocks must be zeroed
// when released") and 5 ("The region must be zeroed before deallocation").
func (m *Matrix) Wipe() {
	for i := range m.blocks {
		m.blocks[i].Zero()
	}
}

// LaneMemoryKiB computes memory_kib_rounded per spec.md 3: the largest
// multiple of 4*lanes not exceeding memoryKiB, and the resulting laneLength.
// Callers must have already validated memoryKiB >= 8*lanes.
func LaneMemoryKiB(memoryKiB, lanes uint32) (roundedKiB, laneLength uint32) {
	unit := 4 * lanes
	roundedKiB = unit * (memoryKiB / unit)
	laneLength = roundedKiB / lanes
	return roundedKiB, laneLength
}
