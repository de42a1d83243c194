package argon2core

// indexAlpha maps a pseudo-random word to the absolute block index a
// segment-fill step should reference, following Argon2's quadratic
// windowing rule (the Argon2 "phi" rule). j1 is the low 32 bits of the
// pseudo-random value (selects the offset within the window); sameLane
// reports whether refLane, fed the high 32 bits, picked the current lane.
func indexAlpha(pos Position, p Params, j1 uint32, sameLane bool) uint32 {
	window := referenceWindow(pos, p, sameLane)

	x := (uint64(j1) * uint64(j1)) >> 32
	y := (window * x) >> 32
	rel := window - 1 - y

	start := windowStart(pos, p)

	return uint32((start + rel) % uint64(p.LaneLength))
}

// referenceWindow computes W, the number of candidate blocks a
// reference may be chosen from.
func referenceWindow(pos Position, p Params, sameLane bool) uint64 {
	segLen := uint64(p.SegmentLength)
	laneLen := uint64(p.LaneLength)

	if pos.Pass == 0 {
		if pos.Slice == 0 {
			return uint64(pos.Index) - 1
		}
		if sameLane {
			return uint64(pos.Slice)*segLen + uint64(pos.Index) - 1
		}
		if pos.Index == 0 {
			return uint64(pos.Slice)*segLen - 1
		}
		return uint64(pos.Slice) * segLen
	}

	if sameLane {
		return laneLen - segLen + uint64(pos.Index) - 1
	}
	if pos.Index == 0 {
		return laneLen - segLen - 1
	}
	return laneLen - segLen
}

// windowStart computes the absolute start offset of the reference
// window within the lane.
func windowStart(pos Position, p Params) uint64 {
	if pos.Pass == 0 {
		return 0
	}
	if pos.Slice == SyncPoints-1 {
		return 0
	}
	return uint64(pos.Slice+1) * uint64(p.SegmentLength)
}

// refLane picks the lane a reference block is drawn from: pass 0 slice 0
// always stays within the current lane; otherwise j2 (the high 32 bits
// of the pseudo-random word) selects among all lanes.
func refLane(pos Position, p Params, j2 uint32) uint32 {
	if pos.Pass == 0 && pos.Slice == 0 {
		return pos.Lane
	}
	return j2 % p.Lanes
}
