package argon2core

import "github.com/opd-ai/go-argon2/internal/blake2b"

// Finalize XORs the last block of every lane into an accumulator block,
// then extracts the tag via the variable-length BLAKE2b hash H'.
// out must be exactly p.HashLength bytes.
func Finalize(m *Memory, p Params, out []byte) {
	acc := *m.At(0, p.LaneLength-1)
	for lane := uint32(1); lane < p.Lanes; lane++ {
		acc.XOR(m.At(lane, p.LaneLength-1))
	}

	serialized := acc.Bytes()
	blake2b.Long(out, serialized)
}
