package argon2core

import (
	"encoding/binary"

	"github.com/opd-ai/go-argon2/internal/blake2b"
)

// Version is the Argon2 version this implementation speaks on the wire.
const Version uint32 = 0x13

// PreHash computes H0, the 64-byte BLAKE2b-512 digest of the parameter
// and input preamble. A missing optional buffer (secret or
// associatedData) contributes only its zero length field, never a nil
// dereference.
func PreHash(p Params, message, salt, secret, associatedData []byte) [64]byte {
	var u32 [4]byte

	h, err := blake2b.New(64)
	if err != nil {
		panic("argon2core: PreHash: " + err.Error())
	}

	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}
	writeField := func(b []byte) {
		writeU32(uint32(len(b)))
		if len(b) > 0 {
			h.Write(b)
		}
	}

	writeU32(p.Lanes)
	writeU32(p.HashLength)
	writeU32(p.MemoryCost)
	writeU32(p.TimeCost)
	writeU32(Version)
	writeU32(uint32(p.Addressing))

	writeField(message)
	writeField(salt)
	writeField(secret)
	writeField(associatedData)

	var h0 [64]byte
	h.Sum(h0[:0])
	return h0
}

// SeedFirstBlocks fills blocks 0 and 1 of every lane from H0:
// B[l][0] = H'(H0 || u32(0) || u32(l), 1024) and
// B[l][1] = H'(H0 || u32(1) || u32(l), 1024).
func SeedFirstBlocks(m *Memory, p Params, h0 [64]byte) {
	var seed [72]byte
	copy(seed[:64], h0[:])

	var expansion [BlockSize]byte

	for lane := uint32(0); lane < p.Lanes; lane++ {
		binary.LittleEndian.PutUint32(seed[68:72], lane)

		binary.LittleEndian.PutUint32(seed[64:68], 0)
		blake2b.Long(expansion[:], seed[:])
		m.At(lane, 0).LoadLE(expansion[:])

		binary.LittleEndian.PutUint32(seed[64:68], 1)
		blake2b.Long(expansion[:], seed[:])
		m.At(lane, 1).LoadLE(expansion[:])
	}
}
