package blake2b

import "encoding/binary"

// Long implements Argon2's variable-length hash H', defined in the
// Argon2 specification section 3.1 (RFC 9106 section 3.3 in the RFC's
// numbering). It hashes u32le(outLen) || in with BLAKE2b; for outLen up
// to 64 bytes this is a single BLAKE2b call, and for larger outLen it
// chains 32-byte halves of successive 64-byte BLAKE2b digests until the
// requested length is produced exactly.
func Long(out, in []byte) {
	outLen := len(out)
	if outLen == 0 {
		return
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outLen))

	if outLen <= MaxSize {
		h, err := New(outLen)
		if err != nil {
			panic("blake2b: Long: " + err.Error())
		}
		h.Write(lenPrefix[:])
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	h512, err := New(MaxSize)
	if err != nil {
		panic("blake2b: Long: " + err.Error())
	}
	h512.Write(lenPrefix[:])
	h512.Write(in)

	var v [MaxSize]byte
	h512.Sum(v[:0])

	copied := copy(out, v[:32])

	for outLen-copied > MaxSize {
		h512.Reset()
		h512.Write(v[:])
		h512.Sum(v[:0])
		copied += copy(out[copied:], v[:32])
	}

	remaining := outLen - copied
	hr, err := New(remaining)
	if err != nil {
		panic("blake2b: Long: " + err.Error())
	}
	hr.Write(v[:])
	hr.Sum(out[copied:copied])
}
