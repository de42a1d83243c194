// Package blake2b wraps golang.org/x/crypto/blake2b behind the narrow
// streaming interface the Argon2 core needs: a hash with a settable
// digest size that can be written to, summed, and reset for reuse.
package blake2b

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// MaxSize is the largest digest size BLAKE2b can produce in one call, in
// bytes. Argon2's H' extension hashes past this limit by chaining calls.
const MaxSize = blake2b.Size

// Stream is a reusable BLAKE2b hash with a configurable output size.
// It has the Write, Sum, Reset and Size methods of hash.Hash (not
// BlockSize); Reset() allows the caller to fold many independent
// digests through one allocation, which Long's chaining loop relies on.
type Stream struct {
	h    hash.Hash
	size int
}

// New creates a streaming BLAKE2b hash that emits size bytes (1..64) per
// Sum call. An unkeyed hash is produced; Argon2 never uses BLAKE2b's
// native key parameter.
func New(size int) (*Stream, error) {
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, err
	}
	return &Stream{h: h, size: size}, nil
}

// Write feeds data into the running hash.
func (s *Stream) Write(p []byte) (int, error) {
	return s.h.Write(p)
}

// Sum appends the digest to dst and returns the resulting slice. It does
// not reset the underlying state; call Reset first if the stream is to
// be reused for an independent digest.
func (s *Stream) Sum(dst []byte) []byte {
	return s.h.Sum(dst)
}

// Reset clears accumulated input so the stream can compute a fresh
// digest of the same size.
func (s *Stream) Reset() {
	s.h.Reset()
}

// Size returns the configured digest size in bytes.
func (s *Stream) Size() int {
	return s.size
}

// Sum512 is a convenience one-shot BLAKE2b-512 digest. The Argon2
// pre-hash H0 does not use it; it streams through New(64) instead.
func Sum512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}
