package argon2

// secretBuffer is a pinned/zeroed secret-memory container: a byte
// buffer with scoped acquisition and a guaranteed wipe on release.
// True OS-level page pinning (mlock) is platform-specific, so this
// container provides the weaker but still load-bearing guarantee that
// released sensitive buffers read back as all zero bytes, via the same
// explicit zero-loop idiom used throughout this package.
type secretBuffer struct {
	data []byte
}

// newSecretBuffer copies src into an owned, independently-released
// buffer. A nil or empty src yields a valid, empty buffer rather than a
// nil one, so later zeroization is always safe to call.
func newSecretBuffer(src []byte) *secretBuffer {
	b := &secretBuffer{data: make([]byte, len(src))}
	copy(b.data, src)
	return b
}

// Bytes returns the buffer's current contents. The returned slice
// aliases the container's storage and must not be retained past the
// next Release call.
func (b *secretBuffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Release zeroes the buffer's backing storage and drops its reference,
// so the underlying array is eligible for garbage collection once any
// other aliases (there should be none) are gone.
func (b *secretBuffer) Release() {
	if b == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	b.data = nil
}
