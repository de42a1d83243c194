// Package argon2 implements the memory-hard Argon2 key-derivation
// function defined in RFC 9106, in its Argon2d (data-dependent
// addressing) and Argon2i (data-independent addressing) variants.
//
// Most callers want the Sum2d/Sum2i convenience wrappers:
//
//	key, err := argon2.Sum2i(password, salt, nil, nil, argon2.DefaultConfig())
//
// Callers needing to stream message bytes incrementally, or to reuse
// one engine across several tags with the same secret/salt, use Engine
// directly:
//
//	e, err := argon2.New(password, salt, nil)
//	if err != nil { ... }
//	defer e.Dispose()
//	e.SetMemoryCost(64 * 1024)
//	e.SetTimeCost(3)
//	out := make([]byte, 32)
//	if err := e.Finalize(out, 0); err != nil { ... }
//
// Argon2id, the encoded "$argon2...$" string format, constant-time
// secret comparison, and parameter autotuning are out of scope; see the
// package's design notes for the full list of non-goals.
package argon2

// Sum2d derives a tag using Argon2d (data-dependent addressing). cfg's
// Variant field is overridden to Argon2d.
func Sum2d(secret, salt, associatedData, message []byte, cfg Config) ([]byte, error) {
	cfg.Variant = Argon2d
	return sum(secret, salt, associatedData, message, cfg)
}

// Sum2i derives a tag using Argon2i (data-independent addressing). cfg's
// Variant field is overridden to Argon2i.
func Sum2i(secret, salt, associatedData, message []byte, cfg Config) ([]byte, error) {
	cfg.Variant = Argon2i
	return sum(secret, salt, associatedData, message, cfg)
}

func sum(secret, salt, associatedData, message []byte, cfg Config) ([]byte, error) {
	e, err := New(secret, salt, associatedData)
	if err != nil {
		return nil, err
	}
	defer e.Dispose()

	e.SetVariant(cfg.Variant)
	e.SetHashLength(cfg.HashLength)
	e.SetMemoryCost(cfg.MemoryCost)
	e.SetTimeCost(cfg.TimeCost)
	e.SetLanes(cfg.Lanes)
	e.SetThreads(cfg.Threads)

	if len(message) > 0 {
		if err := e.UpdateBlock(message, 0, len(message)); err != nil {
			return nil, err
		}
	}

	out := make([]byte, cfg.HashLength)
	if err := e.Finalize(out, 0); err != nil {
		return nil, err
	}
	return out, nil
}
