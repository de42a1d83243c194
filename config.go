package argon2

import "github.com/opd-ai/go-argon2/internal/argon2core"

// Variant selects the Argon2 addressing rule. Argon2id is out of
// scope for this engine.
type Variant int

const (
	// Argon2d uses data-dependent addressing: the reference block is
	// chosen from the content of the block being filled. Faster, but
	// the memory access pattern leaks information about the secret —
	// appropriate for non-password key derivation, not for hashing
	// secrets an attacker can time.
	Argon2d Variant = iota
	// Argon2i uses data-independent addressing: the reference block is
	// chosen from a synthetic counter block, never from secret-derived
	// content. Slower, but its access pattern reveals nothing about the
	// secret — the variant to use for password hashing.
	Argon2i
)

func (v Variant) String() string {
	switch v {
	case Argon2d:
		return "Argon2d"
	case Argon2i:
		return "Argon2i"
	default:
		return "Argon2(unknown)"
	}
}

func (v Variant) addressing() argon2core.Addressing {
	switch v {
	case Argon2i:
		return argon2core.Argon2i
	default:
		return argon2core.Argon2d
	}
}

// minSaltLength is the smallest salt this engine permits.
const minSaltLength = 8

// Config holds the cost parameters and variant selection for an Engine.
// The zero value is not valid; use DefaultConfig as a starting point.
type Config struct {
	Variant    Variant
	HashLength uint32
	MemoryCost uint32 // KiB; silently raised to the lane/sync-point minimum
	TimeCost   uint32 // passes over memory
	Lanes      uint32
	Threads    uint32
}

// DefaultConfig returns a moderate, RFC-9106-friendly starting
// configuration: Argon2i, 32-byte tag, 64 MiB, 3 passes, 4 lanes, 4
// threads. Callers reproducing a specific published test vector
// override every field explicitly.
func DefaultConfig() Config {
	return Config{
		Variant:    Argon2i,
		HashLength: 32,
		MemoryCost: 64 * 1024,
		TimeCost:   3,
		Lanes:      4,
		Threads:    4,
	}
}

// Validate checks the cost parameters for obvious invalidity,
// returning an *Error with OutOfRange on any violation. It does not
// mutate the receiver — memory-cost normalization happens once, inside
// Finalize, so repeated calls to Validate stay side-effect free.
func (c Config) Validate() error {
	if c.Lanes == 0 {
		return newError(OutOfRange, "Validate", "lanes must be > 0")
	}
	if c.Threads == 0 {
		return newError(OutOfRange, "Validate", "threads must be > 0")
	}
	if c.TimeCost == 0 {
		return newError(OutOfRange, "Validate", "timeCost must be > 0")
	}
	if c.MemoryCost == 0 {
		return newError(OutOfRange, "Validate", "memoryCost must be > 0")
	}
	if c.HashLength < 4 {
		return newError(OutOfRange, "Validate", "hashLength must be >= 4")
	}
	return nil
}

// normalizedMemoryCost returns c.MemoryCost raised, if necessary, to
// 2*SyncPoints*Lanes, the smallest memory size the lane/sync-point
// geometry can partition evenly.
func (c Config) normalizedMemoryCost() uint32 {
	return argon2core.NormalizeMemoryCost(c.MemoryCost, c.Lanes)
}
