package argon2

import (
	"fmt"
	"sync"

	"github.com/opd-ai/go-argon2/internal/argon2core"
)

type engineState int

const (
	stateConfigured engineState = iota
	stateUpdating
	stateFinalized
	stateDisposed
)

// Engine is a configurable Argon2 instance: construct it once with a
// secret, salt, and optional associated data, feed it zero or more
// message bytes with Update/UpdateBlock, then call Finalize to produce
// a tag. It follows a Configured -> Updating -> Finalized -> Disposed
// lifecycle. An Engine is safe for sequential
// reuse across multiple Finalize calls (each allocates a fresh memory
// arena). Every method holds the engine's mutex, so calls from several
// goroutines are serialized; the order in which concurrent Update calls
// append their bytes is not defined.
type Engine struct {
	mu sync.Mutex

	config Config

	secret         *secretBuffer
	salt           []byte
	associatedData []byte
	message        messageBuffer

	state engineState
}

// New constructs an Engine with the given secret, salt, and optional
// associated data. secret may be empty but not nil; associatedData may
// be nil or empty; salt must be non-nil and at least minSaltLength bytes. The returned
// Engine starts with DefaultConfig(); callers needing different cost
// parameters call the setters before Finalize.
func New(secret, salt, associatedData []byte) (*Engine, error) {
	if secret == nil {
		return nil, newError(InvalidArgument, "New", "secret must not be nil")
	}
	if salt == nil {
		return nil, newError(InvalidArgument, "New", "salt must not be nil")
	}
	if len(salt) < minSaltLength {
		return nil, newError(InvalidArgument, "New", fmt.Sprintf("salt must be at least %d bytes, got %d", minSaltLength, len(salt)))
	}

	e := &Engine{
		config: DefaultConfig(),
		secret: newSecretBuffer(secret),
		salt:   append([]byte(nil), salt...),
		state:  stateConfigured,
	}
	if len(associatedData) > 0 {
		e.associatedData = append([]byte(nil), associatedData...)
	} else {
		e.associatedData = []byte{}
	}
	return e, nil
}

// SetVariant selects Argon2d or Argon2i addressing for the next Finalize.
func (e *Engine) SetVariant(v Variant) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.Variant = v
}

// SetHashLength sets the desired tag length in bytes, validated at Finalize.
func (e *Engine) SetHashLength(n uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.HashLength = n
}

// SetMemoryCost sets the memory cost in KiB, normalized at Finalize.
func (e *Engine) SetMemoryCost(kib uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.MemoryCost = kib
}

// SetTimeCost sets the number of passes over memory.
func (e *Engine) SetTimeCost(passes uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.TimeCost = passes
}

// SetLanes sets the degree of lane parallelism.
func (e *Engine) SetLanes(n uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.Lanes = n
}

// SetThreads sets the maximum number of goroutines used to fill lanes
// concurrently within a slice. It has no effect on the resulting tag,
// only on wall-clock time.
func (e *Engine) SetThreads(n uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config.Threads = n
}

// Update appends a single byte to the accumulated message.
func (e *Engine) Update(b byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateDisposed {
		return newError(StateError, "Update", "engine has been disposed")
	}
	e.message.writeByte(b)
	if e.state == stateConfigured {
		e.state = stateUpdating
	}
	return nil
}

// UpdateBlock appends buf[offset:offset+length] to the accumulated message.
func (e *Engine) UpdateBlock(buf []byte, offset, length int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateDisposed {
		return newError(StateError, "UpdateBlock", "engine has been disposed")
	}
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return newError(OutOfRange, "UpdateBlock", "slice out of range")
	}
	e.message.write(buf[offset : offset+length])
	if e.state == stateConfigured {
		e.state = stateUpdating
	}
	return nil
}

// Finalize runs the full Argon2 pipeline — pre-hash, first-block
// seeding, the slice-synchronized fill passes, and the cross-lane
// extraction — and writes exactly config.HashLength bytes into
// out[offset:]. The accumulated message is cleared afterward; secret,
// salt, associated data, and config persist for a subsequent Finalize.
func (e *Engine) Finalize(out []byte, offset int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateDisposed {
		return newError(StateError, "Finalize", "engine has been disposed")
	}
	if out == nil {
		return newError(InvalidArgument, "Finalize", "output buffer must not be nil")
	}
	if err := e.config.Validate(); err != nil {
		return err
	}
	if offset < 0 || offset > len(out) {
		return newError(OutOfRange, "Finalize", "offset out of range")
	}
	if len(out)-offset < int(e.config.HashLength) {
		return newError(OutOfRange, "Finalize", "output buffer too small for hashLength")
	}

	memoryCost := e.config.normalizedMemoryCost()
	params := argon2core.NewParams(
		e.config.Variant.addressing(),
		e.config.Lanes,
		e.config.Threads,
		e.config.TimeCost,
		e.config.HashLength,
		memoryCost,
	)

	arena, err := allocateArena(params)
	if err != nil {
		return newError(ResourceError, "Finalize", err.Error())
	}

	h0 := argon2core.PreHash(params, e.message.bytes(), e.salt, e.secret.Bytes(), e.associatedData)
	argon2core.SeedFirstBlocks(arena, params, h0)
	argon2core.FillMemory(arena, params)
	argon2core.Finalize(arena, params, out[offset:offset+int(params.HashLength)])

	arena.Zero()
	e.message.clear()
	e.state = stateFinalized
	return nil
}

// allocateArena isolates the one step in Finalize that can fail for
// reasons outside the algorithm itself — running out of memory for a
// large memoryCost — and turns that failure into a returned
// ResourceError instead of letting it crash the caller.
func allocateArena(p argon2core.Params) (arena *argon2core.Memory, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("arena allocation failed: %v", r)
		}
	}()
	arena = argon2core.NewMemory(p)
	return arena, nil
}

// Reset clears the accumulated message and returns the engine to the
// Configured state, keeping secret, salt, associated data, and config
// intact — the lifecycle transition consistent with the others, short
// of a full Dispose.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateDisposed {
		return newError(StateError, "Reset", "engine has been disposed")
	}
	e.message.clear()
	e.state = stateConfigured
	return nil
}

// Dispose zeroes and releases the secret buffer, the salt and
// associated-data mirrors, and the accumulated message, then marks the
// engine unusable. Dispose is idempotent.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateDisposed {
		return
	}

	e.secret.Release()
	for i := range e.salt {
		e.salt[i] = 0
	}
	e.salt = nil
	for i := range e.associatedData {
		e.associatedData[i] = 0
	}
	e.associatedData = nil
	e.message.clear()

	e.state = stateDisposed
}
