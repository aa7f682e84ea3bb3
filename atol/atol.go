// Package atol provides ATol, the strictly-positive absolute tolerance used
// throughout ommxcore for bound containment, feasibility classification, and
// approximate polynomial equality.
//
// The process-wide default follows the "last-writer-wins with a log
// announcement" policy spec.md §9 calls for (as distinct from the
// set-once policy used elsewhere in the wider OMMX artifact layer, which is
// out of scope for this module). It is seeded once from the
// OMMX_DEFAULT_ATOL environment variable, falling back to 1e-6 on any
// missing or invalid value.
package atol

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/Jij-Inc/ommx-sub001/ommxlog"
)

// BuiltinDefault is the fallback value used when OMMX_DEFAULT_ATOL is unset
// or invalid.
const BuiltinDefault = 1e-6

// EnvVar is the environment variable consulted at process start.
const EnvVar = "OMMX_DEFAULT_ATOL"

// ErrInvalidATol is the sentinel wrapped by every error New/Set returns.
var ErrInvalidATol = errors.New("atol: must be positive and finite")

// ATol is a strictly positive, finite real used as an absolute tolerance.
type ATol struct {
	v float64
}

// New validates x and wraps it as an ATol. It fails if x is <= 0, NaN, or
// infinite.
func New(x float64) (ATol, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return ATol{}, fmt.Errorf("%w: got %g", ErrInvalidATol, x)
	}
	return ATol{v: x}, nil
}

// MustNew is New but panics on error; reserved for compile-time-known
// tolerances.
func MustNew(x float64) ATol {
	a, err := New(x)
	if err != nil {
		panic(err)
	}
	return a
}

// Float64 returns the underlying value.
func (a ATol) Float64() float64 { return a.v }

var (
	mu      sync.RWMutex
	current ATol
	once    sync.Once
)

func ensureInitialized() {
	once.Do(func() {
		current = ATol{v: BuiltinDefault}
		raw, ok := os.LookupEnv(EnvVar)
		if !ok {
			return
		}
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			ommxlog.Warn("invalid OMMX_DEFAULT_ATOL, keeping built-in default",
				"value", raw, "default", BuiltinDefault, "error", err)
			return
		}
		parsed, err := New(x)
		if err != nil {
			ommxlog.Warn("invalid OMMX_DEFAULT_ATOL, keeping built-in default",
				"value", raw, "default", BuiltinDefault, "error", err)
			return
		}
		current = parsed
	})
}

// Default returns the current process-wide default ATol, initializing it
// from OMMX_DEFAULT_ATOL on first use.
func Default() ATol {
	ensureInitialized()
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault overrides the process-wide default ATol. It is last-writer-wins:
// concurrent callers racing SetDefault will leave whichever call acquired the
// write lock last, and every successful call is announced via ommxlog.
func SetDefault(x float64) error {
	ensureInitialized()
	next, err := New(x)
	if err != nil {
		return err
	}
	mu.Lock()
	prev := current
	current = next
	mu.Unlock()
	ommxlog.Info("default ATol changed", "previous", prev.Float64(), "next", next.Float64())
	return nil
}
