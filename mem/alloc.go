// Package mem implements the single global allocation strategy used by
// the owning containers. It tracks live allocations by byte count and
// can be given a limit, which gives growth paths a recoverable failure
// mode instead of an aborting one.
package mem

import (
	"log/slog"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// ErrAllocLimit reports an allocation rejected because it would exceed
// the configured limit. Nothing is allocated or accounted when this is
// returned.
var ErrAllocLimit = errors.New("mem: allocation limit exceeded")

// Accounting is deliberately unsynchronized: the containers follow a
// single-owner, single-thread model and so does their allocator.
var (
	totalAllocated int
	limit          int
	logger         *slog.Logger
)

// SetLimit caps the total number of live accounted bytes. A limit of 0
// means unlimited. Tests use this to inject allocation failures.
func SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	limit = n
}

// Limit reports the configured byte limit, 0 meaning unlimited.
func Limit() int {
	return limit
}

// TotalAllocated reports the live accounted bytes.
func TotalAllocated() int {
	return totalAllocated
}

// Reset clears accounting and the limit. Intended for tests.
func Reset() {
	totalAllocated = 0
	limit = 0
}

// SetLogger installs an optional allocation trace logger. A nil logger
// disables tracing.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Alloc allocates a slice of count elements of type T, accounting the
// bytes against the limit. It returns ErrAllocLimit when the request
// would exceed the limit, and converts a runtime allocation failure
// into an error rather than letting it escape. A zero count allocates
// nothing and returns a nil slice.
func Alloc[T any](count int) (buf []T, err error) {
	if count <= 0 {
		return nil, nil
	}
	var zero T
	size := count * int(unsafe.Sizeof(zero))
	if limit > 0 && totalAllocated+size > limit {
		if logger != nil {
			logger.Debug("mem: allocation rejected",
				"bytes", size, "live", totalAllocated, "limit", limit)
		}
		return nil, errors.Wrapf(ErrAllocLimit,
			"%d bytes requested, %d live of %d", size, totalAllocated, limit)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Newf("mem: allocation of %d bytes failed: %v", size, r)
		}
	}()
	buf = make([]T, count)
	totalAllocated += size
	if logger != nil {
		logger.Debug("mem: allocated", "bytes", size, "live", totalAllocated)
	}
	return buf, nil
}

// Free returns the accounted bytes of a buffer obtained from Alloc.
// The slice must not be used afterwards. Freeing nil is a no-op.
func Free[T any](buf []T) {
	if buf == nil {
		return
	}
	var zero T
	size := cap(buf) * int(unsafe.Sizeof(zero))
	totalAllocated -= size
	if totalAllocated < 0 {
		totalAllocated = 0
	}
	if logger != nil {
		logger.Debug("mem: freed", "bytes", size, "live", totalAllocated)
	}
}
