// Package buffer implements the pooled append-only buffer writer.
package buffer

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/ugparu/gobuf"
	"github.com/ugparu/gobuf/pool"
	"github.com/ugparu/gobuf/utils"
	"github.com/ugparu/gobuf/utils/logger"
)

const (
	// DefaultCapacity is the region size rented when no capacity is given.
	DefaultCapacity = 256

	// growThreshold is the total size above which growth requests are rounded
	// up to the next power of two. The pool allocates regions above its
	// bucketed range exactly, so without the rounding every small write past
	// the threshold would trigger another resize.
	growThreshold = 1 << 20
)

type writer[T any] struct {
	pool    gobuf.Pool[T]
	region  []T // nil once released
	written int
}

// New creates a writer renting from the shared pool with the default
// initial capacity.
func New[T any]() gobuf.Writer[T] {
	return NewPool[T](pool.Shared[T](), DefaultCapacity)
}

// NewSize creates a writer renting from the shared pool with at least
// capacity elements.
func NewSize[T any](capacity int) gobuf.Writer[T] {
	return NewPool[T](pool.Shared[T](), capacity)
}

// NewPool creates a writer renting from p. The initial region is rented
// eagerly; capacity is validated by the pool on that first rent.
func NewPool[T any](p gobuf.Pool[T], capacity int) gobuf.Writer[T] {
	return &writer[T]{
		pool:    p,
		region:  p.Rent(capacity),
		written: 0,
	}
}

// With rents a writer from p, passes it to fn and releases it on every exit
// path, including panics.
func With[T any](p gobuf.Pool[T], capacity int, fn func(gobuf.Writer[T]) error) error {
	wr := NewPool[T](p, capacity)
	defer wr.Release()
	return fn(wr)
}

// grow guarantees at least sizeHint elements of free capacity. The caller
// has already rejected negative hints and released writers.
func (w *writer[T]) grow(sizeHint int) {
	if sizeHint == 0 {
		sizeHint = 1
	}
	if len(w.region)-w.written >= sizeHint {
		return
	}
	minimum := uint64(w.written) + uint64(sizeHint)
	if minimum > growThreshold {
		minimum = 1 << bits.Len64(minimum-1)
	}
	logger.Tracef(w, "growing region to %d elements", minimum)
	w.region = w.pool.Resize(w.region, int(minimum))
}

// Written returns a read-only view of the committed prefix. The view is
// capped so it cannot be appended into the free region.
func (w *writer[T]) Written() ([]T, error) {
	if w.region == nil {
		return nil, &utils.DisposedError{}
	}
	return w.region[:w.written:w.written], nil
}

// Writable grows the region if needed and returns the free suffix. The
// returned view holds at least sizeHint elements; a hint of zero still
// grants room for one element.
func (w *writer[T]) Writable(sizeHint int) ([]T, error) {
	if sizeHint < 0 {
		return nil, &utils.NegativeSizeHintError{}
	}
	if w.region == nil {
		return nil, &utils.DisposedError{}
	}
	w.grow(sizeHint)
	return w.region[w.written:], nil
}

// Advance commits count elements previously placed into the writable view.
func (w *writer[T]) Advance(count int) error {
	if count < 0 {
		return &utils.NegativeCountError{}
	}
	if w.region == nil {
		return &utils.DisposedError{}
	}
	if count > len(w.region)-w.written {
		return &utils.AdvanceTooFarError{}
	}
	w.written += count
	return nil
}

// Len returns the number of committed elements.
func (w *writer[T]) Len() (int, error) {
	if w.region == nil {
		return 0, &utils.DisposedError{}
	}
	return w.written, nil
}

// Cap returns the total capacity of the backing region.
func (w *writer[T]) Cap() (int, error) {
	if w.region == nil {
		return 0, &utils.DisposedError{}
	}
	return len(w.region), nil
}

// Free returns the remaining free capacity.
func (w *writer[T]) Free() (int, error) {
	if w.region == nil {
		return 0, &utils.DisposedError{}
	}
	return len(w.region) - w.written, nil
}

// Clear zeroes the committed prefix and resets the cursor. Capacity is
// retained. Zeroing matters when T holds references that would otherwise
// stay reachable through the pool.
func (w *writer[T]) Clear() error {
	if w.region == nil {
		return &utils.DisposedError{}
	}
	clear(w.region[:w.written])
	w.written = 0
	return nil
}

// Release returns the backing region to the pool. The first call releases;
// every later call is a no-op. Views obtained before Release must not be
// used afterwards, the region may already back another writer.
func (w *writer[T]) Release() {
	if w.region == nil {
		return
	}
	w.pool.Return(w.region)
	w.region = nil
	w.written = 0
}

// WriteTo copies the committed prefix to dst. Only byte writers support it.
func (w *writer[T]) WriteTo(dst io.Writer) (int64, error) {
	if dst == nil {
		return 0, &utils.NilSinkError{}
	}
	if w.region == nil {
		return 0, &utils.DisposedError{}
	}
	data, ok := any(w.region[:w.written]).([]byte)
	if !ok {
		return 0, &utils.UnsupportedElementTypeError{}
	}
	n, err := dst.Write(data)
	return int64(n), err
}

// String renders the committed content as text for byte and rune writers
// and a type-tagged summary for everything else.
func (w *writer[T]) String() string {
	var zero T
	if w.region == nil {
		return fmt.Sprintf("buffer.Writer[%T]{released}", zero)
	}
	switch data := any(w.region[:w.written]).(type) {
	case []byte:
		return string(data)
	case []rune:
		return string(data)
	default:
		return fmt.Sprintf("buffer.Writer[%T]{written: %d}", zero, w.written)
	}
}
