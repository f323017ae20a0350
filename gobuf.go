// Package gobuf provides append-only buffer writers backed by reusable,
// pool-rented element storage.
package gobuf

import "io"

// Pool lends and reclaims contiguous backing regions shared across many writers.
type Pool[T any] interface {
	Rent(minSize int) []T                  // Returns a region of at least minSize elements.
	Resize(region []T, newMinSize int) []T // Grows a region preserving its content and retires the old one.
	Return(region []T)                     // Releases a region for reuse. Call exactly once per region.
}

// Writer is an append-only sink over a single pool-rented backing region.
// Callers request writable capacity, fill it directly and then commit the
// written count with Advance. Writers are not safe for concurrent use.
type Writer[T any] interface {
	Written() ([]T, error)                // Read-only view of the committed prefix.
	Writable(sizeHint int) ([]T, error)   // Free-region view holding at least sizeHint elements.
	Advance(count int) error              // Commits count elements of the free region.
	Len() (int, error)                    // Number of committed elements.
	Cap() (int, error)                    // Total capacity of the backing region.
	Free() (int, error)                   // Remaining free capacity.
	Clear() error                         // Zeroes committed content and resets the cursor.
	Release()                             // Returns the backing region to the pool. Second call is a no-op.
	WriteTo(dst io.Writer) (int64, error) // Copies the committed prefix to dst. Byte writers only.
	String() string                       // Diagnostic rendering.
}
