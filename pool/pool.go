// Package pool implements size-bucketed reuse of contiguous element regions.
package pool

import (
	"fmt"
	"math/bits"
	"reflect"
	"sync"

	"github.com/ugparu/gobuf"
	"github.com/ugparu/gobuf/utils/logger"
)

const (
	minBucketExp = 4  // Smallest bucketed region is 16 elements.
	maxBucketExp = 20 // 1MB elements.
	bucketCount  = maxBucketExp - minBucketExp + 1

	// MaxPooled is the largest region size the pool retains. Regions above it
	// are allocated exactly and handed to the GC on return.
	MaxPooled = 1 << maxBucketExp
)

type bucketed[T any] struct {
	buckets [bucketCount]sync.Pool
	name    string
}

// New creates an empty pool whose buckets hold power-of-two sized regions
// from 16 up to MaxPooled elements.
func New[T any]() gobuf.Pool[T] {
	var zero T
	return &bucketed[T]{
		name: fmt.Sprintf("pool[%T]", zero),
	}
}

var sharedPools sync.Map

// Shared returns the process-wide pool for element type T. All writers
// constructed without an explicit pool rent from it.
func Shared[T any]() gobuf.Pool[T] {
	key := reflect.TypeOf((*T)(nil))
	if p, ok := sharedPools.Load(key); ok {
		return p.(gobuf.Pool[T])
	}
	p, _ := sharedPools.LoadOrStore(key, New[T]())
	return p.(gobuf.Pool[T])
}

func bucketIndex(size int) int {
	exp := bits.Len(uint(size - 1))
	if exp < minBucketExp {
		exp = minBucketExp
	}
	return exp - minBucketExp
}

func (p *bucketed[T]) String() string {
	return p.name
}

// Rent returns a region of at least minSize elements. Bucketed sizes are
// rounded up to the next power of two; larger sizes are allocated exactly.
func (p *bucketed[T]) Rent(minSize int) []T {
	if minSize > MaxPooled {
		logger.Debugf(p, "exact alloc of %d elements", minSize)
		return make([]T, minSize)
	}
	if minSize < 0 {
		// Let make report the invalid length.
		return make([]T, minSize)
	}
	if minSize < 1 {
		minSize = 1
	}
	idx := bucketIndex(minSize)
	if region, ok := p.buckets[idx].Get().([]T); ok {
		return region
	}
	return make([]T, 1<<(idx+minBucketExp))
}

// Resize returns a region of at least newMinSize elements holding region's
// content in its prefix, retiring region back to the pool.
func (p *bucketed[T]) Resize(region []T, newMinSize int) []T {
	if len(region) >= newMinSize {
		return region
	}
	grown := p.Rent(newMinSize)
	copy(grown, region)
	p.Return(region)
	return grown
}

// Return releases a region for reuse. Regions that did not come from a
// bucket are dropped so the GC can collect them.
func (p *bucketed[T]) Return(region []T) {
	size := cap(region)
	if size < 1<<minBucketExp || size > MaxPooled || size&(size-1) != 0 {
		return
	}
	p.buckets[bucketIndex(size)].Put(region[:size])
}
