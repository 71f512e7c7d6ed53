// Package pool reuses scratch buffers across JSON encoding and usage
// rendering so repeated parses do not churn the garbage collector.
package pool

import (
	"bytes"
	"sync"
)

// maxRetained is the largest buffer capacity returned to a pool; bigger
// buffers are left to the collector.
const maxRetained = 64 << 10

// Pool is a typed wrapper over sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called before every Get returns
	keep  func(*T) bool
}

// NewPool creates a pool backed by factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool that runs reset on objects before
// handing them out.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Keep installs a filter deciding whether Put retains an object.
func (p *Pool[T]) Keep(keep func(*T) bool) *Pool[T] {
	p.keep = keep
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj for reuse. nil and filtered objects are dropped.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.keep != nil && !p.keep(obj) {
		return
	}
	p.pool.Put(obj)
}

var buffers = NewPoolWithReset(
	func() *bytes.Buffer { return new(bytes.Buffer) },
	func(b *bytes.Buffer) { b.Reset() },
).Keep(func(b *bytes.Buffer) bool { return b.Cap() <= maxRetained })

// GetBuffer returns an empty buffer.
func GetBuffer() *bytes.Buffer { return buffers.Get() }

// PutBuffer recycles b. Its contents must not be used afterwards.
func PutBuffer(b *bytes.Buffer) { buffers.Put(b) }
