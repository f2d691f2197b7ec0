package effect

import "reflect"

// CacheProvider is a long-lived value cell attached to one retained effect
// instance. Kernels read it before processing and write it back after.
type CacheProvider interface {
	// GetFirst returns the stored value, if any.
	GetFirst() (any, bool)

	// Store replaces the stored value. It fails without touching the cell
	// if v does not have the cell's exact type.
	Store(v any) bool
}

// CacheLookup returns the cache attached to a pipeline element, or nil.
type CacheLookup func(c *Composable) CacheProvider

// CacheSlot holds at most one value of exactly type T.
//
// A value is accepted only if its dynamic type is T itself: for an interface
// T no value is ever accepted, and for a struct T a pointer to T is rejected.
//
// CacheSlot is not safe for concurrent use. The owner serializes executions
// that share a slot.
type CacheSlot[T any] struct {
	v  T
	ok bool
}

// NewCacheSlot returns an empty slot for values of type T.
func NewCacheSlot[T any]() *CacheSlot[T] {
	return &CacheSlot[T]{}
}

// GetFirst returns the stored value, if any.
func (s *CacheSlot[T]) GetFirst() (any, bool) {
	if !s.ok {
		return nil, false
	}
	return s.v, true
}

// Get returns the stored value with its static type.
func (s *CacheSlot[T]) Get() (T, bool) {
	return s.v, s.ok
}

// Store replaces the stored value if v's type is exactly T.
func (s *CacheSlot[T]) Store(v any) bool {
	if v == nil || reflect.TypeOf(v) != reflect.TypeFor[T]() {
		return false
	}
	s.v = v.(T)
	s.ok = true
	return true
}

// Reset empties the slot.
func (s *CacheSlot[T]) Reset() {
	var zero T
	s.v, s.ok = zero, false
}

// CacheValue reads p and returns its value if the value's type is exactly T.
func CacheValue[T any](p CacheProvider) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	v, ok := p.GetFirst()
	if !ok || v == nil || reflect.TypeOf(v) != reflect.TypeFor[T]() {
		return zero, false
	}
	return v.(T), true
}

var _ CacheProvider = (*CacheSlot[int])(nil)
