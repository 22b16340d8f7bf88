package bramble

import (
	"reflect"
	"sync"
)

type memoryKey struct {
	id  NodeID
	typ reflect.Type
}

// Memory persists per-node values across frames. Each node can hold one
// value per Go type. It is safe for concurrent use and is never touched by
// the layout pass itself.
type Memory struct {
	mu     sync.RWMutex
	values map[memoryKey]any
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{values: make(map[memoryKey]any)}
}

func keyFor[T any](id NodeID) memoryKey {
	return memoryKey{id: id, typ: reflect.TypeFor[T]()}
}

// StoreMemory sets the T value remembered for id.
func StoreMemory[T any](m *Memory, id NodeID, v T) {
	m.mu.Lock()
	m.values[keyFor[T](id)] = v
	m.mu.Unlock()
}

// LoadMemory returns the T value remembered for id.
func LoadMemory[T any](m *Memory, id NodeID) (T, bool) {
	m.mu.RLock()
	v, ok := m.values[keyFor[T](id)]
	m.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	t, _ := v.(T) // a nil interface value has no dynamic type
	return t, true
}

// LoadOrStoreMemory returns the existing T value for id if present.
// Otherwise it stores and returns init(). loaded reports which happened.
func LoadOrStoreMemory[T any](m *Memory, id NodeID, init func() T) (v T, loaded bool) {
	k := keyFor[T](id)
	m.mu.RLock()
	old, ok := m.values[k]
	m.mu.RUnlock()
	if ok {
		t, _ := old.(T)
		return t, true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.values[k]; ok {
		t, _ := old.(T)
		return t, true
	}
	v = init()
	m.values[k] = v
	return v, false
}

// DeleteMemory forgets the T value for id.
func DeleteMemory[T any](m *Memory, id NodeID) {
	m.mu.Lock()
	delete(m.values, keyFor[T](id))
	m.mu.Unlock()
}

// Forget drops every value remembered for id, whatever its type.
func (m *Memory) Forget(id NodeID) {
	m.mu.Lock()
	for k := range m.values {
		if k.id == id {
			delete(m.values, k)
		}
	}
	m.mu.Unlock()
}

// Len returns the number of stored values.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// Clear drops everything.
func (m *Memory) Clear() {
	m.mu.Lock()
	clear(m.values)
	m.mu.Unlock()
}
