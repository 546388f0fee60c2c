// Package hashmap provides a hash-keyed map that remembers insertion order,
// for keys that are not comparable (slices, encodings) or are cheaper to
// compare by hash.
package hashmap

import (
	"github.com/segmentio/fasthash/fnv1a"
)

type HashMap[K, V any] struct {
	m    map[uint64]V
	keys []K
	hash func(K) uint64
}

func New[K, V any](hash func(K) uint64) *HashMap[K, V] {
	return &HashMap[K, V]{m: make(map[uint64]V), hash: hash}
}

// NewStrings returns a map over string keys hashed with fnv1a.
func NewStrings[V any]() *HashMap[string, V] {
	return New[string, V](fnv1a.HashString64)
}

func (h *HashMap[K, V]) Set(k K, v V) {
	if _, ok := h.Get(k); !ok {
		h.keys = append(h.keys, k)
	}
	h.m[h.hash(k)] = v
}

func (h *HashMap[K, V]) Get(k K) (v V, ok bool) {
	v, ok = h.m[h.hash(k)]
	return
}

func (h *HashMap[K, V]) Len() int {
	return len(h.keys)
}

// Keys returns the keys in insertion order.
func (h *HashMap[K, V]) Keys() []K {
	return h.keys
}

func (h *HashMap[K, V]) Clear() {
	for k := range h.m {
		delete(h.m, k)
	}
	h.keys = nil
}
