package Maps

import "github.com/emirpasic/gods/maps/hashmap"

// Gods adapts the interface{}-based hashmap from
// https://github.com/emirpasic/gods to the Map interface. The adapter owns
// the type assertions so callers keep a typed surface; any comparable key
// works. Not safe for concurrent use.
type Gods[K comparable, V any] struct {
	m *hashmap.Map
}

func NewGods[K comparable, V any]() *Gods[K, V] {
	return &Gods[K, V]{hashmap.New()}
}

func (u *Gods[K, V]) Get(key K) (V, bool) {
	v, ok := u.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (u *Gods[K, V]) Put(key K, val V) {
	u.m.Put(key, val)
}

func (u *Gods[K, V]) Remove(key K) bool {
	if _, ok := u.m.Get(key); !ok {
		return false
	}
	u.m.Remove(key)
	return true
}

func (u *Gods[K, V]) Size() uint {
	return uint(u.m.Size())
}

func (u *Gods[K, V]) Range(f func(K, V) bool) {
	for _, k := range u.m.Keys() {
		v, _ := u.m.Get(k)
		if !f(k.(K), v.(V)) {
			return
		}
	}
}
