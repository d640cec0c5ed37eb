package Maps

import "github.com/cornelk/hashmap"

// Cornelk adapts https://github.com/cornelk/hashmap to the Map interface.
// Like Hax the backing map is lock-free and the key types are restricted to
// Keyed.
type Cornelk[K Keyed, V any] struct {
	m *hashmap.Map[K, V]
}

func NewCornelk[K Keyed, V any]() *Cornelk[K, V] {
	return &Cornelk[K, V]{hashmap.New[K, V]()}
}

func (u *Cornelk[K, V]) Get(key K) (V, bool) {
	return u.m.Get(key)
}

func (u *Cornelk[K, V]) Put(key K, val V) {
	u.m.Set(key, val)
}

func (u *Cornelk[K, V]) Remove(key K) bool {
	return u.m.Del(key)
}

func (u *Cornelk[K, V]) Size() uint {
	return uint(u.m.Len())
}

func (u *Cornelk[K, V]) Range(f func(K, V) bool) {
	u.m.Range(f)
}
