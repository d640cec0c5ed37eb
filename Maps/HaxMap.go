package Maps

import "github.com/alphadose/haxmap"

// Hax adapts https://github.com/alphadose/haxmap to the Map interface. The
// backing map is lock-free, so a Hax can be read and written concurrently;
// keys are limited to the types haxmap can hash, see Keyed.
type Hax[K Keyed, V any] struct {
	m *haxmap.Map[K, V]
}

func NewHax[K Keyed, V any]() *Hax[K, V] {
	return &Hax[K, V]{haxmap.New[K, V]()}
}

func (u *Hax[K, V]) Get(key K) (V, bool) {
	return u.m.Get(key)
}

func (u *Hax[K, V]) Put(key K, val V) {
	u.m.Set(key, val)
}

func (u *Hax[K, V]) Remove(key K) bool {
	if _, ok := u.m.Get(key); !ok {
		return false
	}
	u.m.Del(key)
	return true
}

func (u *Hax[K, V]) Size() uint {
	return uint(u.m.Len())
}

func (u *Hax[K, V]) Range(f func(K, V) bool) {
	u.m.ForEach(f)
}
