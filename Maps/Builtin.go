package Maps

// Builtin adapts a builtin map to the Map interface. It is the reference
// backend: any comparable key works and all receivers are plain map
// operations. Like the underlying map, it isn't safe for concurrent writes.
type Builtin[K comparable, V any] map[K]V

func NewBuiltin[K comparable, V any](sizeHint uint) Builtin[K, V] {
	return make(Builtin[K, V], sizeHint)
}

func (u Builtin[K, V]) Get(key K) (V, bool) {
	v, ok := u[key]
	return v, ok
}

func (u Builtin[K, V]) Put(key K, val V) {
	u[key] = val
}

func (u Builtin[K, V]) Remove(key K) bool {
	_, ok := u[key]
	delete(u, key)
	return ok
}

func (u Builtin[K, V]) Size() uint {
	return uint(len(u))
}

func (u Builtin[K, V]) Range(f func(K, V) bool) {
	for k, v := range u {
		if !f(k, v) {
			return
		}
	}
}
