package Maps

import "golang.org/x/exp/constraints"

// Number covers the value types UnionSum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Union returns a new map whose key set is the union of the key sets of a and
// b. A key present in only one input keeps its value unchanged; a key present
// in both maps to combine(aVal, bVal), in that argument order. combine is
// never called for one-sided keys.
//
// Neither input is modified and nil inputs act as empty mappings; the result
// is always non-nil. The fold is linear in len(a)+len(b): the result is
// seeded with b's entries, then a's entries are folded over it. combine is
// assumed total; if it panics, the panic propagates to the caller.
func Union[K comparable, V any](a, b map[K]V, combine func(V, V) V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range a {
		if w, ok := out[k]; ok { //seeded from b, so w is b's value for k
			out[k] = combine(v, w)
		} else {
			out[k] = v
		}
	}
	return out
}

// UnionSum is Union with addition bound as the combining function.
func UnionSum[K comparable, V Number](a, b map[K]V) map[K]V {
	return Union(a, b, func(x, y V) V { return x + y })
}

// UnionCount merges two integer tallies, adding the counts of shared keys.
func UnionCount[K comparable](a, b map[K]int) map[K]int {
	return UnionSum(a, b)
}

// UnionInto runs the same fold as Union across Map implementations, writing
// the merged entries into dst. Any mix of backends works. dst should be
// empty and must not alias a or b; a and b are only read.
func UnionInto[K comparable, V any](dst, a, b Map[K, V], combine func(V, V) V) {
	b.Range(func(k K, v V) bool {
		dst.Put(k, v)
		return true
	})
	a.Range(func(k K, v V) bool {
		if w, ok := b.Get(k); ok {
			dst.Put(k, combine(v, w))
		} else {
			dst.Put(k, v)
		}
		return true
	})
}
