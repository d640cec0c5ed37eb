package Maps

import "maps"

//Overwrite-style relatives of Union. These don't take a combining function:
//on shared keys the later value simply wins.

// Merge flattens ms into a single new map; later maps overwrite earlier ones
// on shared keys. Nil maps are skipped. Equivalent to folding Union with
// combine picking its first argument, but cheaper.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// Clone returns a shallow copy of m. Unlike maps.Clone, a nil m yields an
// empty non-nil map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return out
}

// Equal reports whether a and b hold exactly the same entries. Nil and empty
// maps are equal.
func Equal[K, V comparable](a, b map[K]V) bool {
	return maps.Equal(a, b)
}

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// MapValues applies f to every value of m, keeping keys.
func MapValues[K comparable, V, W any](m map[K]V, f func(V) W) map[K]W {
	out := make(map[K]W, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}
