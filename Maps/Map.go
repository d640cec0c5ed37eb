/*
Package Maps implements generic unordered associations from unique keys to
values, and merge operations over them.

The core operation is Union: combine two mappings with a caller supplied
combining function, see Union for the exact contract. Union works on builtin
maps; UnionInto runs the same fold across any pair of Map implementations, so
mappings held in different backing stores can still be merged. The package
ships backends over the builtin map as well as several third party hashmaps;
ordered backends live in the TreeMap subpackage.

All operations are single-shot pure transforms. None of them retain, share or
mutate their inputs, so concurrent calls are safe as long as each call's
inputs aren't mutated by other goroutines during the call.
*/
package Maps

import "golang.org/x/exp/constraints"

// Map represents an unordered association from unique keys of type K to
// values of type V. Receivers that have a bool as a second return value
// indicate whether the first return value is defined; looking up an absent
// key is an expected condition, not a fault, and yields (zero, false).
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here.
type Map[K comparable, V any] interface {
	//Get the value associated with key. The bool reports whether key exists;
	//when it is false the value is undefined and shouldn't be used.
	Get(key K) (V, bool)
	//Put associates val with key, replacing any value already there.
	Put(key K, val V)
	//Remove key. Returning true if key existed, false otherwise.
	Remove(key K) bool
	//Size of the map.
	Size() uint
	//Range calls f on every key-value pair until f returns false. The Map
	//must not be modified during Range; no pair is visited twice.
	Range(f func(K, V) bool)
}

// Keyed covers the key types every backend in this package can hash. The
// builtin and gods backends accept any comparable key; the haxmap and
// cornelk backends can only hash these.
type Keyed interface {
	constraints.Integer | constraints.Float | ~string
}

// Collect materializes m into a builtin map.
func Collect[K comparable, V any](m Map[K, V]) map[K]V {
	out := make(map[K]V, m.Size())
	m.Range(func(k K, v V) bool {
		out[k] = v
		return true
	})
	return out
}

// Fill puts every entry of src into dst.
func Fill[K comparable, V any](dst Map[K, V], src map[K]V) {
	for k, v := range src {
		dst.Put(k, v)
	}
}
