package Sets

import "maps"

// HashSet is the map-backed Set. Not safe for concurrent writes.
type HashSet[E comparable] map[E]struct{}

func New[E comparable](members ...E) HashSet[E] {
	s := make(HashSet[E], len(members))
	for _, e := range members {
		s[e] = struct{}{}
	}
	return s
}

// FromKeys returns the key set of m.
func FromKeys[E comparable, V any](m map[E]V) HashSet[E] {
	s := make(HashSet[E], len(m))
	for k := range m {
		s[k] = struct{}{}
	}
	return s
}

func (u HashSet[E]) Put(e E) bool {
	if _, ok := u[e]; ok {
		return false
	}
	u[e] = struct{}{}
	return true
}

func (u HashSet[E]) Has(e E) bool {
	_, ok := u[e]
	return ok
}

func (u HashSet[E]) Remove(e E) bool {
	if _, ok := u[e]; !ok {
		return false
	}
	delete(u, e)
	return true
}

func (u HashSet[E]) Size() uint {
	return uint(len(u))
}

func (u HashSet[E]) Range(f func(E) bool) {
	for e := range u {
		if !f(e) {
			return
		}
	}
}

// Eq reports whether u and other hold exactly the same members. Nil and
// empty sets are equal.
func (u HashSet[E]) Eq(other HashSet[E]) bool {
	return maps.Equal(u, other)
}

// Union returns a new set with every member of a and b. Neither input is
// modified.
func Union[E comparable](a, b HashSet[E]) HashSet[E] {
	out := make(HashSet[E], len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// Intersect returns a new set with the members present in both a and b.
func Intersect[E comparable](a, b HashSet[E]) HashSet[E] {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(HashSet[E], len(a))
	for e := range a {
		if _, ok := b[e]; ok {
			out[e] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the members of a that aren't in b.
func Diff[E comparable](a, b HashSet[E]) HashSet[E] {
	out := make(HashSet[E], len(a))
	for e := range a {
		if _, ok := b[e]; !ok {
			out[e] = struct{}{}
		}
	}
	return out
}
