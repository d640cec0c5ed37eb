// Package Sets implements generic sets of unique members, used mostly for
// key-set algebra over the mappings in the Maps package.
package Sets

type Set[E comparable] interface {
	//Put e into the set. Returning true if e wasn't already a member.
	Put(e E) bool
	//Has reports whether e is a member.
	Has(e E) bool
	//Remove e. Returning true if e was a member.
	Remove(e E) bool
	//Size of the set.
	Size() uint
	//Range calls f on every member until f returns false.
	Range(f func(E) bool)
}
