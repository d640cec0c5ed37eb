// Package TreeMap implements ordered Map backends and a sorted merge.
// Backends here additionally expose Ascend, which visits entries in
// increasing key order; Range is Ascend for them, so merges over ordered
// backends see keys in order.
package TreeMap

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Entry is a single key-value pair, used both as the tree's element type and
// as the result element of SortedUnion.
type Entry[K constraints.Ordered, V any] struct {
	Key K
	Val V
}

// BTree is an ordered Map backend on https://github.com/google/btree.
// Not safe for concurrent use.
type BTree[K constraints.Ordered, V any] struct {
	t *btree.BTreeG[Entry[K, V]]
}

func NewBTree[K constraints.Ordered, V any]() *BTree[K, V] {
	return &BTree[K, V]{btree.NewG(32, func(a, b Entry[K, V]) bool {
		return a.Key < b.Key
	})}
}

func (u *BTree[K, V]) Get(key K) (V, bool) {
	e, ok := u.t.Get(Entry[K, V]{Key: key})
	return e.Val, ok
}

func (u *BTree[K, V]) Put(key K, val V) {
	u.t.ReplaceOrInsert(Entry[K, V]{key, val})
}

func (u *BTree[K, V]) Remove(key K) bool {
	_, ok := u.t.Delete(Entry[K, V]{Key: key})
	return ok
}

func (u *BTree[K, V]) Size() uint {
	return uint(u.t.Len())
}

func (u *BTree[K, V]) Range(f func(K, V) bool) {
	u.Ascend(f)
}

// Ascend calls f on every entry in increasing key order until f returns
// false. The tree must not be modified during Ascend.
func (u *BTree[K, V]) Ascend(f func(K, V) bool) {
	u.t.Ascend(func(e Entry[K, V]) bool {
		return f(e.Key, e.Val)
	})
}

// SortedUnion merges a and b with the same contract as Maps.Union and
// returns the merged entries in increasing key order: one-sided keys keep
// their value, shared keys get combine(aVal, bVal) in that argument order.
// Neither input is modified; nil inputs act as empty mappings.
func SortedUnion[K constraints.Ordered, V any](a, b map[K]V, combine func(V, V) V) []Entry[K, V] {
	t := NewBTree[K, V]()
	for k, v := range b {
		t.Put(k, v)
	}
	for k, v := range a {
		if w, ok := t.Get(k); ok { //keys of a are unique, so w is always b's value
			t.Put(k, combine(v, w))
		} else {
			t.Put(k, v)
		}
	}
	out := make([]Entry[K, V], 0, t.Size())
	t.Ascend(func(k K, v V) bool {
		out = append(out, Entry[K, V]{k, v})
		return true
	})
	return out
}
