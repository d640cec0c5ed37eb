package TreeMap

import (
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

type llrbEntry[K constraints.Ordered, V any] struct {
	key K
	val V
}

func (u *llrbEntry[K, V]) Less(than llrb.Item) bool {
	e, ok := than.(*llrbEntry[K, V])
	if !ok { //only the llrb.Inf sentinels reach here, during traversal
		return than == llrb.Inf(1)
	}
	return u.key < e.key
}

// LLRB is an ordered Map backend on the left-leaning red-black tree from
// https://github.com/petar/GoLLRB. GoLLRB predates generics, so entries
// cross its boundary as llrb.Item; the adapter owns the assertions. Not safe
// for concurrent use.
type LLRB[K constraints.Ordered, V any] struct {
	t *llrb.LLRB
}

func NewLLRB[K constraints.Ordered, V any]() *LLRB[K, V] {
	return &LLRB[K, V]{llrb.New()}
}

func (u *LLRB[K, V]) Get(key K) (V, bool) {
	if e := u.t.Get(&llrbEntry[K, V]{key: key}); e != nil {
		return e.(*llrbEntry[K, V]).val, true
	}
	var zero V
	return zero, false
}

func (u *LLRB[K, V]) Put(key K, val V) {
	u.t.ReplaceOrInsert(&llrbEntry[K, V]{key, val})
}

func (u *LLRB[K, V]) Remove(key K) bool {
	return u.t.Delete(&llrbEntry[K, V]{key: key}) != nil
}

func (u *LLRB[K, V]) Size() uint {
	return uint(u.t.Len())
}

func (u *LLRB[K, V]) Range(f func(K, V) bool) {
	u.Ascend(f)
}

// Ascend calls f on every entry in increasing key order until f returns
// false. The tree must not be modified during Ascend.
func (u *LLRB[K, V]) Ascend(f func(K, V) bool) {
	u.t.AscendGreaterOrEqual(llrb.Inf(-1), func(i llrb.Item) bool {
		e := i.(*llrbEntry[K, V])
		return f(e.key, e.val)
	})
}
