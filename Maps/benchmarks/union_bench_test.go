// Side by side comparisons of the union fold across the shipped backends.
package benchmarks

import (
	"testing"

	"github.com/zmux/go-assoc/Maps"
	"github.com/zmux/go-assoc/Maps/TreeMap"
)

const benchmarkItemCount = 1 << 13

var benchA, benchB = func() (map[int]int, map[int]int) {
	a, b := make(map[int]int, benchmarkItemCount), make(map[int]int, benchmarkItemCount)
	for i := 0; i < benchmarkItemCount; i++ {
		a[i] = i
		b[i+benchmarkItemCount/2] = -i //half the keys overlap
	}
	return a, b
}()

func add(x, y int) int { return x + y }

func BenchmarkUnion_Builtin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Maps.Union(benchA, benchB, add)
	}
}

func unionInto(b *testing.B, mk func() Maps.Map[int, int]) {
	b.Helper()
	ma, mb := mk(), mk()
	Maps.Fill(ma, benchA)
	Maps.Fill(mb, benchB)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Maps.UnionInto(mk(), ma, mb, add)
	}
}

func BenchmarkUnionInto_Builtin(b *testing.B) {
	unionInto(b, func() Maps.Map[int, int] { return Maps.NewBuiltin[int, int](0) })
}

func BenchmarkUnionInto_Hax(b *testing.B) {
	unionInto(b, func() Maps.Map[int, int] { return Maps.NewHax[int, int]() })
}

func BenchmarkUnionInto_Cornelk(b *testing.B) {
	unionInto(b, func() Maps.Map[int, int] { return Maps.NewCornelk[int, int]() })
}

func BenchmarkUnionInto_Gods(b *testing.B) {
	unionInto(b, func() Maps.Map[int, int] { return Maps.NewGods[int, int]() })
}

func BenchmarkUnionInto_BTree(b *testing.B) {
	unionInto(b, func() Maps.Map[int, int] { return TreeMap.NewBTree[int, int]() })
}

func BenchmarkUnionInto_LLRB(b *testing.B) {
	unionInto(b, func() Maps.Map[int, int] { return TreeMap.NewLLRB[int, int]() })
}

func BenchmarkSortedUnion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TreeMap.SortedUnion(benchA, benchB, add)
	}
}
