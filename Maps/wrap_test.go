package Maps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func backends() map[string]func() Map[string, int] {
	return map[string]func() Map[string, int]{
		"builtin": func() Map[string, int] { return NewBuiltin[string, int](0) },
		"hax":     func() Map[string, int] { return NewHax[string, int]() },
		"cornelk": func() Map[string, int] { return NewCornelk[string, int]() },
		"gods":    func() Map[string, int] { return NewGods[string, int]() },
	}
}

func TestBackends_Contract(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			m := mk()
			_, ok := m.Get("missing")
			require.False(t, ok)
			require.False(t, m.Remove("missing"))

			m.Put("a", 1)
			m.Put("b", 2)
			m.Put("a", 10) //replaces
			v, ok := m.Get("a")
			require.True(t, ok)
			require.Equal(t, 10, v)
			require.Equal(t, uint(2), m.Size())

			require.Equal(t, map[string]int{"a": 10, "b": 2}, Collect(m))

			visited := 0
			m.Range(func(string, int) bool {
				visited++
				return false //stop after the first pair
			})
			require.Equal(t, 1, visited)

			require.True(t, m.Remove("a"))
			_, ok = m.Get("a")
			require.False(t, ok)
			require.Equal(t, uint(1), m.Size())
		})
	}
}

func TestUnionInto_AcrossBackends(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2, "c": 5}
	b := map[string]int{"b": 40, "d": 7}
	want := map[string]int{"a": 1, "b": 42, "c": 5, "d": 7}
	for nameA, mkA := range backends() {
		for nameB, mkB := range backends() {
			for nameDst, mkDst := range backends() {
				t.Run(nameA+"+"+nameB+"->"+nameDst, func(t *testing.T) {
					ma, mb, dst := mkA(), mkB(), mkDst()
					Fill(ma, a)
					Fill(mb, b)
					UnionInto(dst, ma, mb, add)
					require.Equal(t, want, Collect(dst))
				})
			}
		}
	}
}

func TestUnionInto_MatchesUnion(t *testing.T) {
	a, b := make(map[int]int), make(map[int]int)
	for i := 0; i < 512; i++ {
		a[i] = i * 3
	}
	for i := 256; i < 768; i++ {
		b[i] = i * 7
	}
	want := Union(a, b, add)
	ma, mb := NewHax[int, int](), NewCornelk[int, int]()
	Fill[int, int](ma, a)
	Fill[int, int](mb, b)
	dst := NewGods[int, int]()
	UnionInto[int, int](dst, ma, mb, add)
	require.Equal(t, want, Collect[int, int](dst))
}
