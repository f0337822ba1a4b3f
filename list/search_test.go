package list

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/require"
)

func Test_IndexOfAndContains(t *testing.T) {
	l, _ := newIntList(t)
	fill(t, l, 10, 20, 30, 20)

	require.Equal(t, 1, IndexOf(l, 20), "first match wins")
	require.Equal(t, -1, IndexOf(l, 99))
	require.True(t, Contains(l, 30))
	require.False(t, Contains(l, 31))
}

func Test_RemoveValue(t *testing.T) {
	l, _ := newIntList(t)
	fill(t, l, 1, 2, 3, 2)

	require.True(t, Remove(l, 2))
	require.Equal(t, []int{1, 3, 2}, l.Slice())
	require.True(t, Remove(l, 2))
	require.False(t, Remove(l, 2))
	require.Equal(t, []int{1, 3}, l.Slice())
}

func Test_Equal(t *testing.T) {
	a, _ := newIntList(t)
	b, _ := newIntList(t)

	require.True(t, Equal(a, b))
	require.True(t, Equal[int](nil, a), "nil equals empty")

	fill(t, a, 1, 2)
	require.False(t, Equal(a, b))

	fill(t, b, 1, 2)
	require.True(t, Equal(a, b))

	b.Set(1, 3)
	require.False(t, Equal(a, b))
}

func Test_FuncVariants(t *testing.T) {
	pool := newStringPool(t)
	l := New(pool)
	for range 10 {
		l.Append(faker.Username())
	}
	l.Append("needle")

	i := IndexFunc(l, func(s string) bool { return s == "needle" })
	require.Equal(t, 10, i)

	require.True(t, RemoveFunc(l, func(s string) bool { return s == "needle" }))
	require.Equal(t, 10, l.Len())
	require.False(t, RemoveFunc(l, func(s string) bool { return s == "needle" }))
}
