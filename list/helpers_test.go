package list

import (
	"testing"

	"github.com/NewbieGameCoder/BetterList/list/alloc"
)

func newStringPool(t *testing.T) *alloc.Pool[string] {
	t.Helper()
	return alloc.NewPool[string](nil)
}
