package table_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/loda_ive_go/internal/table"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := table.NewTrie[string](0)

	// store a value
	trie.Store([]table.Key{"a", "b", "c"}, "final")

	// load it back
	val, ok := trie.Load([]table.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]table.Key{"a", "b", "x"})
	assert.False(t, ok)

	// prefix of a stored path is not a hit
	_, ok = trie.Load([]table.Key{"a", "b"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]table.Key{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]table.Key{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_PrefixAndLongerPathsCoexist(t *testing.T) {
	trie := table.NewTrie[int](0)
	trie.Store([]table.Key{1}, 10)
	trie.Store([]table.Key{1, 2}, 20)
	trie.Store([]table.Key{}, 0)

	v, ok := trie.Load([]table.Key{1})
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = trie.Load([]table.Key{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	v, ok = trie.Load([]table.Key{})
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestTrie_NilResultIsAHit(t *testing.T) {
	trie := table.NewTrie[any](0)
	trie.Store([]table.Key{"k"}, nil)

	v, ok := trie.Load([]table.Key{"k"})
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestTrie_BoundedRotationDropsOldestGeneration(t *testing.T) {
	trie := table.NewTrie[int](2)
	for i := 0; i < 2; i++ {
		trie.Store([]table.Key{i}, i)
	}
	// rotates: generation {0, 1} becomes the tail
	trie.Store([]table.Key{2}, 2)
	trie.Store([]table.Key{3}, 3)

	for i := 0; i < 4; i++ {
		_, ok := trie.Load([]table.Key{i})
		assert.Truef(t, ok, "expected key %d to be retained", i)
	}

	// rotates again: generation {0, 1} is dropped
	trie.Store([]table.Key{4}, 4)
	_, ok := trie.Load([]table.Key{0})
	assert.False(t, ok)
	_, ok = trie.Load([]table.Key{2})
	assert.True(t, ok)
	_, ok = trie.Load([]table.Key{4})
	assert.True(t, ok)
}

func TestTrie_Clear(t *testing.T) {
	trie := table.NewTrie[int](0)
	trie.Store([]table.Key{"x"}, 1)
	trie.Clear()

	_, ok := trie.Load([]table.Key{"x"})
	assert.False(t, ok)
	assert.NotEmpty(t, trie.ID())
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

// Label prints the same for 1 and "1".
type Label struct{ V any }

func (l Label) String() string { return fmt.Sprint(l.V) }

type TotallyInvalid struct {
	Field []int
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, table.KeyOf(nil), table.KeyOf(nil))
	assert.Equal(t, 1, table.KeyOf(1))
	assert.NotEqual(t, table.KeyOf(1), table.KeyOf("1"))

	// stringer fallback
	assert.Equal(t,
		table.KeyOf(NonComparable{Field: []int{1, 2}}),
		table.KeyOf(NonComparable{Field: []int{1, 2}}),
	)

	// hashable stringers key by value, not by their text
	assert.Equal(t, Label{V: 1}, table.KeyOf(Label{V: 1}))
	assert.NotEqual(t, table.KeyOf(Label{V: 1}), table.KeyOf(Label{V: "1"}))

	// fingerprint fallback
	assert.Equal(t,
		table.KeyOf(TotallyInvalid{Field: []int{1}}),
		table.KeyOf(TotallyInvalid{Field: []int{1}}),
	)
	assert.NotEqual(t,
		table.KeyOf(TotallyInvalid{Field: []int{1}}),
		table.KeyOf(TotallyInvalid{Field: []int{2}}),
	)
	assert.NotEqual(t, table.KeyOf([]int{1}), table.KeyOf([]int64{1}))

	// pointers key by identity even when they print alike
	a, b := &NonComparable{}, &NonComparable{}
	assert.Same(t, a, table.KeyOf(a))
	assert.NotEqual(t, table.KeyOf(a), table.KeyOf(b))

	// comparable type holding an unhashable value
	boxed := struct{ V any }{V: []int{1}}
	assert.NotPanics(t, func() { table.KeyOf(boxed) })
	assert.NotEqual(t, boxed, table.KeyOf(boxed))
}

func TestDigest(t *testing.T) {
	a := table.Digest(table.KeysOf([]any{1, "x"}))
	b := table.Digest(table.KeysOf([]any{1, "x"}))
	c := table.Digest(table.KeysOf([]any{"x", 1}))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
