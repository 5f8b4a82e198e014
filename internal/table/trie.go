package table

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/loda_ive_go/log"
)

// Trie is a nested map keyed by argument sequences.
//
// With maxSize == 0 it grows without bound until Clear is called.
// Otherwise it keeps two generations: once the head generation holds maxSize
// entries the older generation is dropped and a fresh head starts, so at most
// 2*maxSize entries are retained.
type Trie[O any] struct {
	id      string
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

var _ Store[any] = (*Trie[any])(nil)

func NewTrie[O any](maxSize uint32) *Trie[O] {
	t := &Trie[O]{
		id:      uuid.New().String(),
		maxSize: maxSize,
	}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) ID() string {
	return t.id
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := lookup(t.memos[headIdx].Load(), keys); ok {
		return v.(entry[O]).value, true
	}
	if v, ok := lookup(t.memos[1-headIdx].Load(), keys); ok {
		return v.(entry[O]).value, true
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if t.maxSize > 0 {
		if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
			t.rotate()
		}
	}
	traverse(t.memos[t.headIdx.Load()].Load(), keys).Store(leaf{}, entry[O]{value: value})
	t.size.Add(1)
}

func (t *Trie[O]) Clear() {
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	t.size.Store(0)
	log.Log(log.LogDebug, "memo table cleared", map[string]interface{}{"tableId": t.id})
}

func (t *Trie[O]) rotate() {
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	log.Log(log.LogDebug, "memo table rotated", map[string]interface{}{
		"tableId": t.id,
		"maxSize": t.maxSize,
	})
}

// leaf is the slot holding the result for the path walked so far, so that
// f(1) and f(1, 2) can coexist in one trie.
type leaf struct{}

// entry boxes results so that a nil result is still a hit.
type entry[O any] struct {
	value O
}

// traverse walks to the node for keys, creating missing levels.
func traverse(node *sync.Map, keys []Key) *sync.Map {
	for _, k := range keys {
		v, ok := node.Load(k)
		if !ok {
			v, _ = node.LoadOrStore(k, &sync.Map{})
		}
		node = v.(*sync.Map)
	}
	return node
}

func lookup(node *sync.Map, keys []Key) (any, bool) {
	for _, k := range keys {
		v, ok := node.Load(k)
		if !ok {
			return nil, false
		}
		node = v.(*sync.Map)
	}
	return node.Load(leaf{})
}
