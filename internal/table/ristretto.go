package table

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
	"github.com/on-the-ground/loda_ive_go/log"
)

// Ristretto is a bounded Store backed by a ristretto cache.
// A key path is folded into one digest, and admission is decided by
// ristretto's TinyLFU policy, so a Store may be dropped.
type Ristretto[O any] struct {
	id    string
	cache *ristretto.Cache[uint64, O]
}

var _ Store[any] = (*Ristretto[any])(nil)

func NewRistretto[O any](maxEntries int64, numCounters int64, bufferItems int64) (*Ristretto[O], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, O]{
		NumCounters:        numCounters,
		MaxCost:            maxEntries,
		BufferItems:        bufferItems,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[O]{id: uuid.New().String(), cache: cache}, nil
}

func (r *Ristretto[O]) ID() string {
	return r.id
}

func (r *Ristretto[O]) Load(keys []Key) (O, bool) {
	return r.cache.Get(Digest(keys))
}

func (r *Ristretto[O]) Store(keys []Key, value O) {
	if !r.cache.Set(Digest(keys), value, 1) {
		log.Log(log.LogDebug, "memo entry dropped", map[string]interface{}{"tableId": r.id})
		return
	}
	r.cache.Wait()
}

func (r *Ristretto[O]) Clear() {
	r.cache.Clear()
	log.Log(log.LogDebug, "memo table cleared", map[string]interface{}{"tableId": r.id})
}

// Close stops the cache's background goroutines.
func (r *Ristretto[O]) Close() {
	r.cache.Close()
}
