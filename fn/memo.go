package fn

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/loda_ive_go/configkeys"
	"github.com/on-the-ground/loda_ive_go/internal/table"
	"github.com/on-the-ground/loda_ive_go/log"
	"github.com/on-the-ground/loda_ive_go/shared/helper"
)

var ErrUnknownBackend = errors.New("unknown memo backend")

type MemoBackend string

const (
	// MemoTrie keeps results in a nested map. Unbounded unless MaxEntries is set.
	MemoTrie MemoBackend = "trie"
	// MemoRistretto keeps results in a ristretto cache bounded by MaxEntries.
	MemoRistretto MemoBackend = "ristretto"
)

const (
	DefaultRistrettoMaxEntries  = 1 << 16
	DefaultRistrettoBufferItems = 64
)

type MemoConfig struct {
	Backend     MemoBackend
	MaxEntries  int64
	NumCounters int64
	BufferItems int64
}

func NewMemoConfig(backend MemoBackend, maxEntries int64) MemoConfig {
	if backend == "" {
		backend = MemoTrie
	}
	if maxEntries < 0 {
		maxEntries = 0
	}
	cfg := MemoConfig{Backend: backend, MaxEntries: maxEntries}
	if backend == MemoRistretto {
		if cfg.MaxEntries == 0 {
			cfg.MaxEntries = DefaultRistrettoMaxEntries
		}
		cfg.NumCounters = cfg.MaxEntries * 10
		cfg.BufferItems = DefaultRistrettoBufferItems
	}
	return cfg
}

// MemoConfigFrom reads a MemoConfig from flat configuration values keyed by
// the configkeys constants. Missing keys keep their defaults.
func MemoConfigFrom(values map[string]any) (MemoConfig, error) {
	backend, _, err := helper.Lookup[string](values, configkeys.ConfigFnMemoBackend)
	if err != nil {
		return MemoConfig{}, err
	}
	switch MemoBackend(backend) {
	case "", MemoTrie, MemoRistretto:
	default:
		return MemoConfig{}, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
	maxEntries, _, err := helper.Lookup[int](values, configkeys.ConfigFnMemoMaxEntries)
	if err != nil {
		return MemoConfig{}, err
	}
	cfg := NewMemoConfig(MemoBackend(backend), int64(maxEntries))

	numCounters, found, err := helper.Lookup[int](values, configkeys.ConfigFnMemoRistrettoNumCounters)
	if err != nil {
		return MemoConfig{}, err
	}
	if found && numCounters > 0 {
		cfg.NumCounters = int64(numCounters)
	}
	bufferItems, found, err := helper.Lookup[int](values, configkeys.ConfigFnMemoRistrettoBufferItems)
	if err != nil {
		return MemoConfig{}, err
	}
	if found && bufferItems > 0 {
		cfg.BufferItems = int64(bufferItems)
	}
	return cfg, nil
}

func newStore[O any](cfg MemoConfig) (table.Store[O], error) {
	var (
		store table.Store[O]
		err   error
	)
	switch cfg.Backend {
	case "", MemoTrie:
		store = table.NewTrie[O](uint32(cfg.MaxEntries))
	case MemoRistretto:
		store, err = table.NewRistretto[O](cfg.MaxEntries, cfg.NumCounters, cfg.BufferItems)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	log.Log(log.LogDebug, "memo table created", map[string]interface{}{
		"tableId":    store.ID(),
		"backend":    string(cfg.Backend),
		"maxEntries": cfg.MaxEntries,
	})
	return store, nil
}

// Memo caches f's results by argument list in an unbounded table.
// Only use it on pure functions.
func Memo(f any) *Function {
	memoized, err := MemoWith(f, NewMemoConfig(MemoTrie, 0))
	if err != nil {
		panic(err)
	}
	return memoized
}

// MemoWith is Memo with a chosen backend.
//
// Memoizing a memoized function returns it unchanged. A curried function is
// memoized at its original and curried again with the same arity.
func MemoWith(f any, cfg MemoConfig) (*Function, error) {
	target := From(f)
	if target.memo != nil {
		return target, nil
	}
	store, err := newStore[any](cfg)
	if err != nil {
		return nil, err
	}
	base := Uncurry(target)
	memoized := &Function{
		arity: base.arity,
		memo:  store,
		call:  memoize(base.call, store),
	}
	if IsCurried(target) && base.arity > 1 {
		return curryFactory(base.arity, false)(memoized), nil
	}
	return memoized, nil
}

func IsMemoized(f any) bool {
	target, ok := f.(*Function)
	return ok && target != nil && target.memo != nil
}

// ClearMemo drops every cached result of a memoized function.
func ClearMemo(f any) {
	if target := From(f); target.memo != nil {
		target.memo.Clear()
	}
}

// CloseMemo releases background resources held by the memo table.
func CloseMemo(f any) {
	if target := From(f); target.memo != nil {
		if closer, ok := target.memo.(interface{ Close() }); ok {
			closer.Close()
		}
	}
}

func memoize[O any](call func(args ...any) O, store table.Store[O]) func(args ...any) O {
	return func(args ...any) O {
		keys := table.KeysOf(args)
		if v, ok := store.Load(keys); ok {
			return v
		}
		v := call(args...)
		store.Store(keys, v)
		return v
	}
}

func typedMemo[O any](call func(args ...any) O, maxEntries uint32) func(args ...any) O {
	store, err := newStore[O](NewMemoConfig(MemoTrie, int64(maxEntries)))
	if err != nil {
		panic(err)
	}
	return memoize(call, store)
}

func arg[T any](args []any, i int) T {
	v, _ := argAt(args, i).(T)
	return v
}

// Memo1 memoizes a typed unary function in a trie holding at most
// 2*maxEntries results, or unbounded for 0.
func Memo1[I1, O any](pureFn func(I1) O, maxEntries uint32) func(I1) O {
	memoized := typedMemo(func(args ...any) O {
		return pureFn(arg[I1](args, 0))
	}, maxEntries)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

func Memo2[I1, I2, O any](pureFn func(I1, I2) O, maxEntries uint32) func(I1, I2) O {
	memoized := typedMemo(func(args ...any) O {
		return pureFn(arg[I1](args, 0), arg[I2](args, 1))
	}, maxEntries)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

func Memo3[I1, I2, I3, O any](pureFn func(I1, I2, I3) O, maxEntries uint32) func(I1, I2, I3) O {
	memoized := typedMemo(func(args ...any) O {
		return pureFn(arg[I1](args, 0), arg[I2](args, 1), arg[I3](args, 2))
	}, maxEntries)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}
