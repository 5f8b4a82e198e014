package table

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Key is one level of a memo table path.
type Key any

// Store maps argument sequences to results.
type Store[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
	Clear()
	ID() string
}

type nilKey struct{}

type stringerKey struct {
	typ reflect.Type
	str string
}

type fingerprintKey struct {
	typ    reflect.Type
	digest uint64
}

// KeyOf turns one argument into a comparable table key.
//
// Pointers and hashable values key by themselves. Other fmt.Stringer values
// key by their string, and anything else by an xxhash fingerprint of its %#v
// rendering.
func KeyOf(arg any) Key {
	if arg == nil {
		return nilKey{}
	}
	typ := reflect.TypeOf(arg)
	if typ.Kind() == reflect.Pointer {
		return arg
	}
	if typ.Comparable() && hashable(arg) {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey{typ: typ, str: stringer.String()}
	}
	return fingerprintKey{typ: typ, digest: xxhash.Sum64String(fmt.Sprintf("%#v", arg))}
}

// hashable catches comparable types whose interface fields hold values
// that cannot be map keys.
func hashable(v any) (ok bool) {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Struct, reflect.Array:
	default:
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[any]struct{}{v: {}}
	return true
}

// KeysOf maps KeyOf over args.
func KeysOf(args []any) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		keys[i] = KeyOf(arg)
	}
	return keys
}

// Digest folds a key path into one 64-bit fingerprint.
func Digest(keys []Key) uint64 {
	d := xxhash.New()
	for _, k := range keys {
		_, _ = fmt.Fprintf(d, "%T:%#v|", k, k)
	}
	return d.Sum64()
}
