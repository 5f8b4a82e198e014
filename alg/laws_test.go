package alg_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/on-the-ground/loda_ive_go/alg"
	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/maybe"
	"github.com/on-the-ground/loda_ive_go/promise"
	"github.com/on-the-ground/loda_ive_go/seq"
)

func settle(v any) any {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := v.(*promise.Promise).Await(ctx)
	if err != nil {
		return err
	}
	return got
}

func TestFunctorLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)
	incThenDouble := fn.Compose(double, inc)

	properties.Property("array identity", prop.ForAll(
		func(xs []int) bool {
			return reflect.DeepEqual(seq.Array(xs), alg.Map(fn.Identity, xs))
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("array composition", prop.ForAll(
		func(xs []int) bool {
			return reflect.DeepEqual(
				alg.Map(incThenDouble, xs),
				alg.Map(double, alg.Map(inc, xs)),
			)
		},
		gen.SliceOf(gen.IntRange(-1<<20, 1<<20)),
	))

	properties.Property("maybe identity", prop.ForAll(
		func(x int) bool {
			return alg.Map(fn.Identity, maybe.Of(x)) == maybe.Of(x)
		},
		gen.Int(),
	))
	properties.Property("maybe composition", prop.ForAll(
		func(x int) bool {
			return alg.Map(incThenDouble, maybe.Of(x)) == alg.Map(double, alg.Map(inc, maybe.Of(x)))
		},
		gen.IntRange(-1<<20, 1<<20),
	))

	properties.Property("promise identity", prop.ForAll(
		func(x int) bool {
			return settle(alg.Map(fn.Identity, promise.Resolve(x))) == x
		},
		gen.Int(),
	))
	properties.Property("promise composition", prop.ForAll(
		func(x int) bool {
			direct := settle(alg.Map(incThenDouble, promise.Resolve(x)))
			stepwise := settle(alg.Map(double, alg.Map(inc, promise.Resolve(x))))
			return direct == stepwise
		},
		gen.IntRange(-1<<20, 1<<20),
	))

	properties.TestingRun(t)
}
