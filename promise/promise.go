package promise

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/log"
	"github.com/rickb777/date/v2/timespan"
)

var (
	ErrPanicked     = errors.New("promise callback panicked")
	ErrSelfResolved = errors.New("promise resolved with itself")
)

type state int

const (
	pending state = iota
	fulfilled
	rejected
)

// Promise is a value that settles once, either fulfilled with a value or
// rejected with an error.
//
// Callbacks passed to Then, ThenCatch and Catch run on their own goroutine
// after the promise settles. A callback returning a *Promise adopts it, one
// returning a non-nil error rejects, and a panicking callback rejects with
// ErrPanicked.
type Promise struct {
	id        string
	mu        sync.Mutex
	state     state
	value     any
	err       error
	done      chan struct{}
	waiters   []func()
	createdAt time.Time
	settledAt time.Time
}

func newPending() *Promise {
	return &Promise{
		id:        uuid.New().String(),
		done:      make(chan struct{}),
		createdAt: time.Now(),
	}
}

// New runs executor synchronously with functions that settle the promise.
// Only the first call to resolve or reject counts. A panicking executor
// rejects the promise.
func New(executor func(resolve func(any), reject func(error))) *Promise {
	p := newPending()
	func() {
		defer func() {
			if r := recover(); r != nil {
				p.reject(panicked(p, r))
			}
		}()
		executor(p.resolve, p.reject)
	}()
	return p
}

// Resolve returns a promise fulfilled with v. A *Promise is returned as is.
func Resolve(v any) *Promise {
	if inner, ok := v.(*Promise); ok {
		return inner
	}
	p := newPending()
	p.resolve(v)
	return p
}

func Reject(err error) *Promise {
	p := newPending()
	p.reject(err)
	return p
}

// Go runs f on a new goroutine and settles with its result.
func Go(ctx context.Context, f func(context.Context) (any, error)) *Promise {
	p := newPending()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.reject(panicked(p, r))
			}
		}()
		v, err := f(ctx)
		if err != nil {
			p.reject(err)
			return
		}
		p.resolve(v)
	}()
	return p
}

func (p *Promise) resolve(v any) {
	inner, ok := v.(*Promise)
	if !ok {
		p.settle(fulfilled, v, nil)
		return
	}
	if inner == p {
		p.settle(rejected, nil, ErrSelfResolved)
		return
	}
	inner.onSettled(func() {
		st, value, err := inner.result()
		p.settle(st, value, err)
	})
}

func (p *Promise) reject(err error) {
	if err == nil {
		err = errors.New("rejected with nil error")
	}
	p.settle(rejected, nil, err)
}

func (p *Promise) settle(st state, v any, err error) {
	p.mu.Lock()
	if p.state != pending {
		p.mu.Unlock()
		return
	}
	p.state, p.value, p.err = st, v, err
	p.settledAt = time.Now()
	waiters := p.waiters
	p.waiters = nil
	close(p.done)
	p.mu.Unlock()

	for _, w := range waiters {
		w()
	}
}

// onSettled runs w once p has settled, right away if it already has.
func (p *Promise) onSettled(w func()) {
	p.mu.Lock()
	if p.state == pending {
		p.waiters = append(p.waiters, w)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	w()
}

func (p *Promise) result() (state, any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.value, p.err
}

// Then calls onFulfilled with the value once p fulfills. A rejection passes
// through to the returned promise untouched.
func (p *Promise) Then(onFulfilled any) *Promise {
	return p.ThenCatch(onFulfilled, nil)
}

// Catch calls onRejected with the error once p rejects. A fulfilled value
// passes through.
func (p *Promise) Catch(onRejected any) *Promise {
	return p.ThenCatch(nil, onRejected)
}

// ThenCatch registers both continuations. A nil continuation passes the
// outcome through.
func (p *Promise) ThenCatch(onFulfilled, onRejected any) *Promise {
	child := newPending()
	var ok, ko *fn.Function
	if onFulfilled != nil {
		ok = fn.From(onFulfilled)
	}
	if onRejected != nil {
		ko = fn.From(onRejected)
	}
	p.onSettled(func() {
		st, value, err := p.result()
		switch st {
		case fulfilled:
			if ok == nil {
				child.resolve(value)
				return
			}
			go child.run(ok, value)
		case rejected:
			if ko == nil {
				child.reject(err)
				return
			}
			go child.run(ko, err)
		default:
			panic("exhaustive match")
		}
	})
	return child
}

func (p *Promise) run(f *fn.Function, arg any) {
	defer func() {
		if r := recover(); r != nil {
			p.reject(panicked(p, r))
		}
	}()
	switch res := f.Call(arg).(type) {
	case *Promise:
		p.resolve(res)
	case error:
		p.reject(res)
	default:
		p.resolve(res)
	}
}

func panicked(p *Promise, r any) error {
	log.Log(log.LogError, "panic in promise callback", map[string]interface{}{
		"promiseId": p.id,
		"error":     r,
	})
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrPanicked, r)
}

// Await blocks until p settles or ctx is done.
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		_, value, err := p.result()
		return value, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed once p settles.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

func (p *Promise) Settled() bool {
	st, _, _ := p.result()
	return st != pending
}

// Elapsed spans from creation to settlement, or to now while pending.
func (p *Promise) Elapsed() timespan.TimeSpan {
	p.mu.Lock()
	defer p.mu.Unlock()
	end := p.settledAt
	if p.state == pending {
		end = time.Now()
	}
	return timespan.BetweenTimes(p.createdAt, end)
}

func (p *Promise) ID() string {
	return p.id
}

func (p *Promise) String() string {
	st, value, err := p.result()
	switch st {
	case pending:
		return "Promise(pending)"
	case fulfilled:
		return fmt.Sprintf("Promise(fulfilled %v)", value)
	case rejected:
		return fmt.Sprintf("Promise(rejected %v)", err)
	}
	panic("exhaustive match")
}
