// Package promise provides a settle-once asynchronous value with
// continuation chaining.
//
// Settlement is one-way: the first resolve or reject wins and later calls
// are ignored. Continuations never run on the goroutine that settles the
// promise, and panics inside them are recovered, logged, and turned into
// rejections wrapping ErrPanicked.
//
//	p := promise.Go(ctx, fetch).
//		Then(func(body []byte) (int, error) { return decode(body) }).
//		Catch(func(err error) int { return -1 })
//	n, err := p.Await(ctx)
package promise
