package clone

import "context"

// Deferred is the pending result of resolving a ticket into a seed. Every resolver returns one so
// callers await them the same way whether or not a resolver has to wait for anything.
type Deferred struct {
	done chan struct{}
	seed Seed
	err  error
}

func newDeferred() *Deferred {
	return &Deferred{done: make(chan struct{})}
}

// resolved returns a Deferred that is already complete.
func resolved(seed Seed, err error) *Deferred {
	d := newDeferred()
	d.complete(seed, err)
	return d
}

func (d *Deferred) complete(seed Seed, err error) {
	d.seed = seed
	d.err = err
	close(d.done)
}

// Done returns a channel which is closed once the result is available.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Await blocks until the seed is available or ctx is done. A seed that is already available is
// returned even if ctx is done.
func (d *Deferred) Await(ctx context.Context) (Seed, error) {
	select {
	case <-d.done:
		return d.seed, d.err
	default:
	}

	select {
	case <-d.done:
		return d.seed, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
