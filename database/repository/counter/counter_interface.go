package counterRepo

import "context"

// CounterRepository issues values from durable named sequences.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the
	// post-increment value. The first call for an unseen name creates the
	// counter at seq=0 and returns 1.
	Next(ctx context.Context, name string) (int64, error)
}
