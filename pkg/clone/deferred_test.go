package clone

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferred(t *testing.T) {
	t.Run("Resolved", func(t *testing.T) {
		d := resolved(Seed{"row"}, nil)

		seed, err := d.Await(context.Background())

		require.NoError(t, err)
		assert.Equal(t, Seed{"row"}, seed)
	})

	t.Run("ResolvedWithError", func(t *testing.T) {
		d := resolved(nil, errors.New("some error"))

		_, err := d.Await(context.Background())

		assert.EqualError(t, err, "some error")
	})

	t.Run("PendingUntilComplete", func(t *testing.T) {
		d := newDeferred()
		select {
		case <-d.Done():
			t.Fatal("want deferred to be pending")
		default:
		}

		go d.complete(Seed{}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		seed, err := d.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, Seed{}, seed)
	})

	t.Run("AwaitCanceled", func(t *testing.T) {
		d := newDeferred()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := d.Await(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("CompleteWinsOverCanceledContext", func(t *testing.T) {
		d := resolved(Seed{"row"}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		for i := 0; i < 100; i++ {
			seed, err := d.Await(ctx)

			require.NoError(t, err)
			assert.Equal(t, Seed{"row"}, seed)
		}
	})
}
