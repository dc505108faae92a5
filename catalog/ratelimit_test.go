package catalog_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements pokedex.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ pokedex.DomainLimiter = catalog.NewHostLimiter(1, 1)
	})

	t.Run("first request is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(10, 1)

		start := time.Now()
		err := limiter.Wait(context.Background(), "pokeapi.co")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("throttles the same host", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(10, 1) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "pokeapi.co"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "pokeapi.co")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("resource URLs share their host's bucket", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(10, 1)

		require.NoError(t, limiter.Wait(context.Background(), "https://PokeAPI.co/api/v2/pokemon/6/"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "pokeapi.co")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("burst allows back-to-back requests", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(1, 3)

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(context.Background(), "pokeapi.co"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("hosts are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(10, 1)

		require.NoError(t, limiter.Wait(context.Background(), "pokeapi.co"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://mirror.example/api/v2/type/")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(1, 1)
		require.NoError(t, limiter.Wait(context.Background(), "pokeapi.co"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "pokeapi.co"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		limiter := catalog.NewHostLimiter(100, 5)

		var wg sync.WaitGroup
		var completed atomic.Int32
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Wait(context.Background(), "pokeapi.co") == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load())
	})
}
