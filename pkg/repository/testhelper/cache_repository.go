package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
)

// TestAll runs all test cases for CacheRepository
// This is the main entry point for testing any CacheRepository implementation
func TestAll(t *testing.T, repo interfaces.CacheRepository) {
	t.Run("Miss", func(t *testing.T) {
		TestMiss(t, repo)
	})
	t.Run("SetAndGet", func(t *testing.T) {
		TestSetAndGet(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("KeyIsolation", func(t *testing.T) {
		TestKeyIsolation(t, repo)
	})
	t.Run("ConcurrentWrites", func(t *testing.T) {
		TestConcurrentWrites(t, repo)
	})
}

func newKey(prefix string) string {
	return fmt.Sprintf("test:%s:%s", prefix, uuid.New().String()[:8])
}

// TestMiss tests that an unknown key is reported as absent without error
func TestMiss(t *testing.T, repo interfaces.CacheRepository) {
	ctx := context.Background()

	v, ok, err := repo.Get(ctx, newKey("miss"))
	gt.NoError(t, err)
	gt.False(t, ok)
	gt.V(t, len(v)).Equal(0)
}

// TestSetAndGet tests a round trip of a stored value
func TestSetAndGet(t *testing.T, repo interfaces.CacheRepository) {
	ctx := context.Background()
	key := newKey("roundtrip")
	value := []byte(`{"name":"folio","stargazers_count":3}`)

	gt.NoError(t, repo.Set(ctx, key, value, time.Minute))

	got, ok, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.V(t, got).Equal(value)
}

// TestOverwrite tests that the last write wins
func TestOverwrite(t *testing.T, repo interfaces.CacheRepository) {
	ctx := context.Background()
	key := newKey("overwrite")

	gt.NoError(t, repo.Set(ctx, key, []byte("first"), time.Minute))
	gt.NoError(t, repo.Set(ctx, key, []byte("second"), time.Minute))

	got, ok, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.V(t, string(got)).Equal("second")
}

// TestKeyIsolation tests that keys sharing a prefix do not collide
func TestKeyIsolation(t *testing.T, repo interfaces.CacheRepository) {
	ctx := context.Background()
	base := newKey("isolation")

	gt.NoError(t, repo.Set(ctx, base+":repos", []byte("a"), time.Minute))
	gt.NoError(t, repo.Set(ctx, base+":repos:page=2", []byte("b"), time.Minute))

	a, ok, err := repo.Get(ctx, base+":repos")
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.V(t, string(a)).Equal("a")

	_, ok, err = repo.Get(ctx, base)
	gt.NoError(t, err)
	gt.False(t, ok)
}

// TestConcurrentWrites tests that parallel writers leave one of their values
func TestConcurrentWrites(t *testing.T, repo interfaces.CacheRepository) {
	ctx := context.Background()
	key := newKey("concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gt.NoError(t, repo.Set(ctx, key, []byte(fmt.Sprintf("v%d", i)), time.Minute))
		}(i)
	}
	wg.Wait()

	got, ok, err := repo.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.S(t, string(got)).Contains("v")
}
