package utils

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"bookflow/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestCache(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestRefreshCollapsesConcurrentCallers(t *testing.T) {
	var calls int32
	r := NewRefresher(newTestCache(t), func(ctx context.Context, token string) (*models.TokenPair, error) {
		atomic.AddInt32(&calls, 1)
		return &models.TokenPair{AccessToken: "access", RefreshToken: token, ExpiresIn: 900}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pair, err := r.Refresh(context.Background(), "refresh-abc")
			if err != nil {
				t.Errorf("Refresh() error = %v", err)
				return
			}
			if pair.AccessToken != "access" {
				t.Errorf("Refresh() access token = %q", pair.AccessToken)
			}
		}()
	}
	wg.Wait()

	// Cached pair in Redis makes later non-overlapping calls hit the cache,
	// so the identity service sees the refresh at most once.
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("refresh func called %d times, want 1", got)
	}

	if _, err := r.Refresh(context.Background(), "refresh-abc"); err != nil {
		t.Fatalf("cached Refresh() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("refresh func called %d times after cached call, want 1", got)
	}
}

func TestRefreshDistinctTokens(t *testing.T) {
	var calls int32
	r := NewRefresher(newTestCache(t), func(ctx context.Context, token string) (*models.TokenPair, error) {
		atomic.AddInt32(&calls, 1)
		return &models.TokenPair{AccessToken: "access-" + token, RefreshToken: token}, nil
	})

	ctx := context.Background()
	a, err := r.Refresh(ctx, "token-a")
	if err != nil {
		t.Fatalf("Refresh(token-a) error = %v", err)
	}
	b, err := r.Refresh(ctx, "token-b")
	if err != nil {
		t.Fatalf("Refresh(token-b) error = %v", err)
	}
	if a.AccessToken == b.AccessToken {
		t.Error("distinct refresh tokens shared a token pair")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("refresh func called %d times, want 2", got)
	}
}
