package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestCheckDependencies(t *testing.T) {
	deps := Dependencies{
		Upstreams: map[string]Pinger{
			"booking":  fakePinger{},
			"identity": fakePinger{err: errors.New("connection refused")},
		},
		Redis: map[string]*redis.Client{
			"cache": newTestCache(t),
		},
	}

	status := checkDependencies(context.Background(), deps)

	if !status.Upstreams["booking"] {
		t.Error("reachable booking upstream reported down")
	}
	if status.Upstreams["identity"] {
		t.Error("unreachable identity upstream reported up")
	}
	if !status.Redis["cache"] {
		t.Error("live redis reported down")
	}
	if status.Mongo {
		t.Error("absent mongo client reported up")
	}
	if status.CheckedAt.IsZero() {
		t.Error("snapshot has no timestamp")
	}
}
