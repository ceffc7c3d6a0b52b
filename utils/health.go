package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pinger is a reachability check. The upstream REST clients satisfy it;
// any response, even an error status, counts as reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the latest reachability snapshot of everything the
// gateway depends on. The booking and identity upstreams are the ones
// that matter most: without them every step route is dead.
type HealthStatus struct {
	Upstreams map[string]bool `json:"upstreams"`
	Redis     map[string]bool `json:"redis"`
	Mongo     bool            `json:"mongo"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Dependencies names everything the monitor checks.
type Dependencies struct {
	Upstreams map[string]Pinger
	Redis     map[string]*redis.Client
	Mongo     *mongo.Client
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor checks the dependencies once immediately and then
// every minute, storing the snapshot for the health endpoint.
func StartHealthMonitor(deps Dependencies) {
	go func() {
		store := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			status := checkDependencies(ctx, deps)
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}

		store()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			store()
		}
	}()
}

func checkDependencies(ctx context.Context, deps Dependencies) HealthStatus {
	status := HealthStatus{
		Upstreams: make(map[string]bool, len(deps.Upstreams)),
		Redis:     make(map[string]bool, len(deps.Redis)),
		CheckedAt: time.Now(),
	}

	for name, upstream := range deps.Upstreams {
		status.Upstreams[name] = upstream.Ping(ctx) == nil
	}
	for name, client := range deps.Redis {
		status.Redis[name] = client.Ping(ctx).Err() == nil
	}
	if deps.Mongo != nil {
		status.Mongo = deps.Mongo.Ping(ctx, nil) == nil
	}
	return status
}
