package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bookflow/clients"
	"bookflow/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestServiceCatalogCachesJoinedResult(t *testing.T) {
	cache := miniredis.RunT(t)
	utils.CacheClient = redis.NewClient(&redis.Options{Addr: cache.Addr()})

	var upstreamCalls int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/sessions/sess-1/service-groups":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Hair"}]`))
		case "/api/v1/sessions/sess-1/services":
			_, _ = w.Write([]byte(`[{"id":10,"name":"Cut","durationMinutes":30,"serviceGroupId":1}]`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer api.Close()

	flow := &DefaultFlowService{Booking: clients.NewBookingClient(api.URL)}
	ctx := context.Background()

	catalog, err := flow.ServiceCatalog(ctx, "sess-1")
	if err != nil {
		t.Fatalf("ServiceCatalog() error = %v", err)
	}
	if len(catalog) != 1 || len(catalog[0].Services) != 1 || catalog[0].Services[0].Name != "Cut" {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}
	if got := atomic.LoadInt32(&upstreamCalls); got != 2 {
		t.Fatalf("upstream calls = %d, want 2", got)
	}

	// Second load inside the TTL comes from the cache.
	cached, err := flow.ServiceCatalog(ctx, "sess-1")
	if err != nil {
		t.Fatalf("cached ServiceCatalog() error = %v", err)
	}
	if len(cached) != 1 || cached[0].Name != "Hair" {
		t.Fatalf("unexpected cached catalog: %+v", cached)
	}
	if got := atomic.LoadInt32(&upstreamCalls); got != 2 {
		t.Errorf("upstream calls after cached load = %d, want 2", got)
	}

	// Past the TTL the catalog is fetched fresh.
	cache.FastForward(utils.CatalogCacheTTL + time.Second)
	if _, err := flow.ServiceCatalog(ctx, "sess-1"); err != nil {
		t.Fatalf("ServiceCatalog() after expiry error = %v", err)
	}
	if got := atomic.LoadInt32(&upstreamCalls); got != 4 {
		t.Errorf("upstream calls after expiry = %d, want 4", got)
	}
}
