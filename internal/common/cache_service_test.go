package common

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCacheService_GetOrSetCountsHitsAndMisses(t *testing.T) {
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_cache_hits"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_cache_misses"})

	svc := NewCacheService(60, 600)
	svc.InstrumentWith(hits, misses)

	loads := 0
	loader := func() (any, error) {
		loads++
		return "value", nil
	}

	if _, err := svc.GetOrSet("key", time.Minute, loader); err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}
	if _, err := svc.GetOrSet("key", time.Minute, loader); err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}

	if loads != 1 {
		t.Errorf("Expected loader to run once, ran %d times", loads)
	}
	if got := testutil.ToFloat64(misses); got != 1 {
		t.Errorf("Expected 1 miss, got %v", got)
	}
	if got := testutil.ToFloat64(hits); got != 1 {
		t.Errorf("Expected 1 hit, got %v", got)
	}
}

func TestCacheService_UninstrumentedStillWorks(t *testing.T) {
	svc := NewCacheService(60, 600)

	if _, err := svc.GetOrSet("key", time.Minute, func() (any, error) {
		return 42, nil
	}); err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}

	val, found := svc.Get("key")
	if !found || val.(int) != 42 {
		t.Errorf("Expected cached 42, got %v (found=%v)", val, found)
	}
}
