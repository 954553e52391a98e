package service

import (
	"testing"
	"time"
)

func TestTokenBucket_EvictIdle(t *testing.T) {
	tb := NewTokenBucket(t.Context(), 1, 1)
	tb.Allow("stale")
	tb.Allow("fresh")
	tb.buckets["stale"].last = time.Now().Add(-time.Hour)

	tb.evictIdle(time.Now().Add(-bucketIdleTimeout))

	if _, ok := tb.buckets["stale"]; ok {
		t.Fatal("expected stale bucket to be evicted")
	}
	if _, ok := tb.buckets["fresh"]; !ok {
		t.Fatal("expected fresh bucket to be kept")
	}
}
