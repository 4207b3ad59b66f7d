package memory

import (
	"context"
	"testing"
)

func TestRecordStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore()

	if _, ok, err := store.Get(ctx, "nfl_mvp_today_score"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "nfl_mvp_today_score", "7"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := store.Get(ctx, "nfl_mvp_today_score")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != "7" {
		t.Fatalf("expected 7, got %q", v)
	}
}
