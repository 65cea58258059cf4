package service_test

import (
	"testing"
	"time"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/service"
)

func handCounts(t *testing.T, hand string) mahjong.Counts {
	t.Helper()
	p, err := mahjong.ParseHand(hand)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", hand, err)
	}
	return mahjong.NewCounts(p.Tiles)
}

func TestShantenCacheRoundTrip(t *testing.T) {
	cache, err := service.NewShantenCache(1<<20, time.Minute)
	if err != nil {
		t.Fatalf("NewShantenCache: %v", err)
	}
	defer cache.Close()

	counts := handCounts(t, "123m456p789s1112z")
	if _, ok := cache.Get(counts, nil); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	want := mahjong.CalcUkeire(counts, nil)
	cache.Put(counts, nil, want)
	cache.Wait()

	got, ok := cache.Get(counts, nil)
	if !ok {
		t.Fatal("miss after put")
	}
	if got.Shanten != want.Shanten || len(got.Tiles) != len(want.Tiles) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestShantenCacheKeyIncludesCalled(t *testing.T) {
	cache, err := service.NewShantenCache(1<<20, time.Minute)
	if err != nil {
		t.Fatalf("NewShantenCache: %v", err)
	}
	defer cache.Close()

	p, err := mahjong.ParseHand("23678p234567s(222z)")
	if err != nil {
		t.Fatalf("ParseHand: %v", err)
	}
	counts := mahjong.NewCounts(p.Tiles)
	cache.Put(counts, p.Called, mahjong.CalcUkeire(counts, p.Called))
	cache.Wait()

	if _, ok := cache.Get(counts, nil); ok {
		t.Error("entry with a called meld should not serve the bare hand")
	}
	if _, ok := cache.Get(counts, p.Called); !ok {
		t.Error("miss for the called hand after put")
	}
}
