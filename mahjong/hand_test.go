package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestDecomposeAmbiguous(t *testing.T) {
	// 111222333既可拆三刻子也可拆三顺子
	counts := handCounts(t, "111222333m11155z")
	structures := mahjong.Decompose(counts, nil)
	if len(structures) < 2 {
		t.Fatalf("structures = %d, want at least 2", len(structures))
	}

	hasTriplets, hasChows := false, false
	for _, st := range structures {
		chows := 0
		for _, m := range st.Melds {
			if m.Type == mahjong.GroupTypeChow {
				chows++
			}
		}
		if chows == 0 {
			hasTriplets = true
		}
		if chows == 3 {
			hasChows = true
		}
	}
	if !hasTriplets || !hasChows {
		t.Errorf("want both all-triplet and three-chow decompositions")
	}
}

func TestDecomposeSevenPairs(t *testing.T) {
	counts := handCounts(t, "1122m3344p5566s77z")
	structures := mahjong.Decompose(counts, nil)

	found := false
	for _, st := range structures {
		if st.Kind == mahjong.HandSevenPairs {
			found = true
			if len(st.Pairs) != 7 {
				t.Errorf("pairs = %d, want 7", len(st.Pairs))
			}
		}
	}
	if !found {
		t.Error("seven pairs structure not found")
	}
}

func TestDecomposeKokushi(t *testing.T) {
	counts := handCounts(t, "119m19p19s1234567z")
	structures := mahjong.Decompose(counts, nil)

	found := false
	for _, st := range structures {
		if st.Kind == mahjong.HandThirteenOrphans {
			found = true
			if st.Pair != mahjong.MakeTile(mahjong.ColorCharacter, 0) {
				t.Errorf("pair = %v, want 1m", st.Pair)
			}
		}
	}
	if !found {
		t.Error("kokushi structure not found")
	}
}

func TestDecomposeWithCalledMelds(t *testing.T) {
	p, err := mahjong.ParseHand("234567789p99p(111p)")
	if err != nil {
		t.Fatal(err)
	}
	counts := mahjong.NewCounts(p.Tiles)
	structures := mahjong.Decompose(counts, p.Called)
	if len(structures) == 0 {
		t.Fatal("no structure found")
	}
	for _, st := range structures {
		if len(st.Melds) != 4 {
			t.Errorf("melds = %d, want 4 including called", len(st.Melds))
		}
	}
}

func TestDecomposeRejectsGarbage(t *testing.T) {
	counts := handCounts(t, "1379m1379p1379s11z")
	if structures := mahjong.Decompose(counts, nil); len(structures) != 0 {
		t.Errorf("structures = %v, want none", structures)
	}
}
