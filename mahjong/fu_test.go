package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func tile(t *testing.T, s string) mahjong.Tile {
	t.Helper()
	tl, err := mahjong.ParseTile(s)
	if err != nil {
		t.Fatalf("ParseTile(%q) failed: %v", s, err)
	}
	return tl
}

func TestFuPinfu(t *testing.T) {
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewChow(tile(t, "2m")),
			mahjong.NewChow(tile(t, "5m")),
			mahjong.NewChow(tile(t, "4p")),
			mahjong.NewChow(tile(t, "6s")),
		},
		Pair: tile(t, "5p"),
	}
	ctx := mahjong.NewGameContext()
	ctx.SeatWind = mahjong.TileNan
	ctx.WinningTile = tile(t, "2m")

	// 平和自摸恰好20符
	ctx.WinType = mahjong.WinTypeTsumo
	if got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules()); got.Total != 20 {
		t.Errorf("pinfu tsumo fu = %d, want 20", got.Total)
	}

	// 平和荣和门清加10符
	ctx.WinType = mahjong.WinTypeRon
	if got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules()); got.Total != 30 {
		t.Errorf("pinfu ron fu = %d, want 30", got.Total)
	}
}

func TestFuChiitoitsu(t *testing.T) {
	st := mahjong.Structure{Kind: mahjong.HandSevenPairs}
	ctx := mahjong.NewGameContext()
	if got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules()); got.Total != 25 {
		t.Errorf("chiitoitsu fu = %d, want 25", got.Total)
	}
}

func TestFuClosedTripletAndWait(t *testing.T) {
	// 门清荣和 暗刻白板8符 嵌张2符:20+10+8+2=40
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewPon(mahjong.TileBai),
			mahjong.NewChow(tile(t, "4p")),
			mahjong.NewChow(tile(t, "2m")),
			mahjong.NewChow(tile(t, "6s")),
		},
		Pair: tile(t, "3s"),
	}
	ctx := mahjong.NewGameContext()
	ctx.WinningTile = tile(t, "5p")

	got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules())
	if got.Total != 40 {
		t.Errorf("fu = %d, want 40", got.Total)
	}
	if got.Breakdown.Melds != 8 || got.Breakdown.Wait != 2 {
		t.Errorf("breakdown = %+v", got.Breakdown)
	}
}

func TestFuShanponRonCountsOpen(t *testing.T) {
	// 双碰荣和补成的刻子按明刻记2符
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewPon(tile(t, "3m")),
			mahjong.NewPon(mahjong.TileBai),
			mahjong.NewChow(tile(t, "4p")),
			mahjong.NewChow(tile(t, "5s")),
		},
		Pair: tile(t, "2s"),
	}
	ctx := mahjong.NewGameContext()
	ctx.WinningTile = tile(t, "3m")

	got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules())
	if got.Breakdown.Melds != 2+8 {
		t.Errorf("meld fu = %d, want 10", got.Breakdown.Melds)
	}
	if got.Total != 40 {
		t.Errorf("fu = %d, want 40", got.Total)
	}
}

func TestFuRonTripletClosedWhenChowAlternative(t *testing.T) {
	// 和牌同时嵌在门前顺子里,刻子保留暗刻:20+10+4+8+2=44进50
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewPon(tile(t, "3m")),
			mahjong.NewChow(tile(t, "2m")),
			mahjong.NewPon(mahjong.TileBai),
			mahjong.NewChow(tile(t, "5s")),
		},
		Pair: tile(t, "2s"),
	}
	ctx := mahjong.NewGameContext()
	ctx.WinningTile = tile(t, "3m")

	got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules())
	if got.Breakdown.Melds != 4+8 {
		t.Errorf("meld fu = %d, want 12", got.Breakdown.Melds)
	}
	if got.Total != 50 {
		t.Errorf("fu = %d, want 50", got.Total)
	}
}

func TestFuClosedKan(t *testing.T) {
	// 幺九暗杠32符 单骑2符 自摸2符:20+2+32+2=56进60
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewKon(tile(t, "1s"), mahjong.KonTypeAn),
			mahjong.NewChow(tile(t, "2m")),
			mahjong.NewChow(tile(t, "4p")),
			mahjong.NewChow(tile(t, "6s")),
		},
		Pair: tile(t, "8p"),
	}
	ctx := mahjong.NewGameContext()
	ctx.WinType = mahjong.WinTypeTsumo
	ctx.WinningTile = tile(t, "8p")

	got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules())
	if got.Total != 60 {
		t.Errorf("fu = %d, want 60", got.Total)
	}
}

func TestFuOpenHandFloor(t *testing.T) {
	// 副露平和型保底30符
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewChowOpen(tile(t, "2m")),
			mahjong.NewChowOpen(tile(t, "4p")),
			mahjong.NewChow(tile(t, "5s")),
			mahjong.NewChow(tile(t, "6m")),
		},
		Pair: tile(t, "5p"),
	}
	ctx := mahjong.NewGameContext()
	ctx.IsOpen = true
	ctx.WinningTile = tile(t, "5s")

	got := mahjong.CalcFu(st, ctx, mahjong.DefaultRules())
	if got.Total != 30 {
		t.Errorf("open hand fu = %d, want 30", got.Total)
	}
}

func TestFuDoubleWindPair(t *testing.T) {
	st := mahjong.Structure{
		Kind: mahjong.HandNormal,
		Melds: []mahjong.Meld{
			mahjong.NewChow(tile(t, "2m")),
			mahjong.NewChow(tile(t, "4p")),
			mahjong.NewChow(tile(t, "5s")),
			mahjong.NewPon(tile(t, "8s")),
		},
		Pair: mahjong.TileDong,
	}
	ctx := mahjong.NewGameContext() // 场风自风都是东
	ctx.WinType = mahjong.WinTypeTsumo
	ctx.WinningTile = tile(t, "3m")

	rules := mahjong.DefaultRules()
	if got := mahjong.CalcFu(st, ctx, rules); got.Breakdown.Pair != 4 {
		t.Errorf("double wind pair fu = %d, want 4", got.Breakdown.Pair)
	}

	rules.DoubleWindFu4 = false
	if got := mahjong.CalcFu(st, ctx, rules); got.Breakdown.Pair != 2 {
		t.Errorf("double wind pair fu = %d, want 2", got.Breakdown.Pair)
	}
}
