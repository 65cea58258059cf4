package mahjong

// FuBreakdown 符数构成
type FuBreakdown struct {
	Base      int
	MenzenRon int
	Tsumo     int
	Melds     int
	Pair      int
	Wait      int
	RawTotal  int
}

type FuResult struct {
	Total     int
	Breakdown FuBreakdown
}

// CalcFu 计算符数。七对固定25符不进位,国士与役满按30符占位。
func CalcFu(st Structure, ctx *GameContext, rules Rules) FuResult {
	switch st.Kind {
	case HandSevenPairs:
		return FuResult{Total: 25, Breakdown: FuBreakdown{Base: 25, RawTotal: 25}}
	case HandThirteenOrphans:
		return FuResult{Total: 30, Breakdown: FuBreakdown{Base: 30, RawTotal: 30}}
	default:
		return calcStandardFu(st, ctx, rules)
	}
}

func calcStandardFu(st Structure, ctx *GameContext, rules Rules) FuResult {
	b := FuBreakdown{Base: 20}
	win := ctx.WinningTile

	pinfu := win.IsValid() && IsPinfu(st, win, ctx)
	if pinfu && ctx.IsTsumo() {
		// 平和自摸恰好20符
		return FuResult{Total: 20, Breakdown: FuBreakdown{Base: 20, RawTotal: 20}}
	}

	if !ctx.IsOpen && !ctx.IsTsumo() {
		b.MenzenRon = 10
	}
	if ctx.IsTsumo() && !pinfu {
		b.Tsumo = 2
	}

	for _, m := range st.Melds {
		b.Melds += meldFu(m, st, ctx)
	}
	b.Pair = pairFu(st.Pair, ctx, rules)

	if win.IsValid() && !pinfu {
		b.Wait = BestWaitFu(st, win)
	}

	b.RawTotal = b.Base + b.MenzenRon + b.Tsumo + b.Melds + b.Pair + b.Wait
	total := roundUpTo10(b.RawTotal)

	// 副露平和型保底30符
	if ctx.IsOpen && total < 30 {
		total = 30
	}
	return FuResult{Total: total, Breakdown: b}
}

// meldFu 面子符。荣和补成的刻子按明刻计,
// 但若和牌也出现在门前的顺子里(如11123听1),刻子仍按暗刻。
func meldFu(m Meld, st Structure, ctx *GameContext) int {
	switch m.Type {
	case GroupTypeChow:
		return 0
	case GroupTypePon:
		base := 2
		if m.Tile.IsYaoJiu() {
			base = 4
		}
		ronOnThis := !ctx.IsTsumo() && ctx.WinningTile.IsValid() &&
			ctx.WinningTile.Kind() == m.Tile.Kind()
		trueShanpon := ronOnThis && !winInClosedChow(ctx.WinningTile, st.Melds)
		if m.Open || trueShanpon {
			return base
		}
		return base * 2
	case GroupTypeKon:
		base := 8
		if m.Tile.IsYaoJiu() {
			base = 16
		}
		if m.Open {
			return base
		}
		return base * 2
	default:
		return 0
	}
}

// 和牌是否落在门前顺子里,副露的顺子不算
func winInClosedChow(win Tile, melds []Meld) bool {
	if !win.IsSuit() {
		return false
	}
	for _, m := range melds {
		if m.Type == GroupTypeChow && !m.Open && m.Contains(win) {
			return true
		}
	}
	return false
}

// pairFu 将牌符:箭牌2符,场风自风各2符,连风按规则记4或2
func pairFu(pair Tile, ctx *GameContext, rules Rules) int {
	if pair.IsDragon() {
		return 2
	}
	if !pair.IsWind() {
		return 0
	}
	fu := 0
	if pair == ctx.RoundWind {
		fu += 2
	}
	if pair == ctx.SeatWind {
		fu += 2
	}
	if fu == 4 && !rules.DoubleWindFu4 {
		fu = 2
	}
	return fu
}

func roundUpTo10(v int) int {
	return (v + 9) / 10 * 10
}
