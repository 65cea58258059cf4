package mahjong

// DetectWaits 给定拆解与和牌,列出所有可能的听牌方式。
// 同一拆解里一张牌可能同时完成对子与顺子,全部保留。
func DetectWaits(st Structure, win Tile) []EWaitType {
	win = win.Kind()
	switch st.Kind {
	case HandSevenPairs:
		return []EWaitType{WaitTanki}
	case HandThirteenOrphans:
		if st.Pair == win {
			return []EWaitType{WaitKokushi13}
		}
		return []EWaitType{WaitTanki}
	}

	var waits []EWaitType
	if st.Pair == win {
		waits = append(waits, WaitTanki)
	}
	for _, m := range st.Melds {
		switch m.Type {
		case GroupTypePon:
			if m.Tile.Kind() == win {
				waits = append(waits, WaitShanpon)
			}
		case GroupTypeChow:
			if w, ok := chowWait(m.Tile, win); ok {
				waits = append(waits, w)
			}
		}
	}
	return waits
}

// 顺子听型:边张只在123听3与789听7,嵌张听中间,其余两面
func chowWait(start, win Tile) (EWaitType, bool) {
	if start.Color() != win.Color() {
		return 0, false
	}
	s, w := start.Point(), win.Point()
	switch w {
	case s:
		if s+2 == 8 {
			return WaitPenchan, true
		}
		return WaitRyanmen, true
	case s + 1:
		return WaitKanchan, true
	case s + 2:
		if s == 0 {
			return WaitPenchan, true
		}
		return WaitRyanmen, true
	default:
		return 0, false
	}
}

// BestWaitFu 非平和时取符数最高的听型
func BestWaitFu(st Structure, win Tile) int {
	best := 0
	for _, w := range DetectWaits(st, win) {
		if w.Fu() > best {
			best = w.Fu()
		}
	}
	return best
}

// HasRyanmenWait 平和的前提之一
func HasRyanmenWait(st Structure, win Tile) bool {
	for _, w := range DetectWaits(st, win) {
		if w == WaitRyanmen {
			return true
		}
	}
	return false
}

// IsPinfu 平和:门清、四顺子、将牌无役、两面听
func IsPinfu(st Structure, win Tile, ctx *GameContext) bool {
	if ctx.IsOpen || st.Kind != HandNormal || !st.allChows() {
		return false
	}
	if st.Pair.IsDragon() || st.Pair == ctx.RoundWind || st.Pair == ctx.SeatWind {
		return false
	}
	if !win.IsValid() {
		return false
	}
	return HasRyanmenWait(st, win)
}
