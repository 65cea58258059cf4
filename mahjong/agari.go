package mahjong

// Evaluate 对一手牌完整算分:拆解、判役、算符、选最优。
// 未指定和牌时逐张试算,取得点最高的一张。
func Evaluate(hand *ParsedHand, ctx *GameContext, rules Rules) (*ScoringResult, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if err := hand.Validate(); err != nil {
		return nil, err
	}

	freeCounts := NewCounts(hand.Tiles)
	allCounts := NewCounts(hand.AllTiles())

	structures := Decompose(freeCounts, hand.Called)
	if len(structures) == 0 {
		return nil, ErrNoValidStructure
	}

	c := *ctx
	if hand.AkaCount > 0 {
		c.AkaCount = hand.AkaCount
	}
	for _, called := range hand.Called {
		if called.Meld.Open {
			c.IsOpen = true
		}
	}

	if c.WinningTile.IsValid() {
		best := scoreStructures(structures, allCounts, &c, rules)
		if best == nil {
			return nil, ErrNoYaku
		}
		return best, nil
	}

	// 推断和牌:和牌必在手牌里
	var best *ScoringResult
	for _, i := range uniqueKinds(hand.Tiles) {
		cand := c
		cand.WinningTile = TileFromIndex(i)
		res := scoreStructures(structures, allCounts, &cand, rules)
		if betterResult(res, best) {
			best = res
		}
	}
	if best == nil {
		return nil, ErrNoWinningTile
	}
	return best, nil
}

func uniqueKinds(tiles []Tile) []int {
	var seen [TileKindCount]bool
	var res []int
	for _, t := range tiles {
		i := t.Kind().Index()
		if !seen[i] {
			seen[i] = true
			res = append(res, i)
		}
	}
	return res
}

// 对每种拆解算分,取最优
func scoreStructures(structures []Structure, counts Counts, ctx *GameContext, rules Rules) *ScoringResult {
	var best *ScoringResult
	for _, st := range structures {
		yaku := DetectYaku(st, counts, ctx)
		// 无役不和,只有宝牌也不行
		if len(yaku.Yaku) == 0 {
			continue
		}
		res := CalcScore(st, yaku, ctx, rules)
		if betterResult(&res, best) {
			r := res
			best = &r
		}
	}
	return best
}

// 优先得点,再比番数,再比低符,最后按拆解的规范顺序保证确定性
func betterResult(a, b *ScoringResult) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if a.Payment.Total != b.Payment.Total {
		return a.Payment.Total > b.Payment.Total
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	if a.Fu.Total != b.Fu.Total {
		return a.Fu.Total < b.Fu.Total
	}
	return structureLess(a.Structure, b.Structure)
}

func structureLess(a, b Structure) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	for i := range a.Melds {
		if i >= len(b.Melds) {
			return false
		}
		if a.Melds[i].order() != b.Melds[i].order() {
			return a.Melds[i].order() < b.Melds[i].order()
		}
	}
	return a.Pair < b.Pair
}
