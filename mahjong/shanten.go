package mahjong

// ShantenResult 向听数与最优牌型
type ShantenResult struct {
	Shanten  int // -1和牌 0听牌
	BestType EHandStyle
}

// CalcShanten 三种牌型分别算向听取最小。
// calledMelds是已副露的面子数,副露牌不计入counts。
func CalcShanten(counts Counts, calledMelds int) ShantenResult {
	standard := standardShanten(counts, calledMelds)

	// 副露后无法做七对和国士
	if calledMelds > 0 {
		return ShantenResult{Shanten: standard, BestType: HandNormal}
	}

	chiitoi := chiitoitsuShanten(counts)
	kokushi := kokushiShanten(counts)

	switch {
	case standard <= chiitoi && standard <= kokushi:
		return ShantenResult{Shanten: standard, BestType: HandNormal}
	case chiitoi <= kokushi:
		return ShantenResult{Shanten: chiitoi, BestType: HandSevenPairs}
	default:
		return ShantenResult{Shanten: kokushi, BestType: HandThirteenOrphans}
	}
}

// 四面子一对:试不取将与逐种取将,公式
// 8 - 2x面子 - 有效搭子 - 将,块数超过4的搭子无效
func standardShanten(counts Counts, calledMelds int) int {
	total := counts.Total()

	// 听牌至少需要的手牌数,不足则按缺口抬高向听
	minTenpai := 1
	if calledMelds < 4 {
		minTenpai = TileCountInitNormal - 3*calledMelds
	}
	deficit := minTenpai - total
	if deficit < 0 {
		deficit = 0
	}

	melds, taatsu := countMeldsAndTaatsu(counts)
	best := shantenValue(melds, taatsu, false, calledMelds, deficit)

	for i := 0; i < TileKindCount; i++ {
		if counts[i] < 2 {
			continue
		}
		counts[i] -= 2
		melds, taatsu := countMeldsAndTaatsu(counts)
		if s := shantenValue(melds, taatsu, true, calledMelds, deficit); s < best {
			best = s
		}
		counts[i] += 2
	}
	return best
}

func countMeldsAndTaatsu(counts Counts) (melds, taatsu int) {
	for _, start := range []int{0, 9, 18} {
		m, t := countSuitBlocks(&counts, start)
		melds += m
		taatsu += t
	}
	// 字牌只有刻子与对子
	for i := 27; i < TileKindCount; i++ {
		if counts[i] >= 3 {
			melds++
			counts[i] -= 3
		}
		if counts[i] >= 2 {
			taatsu++
			counts[i] -= 2
		}
	}
	return melds, taatsu
}

// 单色拆块:先顺与先刻两种抽法取面子多者,剩牌再数搭子
func countSuitBlocks(counts *Counts, start int) (int, int) {
	m1, rem1 := extractMelds(*counts, start, true)
	m2, rem2 := extractMelds(*counts, start, false)

	melds, remaining := m1, rem1
	if m2 > m1 {
		melds, remaining = m2, rem2
	}

	taatsu := 0
	for i := start; i < start+9; i++ {
		if remaining[i] >= 2 {
			taatsu++
			remaining[i] -= 2
		}
	}
	for i := start; i < start+8; i++ {
		if remaining[i] >= 1 && remaining[i+1] >= 1 {
			taatsu++
			remaining[i]--
			remaining[i+1]--
		}
	}
	for i := start; i < start+7; i++ {
		if remaining[i] >= 1 && remaining[i+2] >= 1 {
			taatsu++
			remaining[i]--
			remaining[i+2]--
		}
	}

	copy(counts[start:start+9], remaining[start:start+9])
	return melds, taatsu
}

func extractMelds(counts Counts, start int, sequencesFirst bool) (int, Counts) {
	melds := 0
	if sequencesFirst {
		melds += takeSequences(&counts, start)
		melds += takeTriplets(&counts, start)
	} else {
		melds += takeTriplets(&counts, start)
		melds += takeSequences(&counts, start)
	}
	return melds, counts
}

func takeSequences(counts *Counts, start int) int {
	n := 0
	for i := start; i < start+7; i++ {
		for counts[i] >= 1 && counts[i+1] >= 1 && counts[i+2] >= 1 {
			n++
			counts[i]--
			counts[i+1]--
			counts[i+2]--
		}
	}
	return n
}

func takeTriplets(counts *Counts, start int) int {
	n := 0
	for i := start; i < start+9; i++ {
		for counts[i] >= 3 {
			n++
			counts[i] -= 3
		}
	}
	return n
}

func shantenValue(melds, taatsu int, hasPair bool, calledMelds, deficit int) int {
	totalMelds := melds + calledMelds
	if totalMelds >= 4 && hasPair && deficit == 0 {
		return -1
	}

	usefulTaatsu := 4 - totalMelds
	if usefulTaatsu < 0 {
		usefulTaatsu = 0
	}
	if taatsu < usefulTaatsu {
		usefulTaatsu = taatsu
	}

	cappedMelds := totalMelds
	if cappedMelds > 4 {
		cappedMelds = 4
	}

	shanten := 8 - 2*cappedMelds - usefulTaatsu
	if hasPair {
		shanten--
	}
	if blocks := cappedMelds + usefulTaatsu; blocks > 4 {
		shanten += blocks - 4
	}
	if shanten >= 0 && shanten < deficit {
		shanten = deficit
	}
	return shanten
}

// 七对:6 - 对子数 + max(0, 7-单种数)
func chiitoitsuShanten(counts Counts) int {
	pairs, kinds := 0, 0
	for _, n := range counts {
		if n >= 1 {
			kinds++
		}
		if n >= 2 {
			pairs++
		}
	}
	shanten := 6 - pairs
	if kinds < 7 {
		shanten += 7 - kinds
	}
	return shanten
}

// 国士:13 - 幺九种数 - 有将
func kokushiShanten(counts Counts) int {
	kinds, hasPair := 0, false
	for _, t := range YaoJiuTiles {
		n := counts.Get(t)
		if n >= 1 {
			kinds++
		}
		if n >= 2 {
			hasPair = true
		}
	}
	shanten := 13 - kinds
	if hasPair {
		shanten--
	}
	return shanten
}

// UkeireTile 能减少向听的一种牌
type UkeireTile struct {
	Tile      Tile
	Available int // 剩余张数 4-可见(手牌+副露)
}

type UkeireResult struct {
	Shanten    int
	BestType   EHandStyle
	Tiles      []UkeireTile
	TotalCount int
}

// CalcUkeire 对34种牌逐一试摸,只报告严格降低向听的牌。
// 副露占用的张数也算可见,剩余为0的牌种不报告。
func CalcUkeire(counts Counts, called []CalledMeld) UkeireResult {
	calledMelds := len(called)
	visible := counts
	for _, c := range called {
		for _, t := range c.Tiles {
			visible[t.Kind().Index()]++
		}
	}

	current := CalcShanten(counts, calledMelds)
	res := UkeireResult{Shanten: current.Shanten, BestType: current.BestType}

	for i := 0; i < TileKindCount; i++ {
		if visible[i] >= MaxSameTile {
			continue
		}
		counts[i]++
		improved := CalcShanten(counts, calledMelds)
		counts[i]--

		if improved.Shanten < current.Shanten {
			available := MaxSameTile - visible[i]
			res.Tiles = append(res.Tiles, UkeireTile{Tile: TileFromIndex(i), Available: available})
			res.TotalCount += available
		}
	}
	return res
}
