package mahjong

import "sort"

// Structure 一种合法的手牌拆解
type Structure struct {
	Kind  EHandStyle
	Melds []Meld // 四面子,含副露
	Pair  Tile   // 将牌,国士为重复的那张
	Pairs []Tile // 七对
}

// Name 拆解的文字描述
func (s Structure) Name() string {
	switch s.Kind {
	case HandSevenPairs:
		return "chiitoitsu " + TilesName(s.Pairs)
	case HandThirteenOrphans:
		return "kokushi pair " + s.Pair.Name()
	default:
		name := ""
		for i, m := range s.Melds {
			if i > 0 {
				name += " "
			}
			name += m.Name()
		}
		return name + " pair " + s.Pair.Name()
	}
}

// 全顺子
func (s Structure) allChows() bool {
	for _, m := range s.Melds {
		if m.Type != GroupTypeChow {
			return false
		}
	}
	return s.Kind == HandNormal
}

// Decompose 枚举全部合法拆解:四面子一对、七对、国士。
// 副露是固定面子,不参与搜索;七对与国士要求门前清。
func Decompose(counts Counts, called []CalledMeld) []Structure {
	var res []Structure
	res = append(res, decomposeStandard(counts, called)...)
	if len(called) == 0 {
		if st, ok := decomposeSevenPairs(counts); ok {
			res = append(res, st)
		}
		if st, ok := decomposeKokushi(counts); ok {
			res = append(res, st)
		}
	}
	return res
}

func decomposeStandard(counts Counts, called []CalledMeld) []Structure {
	meldsNeeded := 4 - len(called)
	if meldsNeeded < 0 {
		return nil
	}

	fixed := make([]Meld, len(called))
	for i, c := range called {
		fixed[i] = c.Meld
	}

	var res []Structure
	for i := 0; i < TileKindCount; i++ {
		if counts[i] < 2 {
			continue
		}
		pair := TileFromIndex(i)
		counts[i] -= 2
		for _, combo := range findMeldCombinations(&counts, meldsNeeded) {
			melds := append(append([]Meld{}, fixed...), combo...)
			sort.Slice(melds, func(a, b int) bool { return melds[a].order() < melds[b].order() })
			res = appendUniqueStructure(res, Structure{Kind: HandNormal, Melds: melds, Pair: pair})
		}
		counts[i] += 2
	}
	return res
}

// findMeldCombinations 从最小的未分配牌开始回溯,
// 先试刻子再试顺子,牌必须恰好用完
func findMeldCombinations(counts *Counts, needed int) [][]Meld {
	lowest := -1
	for i := 0; i < TileKindCount; i++ {
		if counts[i] > 0 {
			lowest = i
			break
		}
	}
	if lowest < 0 {
		if needed == 0 {
			return [][]Meld{{}}
		}
		return nil
	}
	if needed == 0 {
		return nil
	}

	var res [][]Meld
	tile := TileFromIndex(lowest)

	if counts[lowest] >= 3 {
		counts[lowest] -= 3
		for _, rest := range findMeldCombinations(counts, needed-1) {
			res = append(res, append([]Meld{NewPon(tile)}, rest...))
		}
		counts[lowest] += 3
	}

	if tile.IsSuit() && tile.Point() <= 6 &&
		counts[lowest+1] > 0 && counts[lowest+2] > 0 {
		counts[lowest]--
		counts[lowest+1]--
		counts[lowest+2]--
		for _, rest := range findMeldCombinations(counts, needed-1) {
			res = append(res, append([]Meld{NewChow(tile)}, rest...))
		}
		counts[lowest]++
		counts[lowest+1]++
		counts[lowest+2]++
	}

	return res
}

func appendUniqueStructure(res []Structure, st Structure) []Structure {
	for _, old := range res {
		if old.Pair == st.Pair && sameMelds(old.Melds, st.Melds) {
			return res
		}
	}
	return append(res, st)
}

func sameMelds(a, b []Meld) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// 七对:恰好七种牌各两张
func decomposeSevenPairs(counts Counts) (Structure, bool) {
	var pairs []Tile
	for i, n := range counts {
		switch n {
		case 0:
		case 2:
			pairs = append(pairs, TileFromIndex(i))
		default:
			return Structure{}, false
		}
	}
	if len(pairs) != 7 {
		return Structure{}, false
	}
	return Structure{Kind: HandSevenPairs, Pairs: pairs}, true
}

// 国士:十三种幺九各至少一张,恰一种两张
func decomposeKokushi(counts Counts) (Structure, bool) {
	pair := TileNull
	total := 0
	for _, t := range YaoJiuTiles {
		n := counts.Get(t)
		total += n
		switch n {
		case 1:
		case 2:
			if pair != TileNull {
				return Structure{}, false
			}
			pair = t
		default:
			return Structure{}, false
		}
	}
	if pair == TileNull || total != counts.Total() {
		return Structure{}, false
	}
	return Structure{Kind: HandThirteenOrphans, Pair: pair}, true
}
