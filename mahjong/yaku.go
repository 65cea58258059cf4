package mahjong

// Yaku 役种
type Yaku int

const (
	YakuNone Yaku = iota
	// 一番
	YakuRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuIipeikou
	YakuTanyao
	YakuHaku      // 白
	YakuHatsu     // 发
	YakuChun      // 中
	YakuSeatWind  // 自风
	YakuRoundWind // 场风
	YakuRinshan
	YakuChankan
	YakuHaitei
	YakuHoutei
	// 二番
	YakuDoubleRiichi
	YakuToitoi
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuIttsu
	YakuChiitoitsu
	YakuChanta
	YakuSanAnkou
	YakuSanKantsu
	YakuHonroutou
	YakuShousangen
	// 三番
	YakuHonitsu
	YakuJunchan
	YakuRyanpeikou
	// 六番
	YakuChinitsu
	// 役满
	YakuTenhou
	YakuChiihou
	YakuKokushiMusou
	YakuSuuankou
	YakuDaisangen
	YakuShousuushii
	YakuDaisuushii
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuChuurenPoutou
	// 双倍役满
	YakuKokushi13Wait
	YakuSuuankouTanki
	YakuJunseiChuuren
)

type yakuInfo struct {
	name    string
	han     int
	openHan int // 0表示副露无效
	yakuman bool
}

var yakuTable = map[Yaku]yakuInfo{
	YakuRiichi:         {"riichi", 1, 0, false},
	YakuIppatsu:        {"ippatsu", 1, 0, false},
	YakuMenzenTsumo:    {"menzen tsumo", 1, 0, false},
	YakuPinfu:          {"pinfu", 1, 0, false},
	YakuIipeikou:       {"iipeikou", 1, 0, false},
	YakuTanyao:         {"tanyao", 1, 1, false},
	YakuHaku:           {"yakuhai haku", 1, 1, false},
	YakuHatsu:          {"yakuhai hatsu", 1, 1, false},
	YakuChun:           {"yakuhai chun", 1, 1, false},
	YakuSeatWind:       {"seat wind", 1, 1, false},
	YakuRoundWind:      {"round wind", 1, 1, false},
	YakuRinshan:        {"rinshan kaihou", 1, 1, false},
	YakuChankan:        {"chankan", 1, 1, false},
	YakuHaitei:         {"haitei raoyue", 1, 1, false},
	YakuHoutei:         {"houtei raoyui", 1, 1, false},
	YakuDoubleRiichi:   {"double riichi", 2, 0, false},
	YakuToitoi:         {"toitoi", 2, 2, false},
	YakuSanshokuDoujun: {"sanshoku doujun", 2, 1, false},
	YakuSanshokuDoukou: {"sanshoku doukou", 2, 2, false},
	YakuIttsu:          {"ittsu", 2, 1, false},
	YakuChiitoitsu:     {"chiitoitsu", 2, 0, false},
	YakuChanta:         {"chanta", 2, 1, false},
	YakuSanAnkou:       {"san ankou", 2, 2, false},
	YakuSanKantsu:      {"san kantsu", 2, 2, false},
	YakuHonroutou:      {"honroutou", 2, 2, false},
	YakuShousangen:     {"shousangen", 2, 2, false},
	YakuHonitsu:        {"honitsu", 3, 2, false},
	YakuJunchan:        {"junchan", 3, 2, false},
	YakuRyanpeikou:     {"ryanpeikou", 3, 0, false},
	YakuChinitsu:       {"chinitsu", 6, 5, false},
	YakuTenhou:         {"tenhou", 13, 0, true},
	YakuChiihou:        {"chiihou", 13, 0, true},
	YakuKokushiMusou:   {"kokushi musou", 13, 0, true},
	YakuSuuankou:       {"suuankou", 13, 0, true},
	YakuDaisangen:      {"daisangen", 13, 13, true},
	YakuShousuushii:    {"shousuushii", 13, 13, true},
	YakuDaisuushii:     {"daisuushii", 13, 13, true},
	YakuTsuuiisou:      {"tsuuiisou", 13, 13, true},
	YakuChinroutou:     {"chinroutou", 13, 13, true},
	YakuRyuuiisou:      {"ryuuiisou", 13, 13, true},
	YakuChuurenPoutou:  {"chuuren poutou", 13, 0, true},
	YakuKokushi13Wait:  {"kokushi musou 13-wait", 26, 0, true},
	YakuSuuankouTanki:  {"suuankou tanki", 26, 0, true},
	YakuJunseiChuuren:  {"junsei chuuren poutou", 26, 0, true},
}

func (y Yaku) Name() string {
	return yakuTable[y].name
}

func (y Yaku) IsYakuman() bool {
	return yakuTable[y].yakuman
}

// Han 副露时取减番后的值,门清限定役返回0
func (y Yaku) Han(open bool) int {
	info := yakuTable[y]
	if open {
		return info.openHan
	}
	return info.han
}

// YakuResult 役种判定结果
type YakuResult struct {
	Yaku      []Yaku
	Han       int // 役的番数,不含宝牌
	Dora      int
	Ura       int
	Aka       int
	IsYakuman bool
}

// TotalHan 役满不计宝牌
func (r *YakuResult) TotalHan() int {
	if r.IsYakuman {
		return r.Han
	}
	return r.Han + r.Dora + r.Ura + r.Aka
}

// DetectYaku 枚举一种拆解下成立的全部役种。
// 役满成立时普通役与宝牌都不再累计。
func DetectYaku(st Structure, counts Counts, ctx *GameContext) YakuResult {
	var list []Yaku
	win := ctx.WinningTile

	// 天和地和
	if ctx.Tenhou && ctx.IsTsumo() && !ctx.IsOpen && ctx.IsDealer() {
		list = append(list, YakuTenhou)
	}
	if ctx.Chiihou && ctx.IsTsumo() && !ctx.IsOpen && !ctx.IsDealer() {
		list = append(list, YakuChiihou)
	}

	// 牌型役满
	switch st.Kind {
	case HandThirteenOrphans:
		if win.IsValid() && win.Kind() == st.Pair {
			list = append(list, YakuKokushi13Wait)
		} else {
			list = append(list, YakuKokushiMusou)
		}
	case HandSevenPairs:
		if allHonors(st.Pairs) {
			list = append(list, YakuTsuuiisou)
		} else if allTerminals(st.Pairs) {
			list = append(list, YakuChinroutou)
		}
	case HandNormal:
		if y := checkSuuankou(st, ctx); y != YakuNone {
			list = append(list, y)
		}
		if countDragonTriplets(st.Melds) == 3 {
			list = append(list, YakuDaisangen)
		}
		if y := checkFourWinds(st); y != YakuNone {
			list = append(list, y)
		}
		if st.Pair.IsHonor() && allTripletsOf(st.Melds, Tile.IsHonor) {
			list = append(list, YakuTsuuiisou)
		}
		if st.Pair.IsTerminal() && allTripletsOf(st.Melds, Tile.IsTerminal) {
			list = append(list, YakuChinroutou)
		}
		if checkRyuuiisou(st) {
			list = append(list, YakuRyuuiisou)
		}
		if !ctx.IsOpen {
			if y := checkChuuren(counts, ctx); y != YakuNone {
				list = append(list, y)
			}
		}
	}

	hasYakuman := false
	for _, y := range list {
		if y.IsYakuman() {
			hasYakuman = true
		}
	}

	if !hasYakuman {
		list = append(list, contextYaku(ctx)...)
		switch st.Kind {
		case HandSevenPairs:
			list = append(list, YakuChiitoitsu)
			if allSimples(st.Pairs) {
				list = append(list, YakuTanyao)
			}
			if allYaoJiu(st.Pairs) {
				list = append(list, YakuHonroutou)
			}
			if y := checkFlush(st.Pairs); y != YakuNone {
				list = append(list, y)
			}
		case HandNormal:
			list = append(list, standardYaku(st, ctx)...)
		}
	}

	isYakuman := false
	for _, y := range list {
		if y.IsYakuman() {
			isYakuman = true
		}
	}

	// 副露时剔除门清限定役
	han := 0
	kept := list[:0]
	for _, y := range list {
		h := y.Han(ctx.IsOpen)
		if ctx.IsOpen && h == 0 {
			continue
		}
		kept = append(kept, y)
		han += h
	}

	res := YakuResult{Yaku: kept, Han: han, IsYakuman: isYakuman}
	res.Dora, res.Ura, res.Aka = ctx.CountDora(counts)
	if isYakuman {
		res.Dora, res.Ura, res.Aka = 0, 0, 0
	}
	return res
}

// 局况役
func contextYaku(ctx *GameContext) []Yaku {
	var list []Yaku
	if (ctx.Riichi || ctx.DoubleRiichi) && !ctx.IsOpen {
		if ctx.DoubleRiichi {
			list = append(list, YakuDoubleRiichi)
		} else {
			list = append(list, YakuRiichi)
		}
		if ctx.Ippatsu {
			list = append(list, YakuIppatsu)
		}
	}
	if ctx.IsTsumo() && !ctx.IsOpen {
		list = append(list, YakuMenzenTsumo)
	}
	if ctx.Rinshan && ctx.IsTsumo() {
		list = append(list, YakuRinshan)
	}
	if ctx.Chankan && !ctx.IsTsumo() {
		list = append(list, YakuChankan)
	}
	if ctx.LastTile {
		if ctx.IsTsumo() {
			list = append(list, YakuHaitei)
		} else {
			list = append(list, YakuHoutei)
		}
	}
	return list
}

// 四面子一对的普通役
func standardYaku(st Structure, ctx *GameContext) []Yaku {
	var list []Yaku
	melds, pair := st.Melds, st.Pair
	win := ctx.WinningTile

	if allTilesSimple(st) {
		list = append(list, YakuTanyao)
	}
	if win.IsValid() && IsPinfu(st, win, ctx) {
		list = append(list, YakuPinfu)
	}
	if !ctx.IsOpen {
		if y := checkPeikou(melds); y != YakuNone {
			list = append(list, y)
		}
	}
	list = append(list, checkYakuhai(melds, ctx)...)

	if allTriplets(melds) {
		list = append(list, YakuToitoi)
	}
	if checkSanshokuDoujun(melds) {
		list = append(list, YakuSanshokuDoujun)
	}
	if checkSanshokuDoukou(melds) {
		list = append(list, YakuSanshokuDoukou)
	}
	if checkIttsu(melds) {
		list = append(list, YakuIttsu)
	}
	if checkChanta(melds, pair) && !checkJunchan(melds, pair) {
		list = append(list, YakuChanta)
	}
	if checkSanAnkou(st, ctx) {
		list = append(list, YakuSanAnkou)
	}
	if countKans(melds) == 3 {
		list = append(list, YakuSanKantsu)
	}
	if pair.IsYaoJiu() && allTripletsOf(melds, Tile.IsYaoJiu) {
		list = append(list, YakuHonroutou)
	}
	if countDragonTriplets(melds) == 2 && pair.IsDragon() {
		list = append(list, YakuShousangen)
	}
	if checkJunchan(melds, pair) {
		list = append(list, YakuJunchan)
	}
	if y := checkFlush(structureTiles(st)); y != YakuNone {
		list = append(list, y)
	}
	return list
}

func allHonors(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsHonor() {
			return false
		}
	}
	return true
}

func allTerminals(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsTerminal() {
			return false
		}
	}
	return true
}

func allSimples(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsSimple() {
			return false
		}
	}
	return true
}

func allYaoJiu(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsYaoJiu() {
			return false
		}
	}
	return true
}

func structureTiles(st Structure) []Tile {
	tiles := []Tile{st.Pair, st.Pair}
	for _, m := range st.Melds {
		tiles = append(tiles, m.Tiles()...)
	}
	return tiles
}

func allTilesSimple(st Structure) bool {
	return allSimples(structureTiles(st))
}

func allTriplets(melds []Meld) bool {
	for _, m := range melds {
		if !m.IsTriplet() {
			return false
		}
	}
	return true
}

// 刻子与杠都满足谓词,且没有顺子
func allTripletsOf(melds []Meld, pred func(Tile) bool) bool {
	for _, m := range melds {
		if !m.IsTriplet() || !pred(m.Tile) {
			return false
		}
	}
	return true
}

func countDragonTriplets(melds []Meld) int {
	n := 0
	for _, m := range melds {
		if m.IsTriplet() && m.Tile.IsDragon() {
			n++
		}
	}
	return n
}

func countKans(melds []Meld) int {
	n := 0
	for _, m := range melds {
		if m.Type == GroupTypeKon {
			n++
		}
	}
	return n
}

// 一杯口/二杯口
func checkPeikou(melds []Meld) Yaku {
	seqCount := map[Tile]int{}
	for _, m := range melds {
		if m.Type == GroupTypeChow {
			seqCount[m.Tile.Kind()]++
		}
	}
	pairs := 0
	for _, n := range seqCount {
		if n >= 2 {
			pairs++
		}
	}
	switch {
	case pairs >= 2:
		return YakuRyanpeikou
	case pairs == 1:
		return YakuIipeikou
	default:
		return YakuNone
	}
}

// 役牌:箭牌刻子必算,风牌刻子看场风自风,连风算两个
func checkYakuhai(melds []Meld, ctx *GameContext) []Yaku {
	var list []Yaku
	for _, m := range melds {
		if !m.IsTriplet() || !m.Tile.IsHonor() {
			continue
		}
		t := m.Tile
		switch {
		case t == TileBai:
			list = append(list, YakuHaku)
		case t == TileFa:
			list = append(list, YakuHatsu)
		case t == TileZhong:
			list = append(list, YakuChun)
		default:
			if t == ctx.RoundWind {
				list = append(list, YakuRoundWind)
			}
			if t == ctx.SeatWind {
				list = append(list, YakuSeatWind)
			}
		}
	}
	return list
}

// 三色同顺
func checkSanshokuDoujun(melds []Meld) bool {
	byPoint := map[int][]EColor{}
	for _, m := range melds {
		if m.Type == GroupTypeChow {
			byPoint[m.Tile.Point()] = append(byPoint[m.Tile.Point()], m.Tile.Color())
		}
	}
	for _, colors := range byPoint {
		if hasAllSuits(colors) {
			return true
		}
	}
	return false
}

// 三色同刻
func checkSanshokuDoukou(melds []Meld) bool {
	byPoint := map[int][]EColor{}
	for _, m := range melds {
		if m.IsTriplet() && m.Tile.IsSuit() {
			byPoint[m.Tile.Point()] = append(byPoint[m.Tile.Point()], m.Tile.Color())
		}
	}
	for _, colors := range byPoint {
		if hasAllSuits(colors) {
			return true
		}
	}
	return false
}

func hasAllSuits(colors []EColor) bool {
	var m, p, s bool
	for _, c := range colors {
		switch c {
		case ColorCharacter:
			m = true
		case ColorDot:
			p = true
		case ColorBamboo:
			s = true
		}
	}
	return m && p && s
}

// 一气通贯:同色123 456 789
func checkIttsu(melds []Meld) bool {
	bySuit := map[EColor][]int{}
	for _, m := range melds {
		if m.Type == GroupTypeChow {
			bySuit[m.Tile.Color()] = append(bySuit[m.Tile.Color()], m.Tile.Point())
		}
	}
	for _, points := range bySuit {
		var p0, p3, p6 bool
		for _, p := range points {
			switch p {
			case 0:
				p0 = true
			case 3:
				p3 = true
			case 6:
				p6 = true
			}
		}
		if p0 && p3 && p6 {
			return true
		}
	}
	return false
}

// 混全带幺九,要求至少一个顺子,否则属于混老头
func checkChanta(melds []Meld, pair Tile) bool {
	if !pair.IsYaoJiu() {
		return false
	}
	hasChow := false
	for _, m := range melds {
		switch m.Type {
		case GroupTypeChow:
			hasChow = true
			if m.Tile.Point() != 0 && m.Tile.Point() != 6 {
				return false
			}
		default:
			if !m.Tile.IsYaoJiu() {
				return false
			}
		}
	}
	return hasChow
}

// 纯全带幺九,不含字牌
func checkJunchan(melds []Meld, pair Tile) bool {
	if !pair.IsTerminal() {
		return false
	}
	hasChow := false
	for _, m := range melds {
		switch m.Type {
		case GroupTypeChow:
			hasChow = true
			if m.Tile.Point() != 0 && m.Tile.Point() != 6 {
				return false
			}
		default:
			if !m.Tile.IsTerminal() {
				return false
			}
		}
	}
	return hasChow
}

// 混一色/清一色
func checkFlush(tiles []Tile) Yaku {
	foundSuit := ColorUndefined
	hasHonor := false
	for _, t := range tiles {
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		if foundSuit == ColorUndefined {
			foundSuit = t.Color()
		} else if foundSuit != t.Color() {
			return YakuNone
		}
	}
	if foundSuit == ColorUndefined {
		return YakuNone
	}
	if hasHonor {
		return YakuHonitsu
	}
	return YakuChinitsu
}

// 三暗刻:荣和补成的刻子不算暗刻,除非和牌能改作顺子解释
func checkSanAnkou(st Structure, ctx *GameContext) bool {
	win := ctx.WinningTile
	winInChow := false
	if win.IsValid() {
		for _, m := range st.Melds {
			if m.Type == GroupTypeChow && m.Contains(win) {
				winInChow = true
				break
			}
		}
	}

	concealed := 0
	for _, m := range st.Melds {
		switch m.Type {
		case GroupTypePon:
			if m.Open {
				continue
			}
			if ctx.IsTsumo() {
				concealed++
			} else if !win.IsValid() || m.Tile.Kind() != win.Kind() || winInChow {
				concealed++
			}
		case GroupTypeKon:
			if !m.Open {
				concealed++
			}
		}
	}
	return concealed == 3
}

// 四暗刻:单骑自摸双倍役满,单骑荣和单倍。
// 荣和补成刻子的不算暗刻,凑不满四个时不成立。
func checkSuuankou(st Structure, ctx *GameContext) Yaku {
	win := ctx.WinningTile
	if !ctx.IsTsumo() && !win.IsValid() {
		return YakuNone
	}

	concealed := 0
	for _, m := range st.Melds {
		switch m.Type {
		case GroupTypeChow:
			return YakuNone
		case GroupTypePon:
			if m.Open {
				continue
			}
			if !ctx.IsTsumo() && win.IsValid() && m.Tile.Kind() == win.Kind() {
				continue
			}
			concealed++
		case GroupTypeKon:
			if !m.Open {
				concealed++
			}
		}
	}
	if concealed != 4 {
		return YakuNone
	}
	if ctx.IsTsumo() && win.IsValid() && win.Kind() == st.Pair {
		return YakuSuuankouTanki
	}
	return YakuSuuankou
}

// 小四喜/大四喜
func checkFourWinds(st Structure) Yaku {
	winds := map[Tile]bool{}
	for _, m := range st.Melds {
		if m.IsTriplet() && m.Tile.IsWind() {
			winds[m.Tile.Kind()] = true
		}
	}
	switch len(winds) {
	case 4:
		return YakuDaisuushii
	case 3:
		if st.Pair.IsWind() && !winds[st.Pair] {
			return YakuShousuushii
		}
	}
	return YakuNone
}

// 绿一色:顺子只许234条
func checkRyuuiisou(st Structure) bool {
	if !st.Pair.IsGreen() {
		return false
	}
	green234 := MakeTile(ColorBamboo, 1)
	for _, m := range st.Melds {
		if m.Type == GroupTypeChow {
			if m.Tile.Kind() != green234 {
				return false
			}
		} else if !m.Tile.IsGreen() {
			return false
		}
	}
	return true
}

// 九莲宝灯:1112345678999+任意一张,多出的恰是和牌则为纯正
func checkChuuren(counts Counts, ctx *GameContext) Yaku {
	suit := ColorUndefined
	for i, n := range counts {
		if n == 0 {
			continue
		}
		t := TileFromIndex(i)
		if t.IsHonor() {
			return YakuNone
		}
		if suit == ColorUndefined {
			suit = t.Color()
		} else if suit != t.Color() {
			return YakuNone
		}
	}
	if suit == ColorUndefined {
		return YakuNone
	}

	total := 0
	extra := -1
	for p := 0; p < 9; p++ {
		n := counts.Get(MakeTile(suit, p))
		total += n
		required := 1
		if p == 0 || p == 8 {
			required = 3
		}
		if n < required || n > required+1 {
			return YakuNone
		}
		if n == required+1 {
			if extra >= 0 {
				return YakuNone
			}
			extra = p
		}
	}
	if total != 14 {
		return YakuNone
	}

	win := ctx.WinningTile
	if win.IsValid() && win.Color() == suit && win.Point() == extra {
		return YakuJunseiChuuren
	}
	return YakuChuurenPoutou
}
