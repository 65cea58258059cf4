package mahjong

import (
	"strconv"
	"strings"
)

const (
	flagNormal = 1
	flagRed    = 2 // 赤五
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东 1z
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南 2z
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西 3z
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北 4z
	TileBai   Tile = MakeTile(ColorDragon, 0) // 白 5z
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发 6z
	TileZhong Tile = MakeTile(ColorDragon, 2) // 中 7z
)

// 幺九牌,国士的十三种
var YaoJiuTiles = []Tile{
	MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
	MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
	MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
	TileDong, TileNan, TileXi, TileBei,
	TileBai, TileFa, TileZhong,
}

// 绿一色的组成牌:23468条+发
var greenTiles = []Tile{
	MakeTile(ColorBamboo, 1), MakeTile(ColorBamboo, 2), MakeTile(ColorBamboo, 3),
	MakeTile(ColorBamboo, 5), MakeTile(ColorBamboo, 7),
	TileFa,
}

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | (point << 4) | flagNormal)
}

// MakeRedTile 赤五,仅数牌5有效
func MakeRedTile(color EColor) Tile {
	return Tile(int(color)<<8 | (4 << 4) | flagNormal | flagRed)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

// Point 0起
func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

// Kind 去掉赤五标记后的牌种,计数与比较都用它
func (t Tile) Kind() Tile {
	return t &^ flagRed
}

func (t Tile) IsRed() bool {
	return t.IsValid() && t&flagRed != 0
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorBamboo
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsWind() bool {
	return t.Color() == ColorWind
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.Color() == ColorDragon
}

func (t Tile) IsTerminal() bool { // 老头牌 19
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsYaoJiu() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool { // 中张牌 2-8
	return t.IsSuit() && t.Point() > 0 && t.Point() < 8
}

func (t Tile) IsGreen() bool {
	for _, g := range greenTiles {
		if t.Kind() == g {
			return true
		}
	}
	return false
}

// Index 34种牌的序号:万0-8 筒9-17 条18-26 风27-30 箭31-33
func (t Tile) Index() int {
	return IndexBeginByColor[t.Color()] + t.Point()
}

func TileFromIndex(i int) Tile {
	for c := ColorEnd - 1; c >= ColorBegin; c-- {
		if i >= IndexBeginByColor[c] {
			return MakeTile(c, i-IndexBeginByColor[c])
		}
	}
	return TileNull
}

// Next 宝牌指示的下一张:数牌9进1,风东南西北循环,箭白发中循环
func (t Tile) Next() Tile {
	c, p := t.Info()
	if p+1 >= PointCountByColor[c] {
		return MakeTile(c, 0)
	}
	return MakeTile(c, p+1)
}

func (t Tile) Name() string {
	switch t.Color() {
	case ColorCharacter:
		return t.pointName() + "m"
	case ColorDot:
		return t.pointName() + "p"
	case ColorBamboo:
		return t.pointName() + "s"
	case ColorWind, ColorDragon:
		return strconv.Itoa(t.Index()-IndexBeginByColor[ColorWind]+1) + "z"
	default:
		return ""
	}
}

func (t Tile) pointName() string {
	if t.IsRed() {
		return "0"
	}
	return strconv.Itoa(t.Point() + 1)
}

func (t Tile) String() string {
	return t.Name()
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ",")
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tiles(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

func makeTiles(t Tile, count int) []Tile {
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// Counts 34种牌的张数表
type Counts [TileKindCount]int

func NewCounts(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		c[t.Kind().Index()]++
	}
	return c
}

func (c *Counts) Add(t Tile) {
	c[t.Kind().Index()]++
}

func (c *Counts) Remove(t Tile) {
	c[t.Kind().Index()]--
}

func (c Counts) Get(t Tile) int {
	return c[t.Kind().Index()]
}

func (c Counts) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

func (c Counts) Tiles() []Tile {
	res := make([]Tile, 0, c.Total())
	for i, n := range c {
		for k := 0; k < n; k++ {
			res = append(res, TileFromIndex(i))
		}
	}
	return res
}
