package mahjong

// Meld 面子:顺子记最小牌,刻子杠记本牌
type Meld struct {
	Type EGroupType
	Tile Tile
	Open bool
	Kon  KonType
}

func NewChow(t Tile) Meld {
	return Meld{Type: GroupTypeChow, Tile: t}
}

func NewChowOpen(t Tile) Meld {
	return Meld{Type: GroupTypeChow, Tile: t, Open: true}
}

func NewPon(t Tile) Meld {
	return Meld{Type: GroupTypePon, Tile: t}
}

func NewPonOpen(t Tile) Meld {
	return Meld{Type: GroupTypePon, Tile: t, Open: true}
}

func NewKon(t Tile, kon KonType) Meld {
	return Meld{Type: GroupTypeKon, Tile: t, Open: kon.IsOpen(), Kon: kon}
}

func (m Meld) IsTriplet() bool {
	return m.Type == GroupTypePon || m.Type == GroupTypeKon
}

// Tiles 展开成具体牌
func (m Meld) Tiles() []Tile {
	switch m.Type {
	case GroupTypeChow:
		c, p := m.Tile.Info()
		return []Tile{m.Tile, MakeTile(c, p+1), MakeTile(c, p+2)}
	case GroupTypePon:
		return makeTiles(m.Tile, 3)
	case GroupTypeKon:
		return makeTiles(m.Tile, 4)
	default:
		return nil
	}
}

// Contains 面子是否含有此牌种
func (m Meld) Contains(t Tile) bool {
	k := t.Kind()
	for _, mt := range m.Tiles() {
		if mt.Kind() == k {
			return true
		}
	}
	return false
}

func (m Meld) Name() string {
	return TilesName(m.Tiles())
}

// 面子排序用的权重:先按类型,再按牌
func (m Meld) order() int {
	return int(m.Type)<<16 | int(m.Tile.Kind())
}

// CalledMeld 副露,牌型固定,不参与拆解
type CalledMeld struct {
	Meld  Meld
	Tiles []Tile
}

// 副露合法性:3张刻子或顺子,4张为杠
func (c CalledMeld) validate() error {
	n := len(c.Tiles)
	switch c.Meld.Type {
	case GroupTypeChow, GroupTypePon:
		if n != 3 {
			return ErrInvalidMeld
		}
	case GroupTypeKon:
		if n != 4 {
			return ErrInvalidMeld
		}
	default:
		return ErrInvalidMeld
	}
	return nil
}
