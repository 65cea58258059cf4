package mahjong

// GameContext 一次算分的局况,构造后不再修改
type GameContext struct {
	WinType     EWinType
	WinningTile Tile // TileNull表示未指定,由评估时推断
	RoundWind   Tile
	SeatWind    Tile

	IsOpen       bool
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Rinshan      bool
	Chankan      bool
	LastTile     bool // 海底/河底
	Tenhou       bool
	Chiihou      bool

	DoraIndicators []Tile
	UraIndicators  []Tile
	AkaCount       int
}

func NewGameContext() *GameContext {
	return &GameContext{
		WinType:     WinTypeRon,
		WinningTile: TileNull,
		RoundWind:   TileDong,
		SeatWind:    TileDong,
	}
}

func (c *GameContext) IsDealer() bool {
	return c.SeatWind == TileDong
}

func (c *GameContext) IsTsumo() bool {
	return c.WinType == WinTypeTsumo
}

// Validate 局况自相矛盾时立即拒绝
func (c *GameContext) Validate() error {
	if !c.RoundWind.IsWind() || !c.SeatWind.IsWind() {
		return ErrContextConflict
	}
	if len(c.UraIndicators) > 0 && !c.Riichi && !c.DoubleRiichi {
		return ErrContextConflict
	}
	if (c.Riichi || c.DoubleRiichi) && c.IsOpen {
		return ErrContextConflict
	}
	if c.Ippatsu && !c.Riichi && !c.DoubleRiichi {
		return ErrContextConflict
	}
	if c.Chankan && c.IsTsumo() {
		return ErrContextConflict
	}
	if c.Rinshan && !c.IsTsumo() {
		return ErrContextConflict
	}
	if c.Rinshan && c.Chankan {
		return ErrContextConflict
	}
	if c.Tenhou && (!c.IsDealer() || !c.IsTsumo() || c.IsOpen) {
		return ErrContextConflict
	}
	if c.Chiihou && (c.IsDealer() || !c.IsTsumo() || c.IsOpen) {
		return ErrContextConflict
	}
	for _, t := range append(append([]Tile{}, c.DoraIndicators...), c.UraIndicators...) {
		if !t.IsValid() || t.IsRed() {
			return ErrContextConflict
		}
	}
	return nil
}

// CountDora 宝牌番数:表宝+里宝(立直限定)+赤五,全部只加番不加符
func (c *GameContext) CountDora(counts Counts) (dora, ura, aka int) {
	for _, ind := range c.DoraIndicators {
		dora += counts.Get(ind.Next())
	}
	if c.Riichi || c.DoubleRiichi {
		for _, ind := range c.UraIndicators {
			ura += counts.Get(ind.Next())
		}
	}
	return dora, ura, c.AkaCount
}
