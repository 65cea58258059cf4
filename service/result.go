package service

import (
	"fmt"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"google.golang.org/protobuf/types/known/structpb"
)

// ScoreRequest 算分请求,由structpb载荷解出
type ScoreRequest struct {
	Hand *mahjong.ParsedHand
	Ctx  *mahjong.GameContext
}

func ParseScoreRequest(s *structpb.Struct) (*ScoreRequest, error) {
	fields := s.GetFields()

	handStr := fields["hand"].GetStringValue()
	if handStr == "" {
		return nil, fmt.Errorf("missing hand")
	}
	hand, err := mahjong.ParseHand(handStr)
	if err != nil {
		return nil, err
	}

	ctx := mahjong.NewGameContext()
	if fields["tsumo"].GetBoolValue() {
		ctx.WinType = mahjong.WinTypeTsumo
	}
	ctx.Riichi = fields["riichi"].GetBoolValue()
	ctx.DoubleRiichi = fields["double_riichi"].GetBoolValue()
	ctx.Ippatsu = fields["ippatsu"].GetBoolValue()
	ctx.Rinshan = fields["rinshan"].GetBoolValue()
	ctx.Chankan = fields["chankan"].GetBoolValue()
	ctx.LastTile = fields["last_tile"].GetBoolValue()
	ctx.Tenhou = fields["tenhou"].GetBoolValue()
	ctx.Chiihou = fields["chiihou"].GetBoolValue()

	if v := fields["win_tile"].GetStringValue(); v != "" {
		if ctx.WinningTile, err = mahjong.ParseTile(v); err != nil {
			return nil, err
		}
	}
	if v := fields["seat_wind"].GetStringValue(); v != "" {
		if ctx.SeatWind, err = mahjong.ParseTile(v); err != nil {
			return nil, err
		}
	}
	if v := fields["round_wind"].GetStringValue(); v != "" {
		if ctx.RoundWind, err = mahjong.ParseTile(v); err != nil {
			return nil, err
		}
	}
	if ctx.DoraIndicators, err = parseTileList(fields["dora"].GetListValue()); err != nil {
		return nil, err
	}
	if ctx.UraIndicators, err = parseTileList(fields["ura"].GetListValue()); err != nil {
		return nil, err
	}
	return &ScoreRequest{Hand: hand, Ctx: ctx}, nil
}

// 牌列表两种写法都收:牌谱串给人用,int32牌码给服务用
func parseTileList(list *structpb.ListValue) ([]mahjong.Tile, error) {
	if list == nil {
		return nil, nil
	}
	var tiles []mahjong.Tile
	var codes []int32
	for _, v := range list.GetValues() {
		if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
			codes = append(codes, int32(n.NumberValue))
			continue
		}
		t, err := mahjong.ParseTile(v.GetStringValue())
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	for _, t := range mahjong.Int32Tiles(codes) {
		if !t.IsValid() {
			return nil, fmt.Errorf("bad tile code %d", int32(t))
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// ScoreFields 算分结果的应答字段
func ScoreFields(res *mahjong.ScoringResult) map[string]any {
	open := false
	for _, m := range res.Structure.Melds {
		if m.Open {
			open = true
		}
	}
	yaku := make([]any, 0, len(res.Yaku.Yaku))
	for _, y := range res.Yaku.Yaku {
		yaku = append(yaku, map[string]any{
			"name": y.Name(),
			"han":  y.Han(open),
		})
	}
	return map[string]any{
		"han":             res.Han,
		"fu":              res.Fu.Total,
		"level":           res.Level.String(),
		"basic_points":    res.BasicPoints,
		"yakuman":         res.Yaku.IsYakuman,
		"counted_yakuman": res.IsCountedYakuman,
		"dora":            res.Yaku.Dora,
		"ura":             res.Yaku.Ura,
		"aka":             res.Yaku.Aka,
		"structure":       res.Structure.Name(),
		"yaku":            yaku,
		"payment": map[string]any{
			"total":           res.Payment.Total,
			"from_dealer":     res.Payment.FromDealer,
			"from_non_dealer": res.Payment.FromNonDealer,
			"from_discarder":  res.Payment.FromDiscarder,
		},
	}
}

// ShantenFields 向听结果的应答字段
func ShantenFields(res mahjong.UkeireResult) map[string]any {
	tiles := make([]any, 0, len(res.Tiles))
	for _, t := range res.Tiles {
		tiles = append(tiles, map[string]any{
			"tile":      t.Tile.Name(),
			"code":      t.Tile.ToInt32(),
			"available": t.Available,
		})
	}
	return map[string]any{
		"shanten":     res.Shanten,
		"best_type":   handStyleName(res.BestType),
		"tiles":       tiles,
		"total_count": res.TotalCount,
	}
}

func handStyleName(s mahjong.EHandStyle) string {
	switch s {
	case mahjong.HandSevenPairs:
		return "chiitoitsu"
	case mahjong.HandThirteenOrphans:
		return "kokushi"
	default:
		return "standard"
	}
}
