package service_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/service"
	"google.golang.org/protobuf/types/known/structpb"
)

func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	return s
}

func TestParseScoreRequest(t *testing.T) {
	req, err := service.ParseScoreRequest(request(t, map[string]any{
		"hand":      "234456m789p345s99p",
		"win_tile":  "3s",
		"tsumo":     true,
		"riichi":    true,
		"seat_wind": "2z",
		"dora":      []any{"4m"},
		"ura":       []any{"3p"},
	}))
	if err != nil {
		t.Fatalf("ParseScoreRequest: %v", err)
	}
	if len(req.Hand.Tiles) != 14 {
		t.Errorf("tiles = %d, want 14", len(req.Hand.Tiles))
	}
	ctx := req.Ctx
	if !ctx.IsTsumo() || !ctx.Riichi {
		t.Errorf("ctx = %+v, want tsumo riichi", ctx)
	}
	if ctx.SeatWind != mahjong.TileNan {
		t.Errorf("seat wind = %v, want 2z", ctx.SeatWind)
	}
	if len(ctx.DoraIndicators) != 1 || len(ctx.UraIndicators) != 1 {
		t.Errorf("indicators = %d/%d, want 1/1", len(ctx.DoraIndicators), len(ctx.UraIndicators))
	}
}

func TestParseScoreRequestErrors(t *testing.T) {
	type Case struct {
		fields map[string]any
	}
	cases := []Case{
		{fields: map[string]any{}},
		{fields: map[string]any{"hand": "12"}},
		{fields: map[string]any{"hand": "123m456p789s11122z", "win_tile": "0z"}},
		{fields: map[string]any{"hand": "123m456p789s11122z", "seat_wind": "xx"}},
		{fields: map[string]any{"hand": "123m456p789s11122z", "dora": []any{"9x"}}},
		{fields: map[string]any{"hand": "123m456p789s11122z", "dora": []any{-1}}},
	}
	for i, c := range cases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			if _, err := service.ParseScoreRequest(request(t, c.fields)); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestParseScoreRequestTileCodes(t *testing.T) {
	// 服务端传int32牌码,与牌谱串等价
	ind := mahjong.MakeTile(mahjong.ColorCharacter, 3)
	req, err := service.ParseScoreRequest(request(t, map[string]any{
		"hand": "123m456p789s11122z",
		"dora": []any{ind.ToInt32()},
	}))
	if err != nil {
		t.Fatalf("ParseScoreRequest: %v", err)
	}
	if len(req.Ctx.DoraIndicators) != 1 || req.Ctx.DoraIndicators[0] != ind {
		t.Errorf("dora = %v, want [4m]", req.Ctx.DoraIndicators)
	}
}

func TestScoreFields(t *testing.T) {
	req, err := service.ParseScoreRequest(request(t, map[string]any{
		"hand":      "234456m789p345s99p",
		"win_tile":  "3s",
		"tsumo":     true,
		"seat_wind": "2z",
	}))
	if err != nil {
		t.Fatalf("ParseScoreRequest: %v", err)
	}
	res, err := mahjong.Evaluate(req.Hand, req.Ctx, mahjong.DefaultRules())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	fields := service.ScoreFields(res)
	if fields["han"] != 2 {
		t.Errorf("han = %v, want 2", fields["han"])
	}
	if fields["fu"] != 20 {
		t.Errorf("fu = %v, want 20", fields["fu"])
	}
	pay := fields["payment"].(map[string]any)
	if pay["total"] != int64(1500) {
		t.Errorf("total = %v, want 1500", pay["total"])
	}
	yaku := fields["yaku"].([]any)
	if len(yaku) != 2 {
		t.Errorf("yaku = %v, want pinfu and tsumo", yaku)
	}

	// structpb要求所有值可转换
	if _, err := structpb.NewStruct(fields); err != nil {
		t.Errorf("NewStruct: %v", err)
	}
}

func TestShantenFields(t *testing.T) {
	res := mahjong.CalcUkeire(handCounts(t, "123m456p789s1112z"), nil)
	fields := service.ShantenFields(res)
	if fields["shanten"] != 0 {
		t.Errorf("shanten = %v, want 0", fields["shanten"])
	}
	if fields["best_type"] != "standard" {
		t.Errorf("best_type = %v, want standard", fields["best_type"])
	}
	tiles := fields["tiles"].([]any)
	if len(tiles) != 1 {
		t.Fatalf("tiles = %v, want [2z]", tiles)
	}
	wait := tiles[0].(map[string]any)
	if wait["tile"] != "2z" || wait["code"] != mahjong.TileNan.ToInt32() {
		t.Errorf("wait = %v, want 2z with its code", wait)
	}
	if _, err := structpb.NewStruct(fields); err != nil {
		t.Errorf("NewStruct: %v", err)
	}
}
