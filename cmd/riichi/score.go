package main

import (
	"fmt"
	"os"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/service"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/spf13/cobra"
)

var scoreFlags struct {
	win          string
	tsumo        bool
	riichi       bool
	doubleRiichi bool
	ippatsu      bool
	rinshan      bool
	chankan      bool
	lastTile     bool
	tenhou       bool
	chiihou      bool
	seat         string
	round        string
	dora         []string
	ura          []string
	doubleWindFu bool
	kiriage      bool
	json         bool
}

var scoreCmd = &cobra.Command{
	Use:   "score <hand>",
	Short: "和牌算分",
	Long:  `和牌算分,手牌记法如 123m456p789s11122z,副露用()与[],赤五记0`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.win, "win", "", "和牌,缺省时逐张试算取最高")
	f.BoolVar(&scoreFlags.tsumo, "tsumo", false, "自摸")
	f.BoolVar(&scoreFlags.riichi, "riichi", false, "立直")
	f.BoolVar(&scoreFlags.doubleRiichi, "double-riichi", false, "两立直")
	f.BoolVar(&scoreFlags.ippatsu, "ippatsu", false, "一发")
	f.BoolVar(&scoreFlags.rinshan, "rinshan", false, "岭上开花")
	f.BoolVar(&scoreFlags.chankan, "chankan", false, "抢杠")
	f.BoolVar(&scoreFlags.lastTile, "last", false, "海底/河底")
	f.BoolVar(&scoreFlags.tenhou, "tenhou", false, "天和")
	f.BoolVar(&scoreFlags.chiihou, "chiihou", false, "地和")
	f.StringVar(&scoreFlags.seat, "seat", "1z", "自风")
	f.StringVar(&scoreFlags.round, "round", "1z", "场风")
	f.StringSliceVar(&scoreFlags.dora, "dora", nil, "宝牌指示牌")
	f.StringSliceVar(&scoreFlags.ura, "ura", nil, "里宝指示牌,立直限定")
	f.BoolVar(&scoreFlags.doubleWindFu, "double-wind-fu4", true, "连风对子记4符")
	f.BoolVar(&scoreFlags.kiriage, "kiriage", false, "切上满贯")
	f.BoolVar(&scoreFlags.json, "json", false, "JSON输出")
}

func runScore(handStr string) error {
	hand, err := mahjong.ParseHand(handStr)
	if err != nil {
		return err
	}

	ctx := mahjong.NewGameContext()
	if scoreFlags.tsumo {
		ctx.WinType = mahjong.WinTypeTsumo
	}
	ctx.Riichi = scoreFlags.riichi
	ctx.DoubleRiichi = scoreFlags.doubleRiichi
	ctx.Ippatsu = scoreFlags.ippatsu
	ctx.Rinshan = scoreFlags.rinshan
	ctx.Chankan = scoreFlags.chankan
	ctx.LastTile = scoreFlags.lastTile
	ctx.Tenhou = scoreFlags.tenhou
	ctx.Chiihou = scoreFlags.chiihou

	if scoreFlags.win != "" {
		if ctx.WinningTile, err = mahjong.ParseTile(scoreFlags.win); err != nil {
			return err
		}
	}
	if ctx.SeatWind, err = mahjong.ParseTile(scoreFlags.seat); err != nil {
		return err
	}
	if ctx.RoundWind, err = mahjong.ParseTile(scoreFlags.round); err != nil {
		return err
	}
	if ctx.DoraIndicators, err = parseTiles(scoreFlags.dora); err != nil {
		return err
	}
	if ctx.UraIndicators, err = parseTiles(scoreFlags.ura); err != nil {
		return err
	}

	rules := mahjong.Rules{
		DoubleWindFu4: scoreFlags.doubleWindFu,
		KiriageMangan: scoreFlags.kiriage,
	}
	res, err := mahjong.Evaluate(hand, ctx, rules)
	if err != nil {
		return err
	}

	if scoreFlags.json {
		fmt.Println(utils.ToJSON(utils.ToStruct(service.ScoreFields(res))))
		return nil
	}
	printScore(res)
	return nil
}

func printScore(res *mahjong.ScoringResult) {
	fmt.Printf("%s\n", res.Structure.Name())
	for _, y := range res.Yaku.Yaku {
		fmt.Printf("  %s\n", y.Name())
	}
	if res.Yaku.Dora > 0 {
		fmt.Printf("  dora %d\n", res.Yaku.Dora)
	}
	if res.Yaku.Ura > 0 {
		fmt.Printf("  ura %d\n", res.Yaku.Ura)
	}
	if res.Yaku.Aka > 0 {
		fmt.Printf("  aka %d\n", res.Yaku.Aka)
	}
	line := fmt.Sprintf("%d han %d fu", res.Han, res.Fu.Total)
	if name := res.Level.String(); name != "" {
		line += " " + name
	}
	if res.IsCountedYakuman {
		line += " (kazoe)"
	}
	fmt.Println(line)
	fmt.Printf("%d points\n", res.Payment.Total)
}

func parseTiles(names []string) ([]mahjong.Tile, error) {
	var tiles []mahjong.Tile
	for _, n := range names {
		t, err := mahjong.ParseTile(n)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}
