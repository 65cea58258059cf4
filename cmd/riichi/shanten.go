package main

import (
	"fmt"
	"os"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/service"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/spf13/cobra"
)

var shantenJSON bool

var shantenCmd = &cobra.Command{
	Use:   "shanten <hand>",
	Short: "向听与进张",
	Long:  `向听与进张,-1为和牌,0为听牌`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShanten(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	shantenCmd.Flags().BoolVar(&shantenJSON, "json", false, "JSON输出")
}

func runShanten(handStr string) error {
	hand, err := mahjong.ParseHand(handStr)
	if err != nil {
		return err
	}

	counts := mahjong.NewCounts(hand.Tiles)
	res := mahjong.CalcUkeire(counts, hand.Called)

	if shantenJSON {
		fmt.Println(utils.ToJSON(utils.ToStruct(service.ShantenFields(res))))
		return nil
	}

	fmt.Printf("shanten %d\n", res.Shanten)
	for _, t := range res.Tiles {
		fmt.Printf("  %s x%d\n", t.Tile.Name(), t.Available)
	}
	if len(res.Tiles) > 0 {
		fmt.Printf("total %d\n", res.TotalCount)
	}
	return nil
}
