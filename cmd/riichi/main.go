package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riichi",
	Short: "riichi 立直麻将算点",
	Long:  `riichi 立直麻将算点:和牌算分、向听与进张、算分服务`,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(shantenCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
