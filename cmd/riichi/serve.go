package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kevin-chtw/tw_riichi/service"
	"github.com/kevin-chtw/tw_riichi/storage"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	pconfig "github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "算分服务",
	Long:  `算分服务,集群内以riichi类型注册`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "configFile", "", "resource file")
}

func runServe() error {
	cfg, err := service.NewConfig(configFile)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel())
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLogger(utils.Logger(level, cfg.LogDir()))

	cache, err := service.NewShantenCache(cfg.CacheMaxCost(), cfg.CacheTTL())
	if err != nil {
		return err
	}
	defer cache.Close()

	builder := pitaya.NewDefaultBuilder(false, "riichi", pitaya.Cluster, map[string]string{}, *pconfig.NewDefaultPitayaConfig())
	app := builder.Build()
	defer app.Shutdown()

	scorer := service.NewScorer(app, cfg, cache)
	app.Register(scorer, component.WithName("scorer"), component.WithNameFunc(strings.ToLower))
	app.RegisterRemote(service.NewRemote(app, scorer), component.WithName("remote"), component.WithNameFunc(strings.ToLower))

	if endpoints := cfg.EtcdEndpoints(); len(endpoints) > 0 {
		app.RegisterModule(storage.NewETCDRules(endpoints, cfg.EtcdPrefix()), "rulesStorage")
	}

	app.Start()
	return nil
}
