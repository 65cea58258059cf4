package service

import (
	"time"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/spf13/viper"
)

// Config 服务配置,规则项与缓存项都有默认值
type Config struct {
	viper *viper.Viper
}

func NewConfig(file string) (*Config, error) {
	c := &Config{viper: viper.New()}
	c.viper.SetConfigType("yaml")
	c.viper.SetDefault("rules.double_wind_fu4", true)
	c.viper.SetDefault("rules.kiriage_mangan", false)
	c.viper.SetDefault("cache.max_cost", int64(1<<26))
	c.viper.SetDefault("cache.ttl", "10m")
	c.viper.SetDefault("log.dir", "./logs")
	c.viper.SetDefault("log.level", "info")

	if file != "" {
		c.viper.SetConfigFile(file)
		if err := c.viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Config) Rules() mahjong.Rules {
	return mahjong.Rules{
		DoubleWindFu4: c.viper.GetBool("rules.double_wind_fu4"),
		KiriageMangan: c.viper.GetBool("rules.kiriage_mangan"),
	}
}

func (c *Config) CacheMaxCost() int64 {
	return c.viper.GetInt64("cache.max_cost")
}

func (c *Config) CacheTTL() time.Duration {
	return c.viper.GetDuration("cache.ttl")
}

func (c *Config) LogDir() string {
	return c.viper.GetString("log.dir")
}

func (c *Config) LogLevel() string {
	return c.viper.GetString("log.level")
}

// EtcdEndpoints 为空时不启用规则仓储
func (c *Config) EtcdEndpoints() []string {
	return c.viper.GetStringSlice("etcd.endpoints")
}

func (c *Config) EtcdPrefix() string {
	if p := c.viper.GetString("etcd.prefix"); p != "" {
		return p
	}
	return "riichi/"
}
