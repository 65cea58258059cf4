package service_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kevin-chtw/tw_riichi/service"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := service.NewConfig("")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	rules := cfg.Rules()
	if !rules.DoubleWindFu4 || rules.KiriageMangan {
		t.Errorf("rules = %+v, want double_wind_fu4 only", rules)
	}
	if got := cfg.CacheTTL(); got != 10*time.Minute {
		t.Errorf("cache ttl = %v, want 10m", got)
	}
	if got := cfg.LogLevel(); got != "info" {
		t.Errorf("log level = %q, want info", got)
	}
	if got := cfg.EtcdEndpoints(); len(got) != 0 {
		t.Errorf("etcd endpoints = %v, want none", got)
	}
	if got := cfg.EtcdPrefix(); got != "riichi/" {
		t.Errorf("etcd prefix = %q, want riichi/", got)
	}
}

func TestConfigFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "riichi.yaml")
	data := `rules:
  double_wind_fu4: false
  kiriage_mangan: true
cache:
  ttl: 1h
etcd:
  endpoints:
    - localhost:2379
  prefix: test/
`
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := service.NewConfig(file)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	rules := cfg.Rules()
	if rules.DoubleWindFu4 || !rules.KiriageMangan {
		t.Errorf("rules = %+v, want kiriage only", rules)
	}
	if got := cfg.CacheTTL(); got != time.Hour {
		t.Errorf("cache ttl = %v, want 1h", got)
	}
	if got := cfg.EtcdEndpoints(); len(got) != 1 || got[0] != "localhost:2379" {
		t.Errorf("etcd endpoints = %v", got)
	}
	if got := cfg.EtcdPrefix(); got != "test/" {
		t.Errorf("etcd prefix = %q, want test/", got)
	}
}

func TestConfigMissingFile(t *testing.T) {
	if _, err := service.NewConfig("/no/such/file.yaml"); err == nil {
		t.Error("NewConfig should fail on missing file")
	}
}
