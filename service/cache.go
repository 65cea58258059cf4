package service

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// ShantenCache 向听查询的本地缓存。
// 手牌张数表加副露牌做键,同一手牌的重复查询直接命中。
type ShantenCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewShantenCache(maxCost int64, ttl time.Duration) (*ShantenCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &ShantenCache{cache: cache, ttl: ttl}, nil
}

func shantenKey(counts mahjong.Counts, called []mahjong.CalledMeld) string {
	var calledTiles []mahjong.Tile
	for _, c := range called {
		calledTiles = append(calledTiles, c.Tiles...)
	}
	return fmt.Sprintf("%v/%v", counts, mahjong.TilesInt32(calledTiles))
}

func (c *ShantenCache) Get(counts mahjong.Counts, called []mahjong.CalledMeld) (mahjong.UkeireResult, bool) {
	v, ok := c.cache.Get(shantenKey(counts, called))
	if !ok {
		return mahjong.UkeireResult{}, false
	}
	res, ok := v.(mahjong.UkeireResult)
	return res, ok
}

func (c *ShantenCache) Put(counts mahjong.Counts, called []mahjong.CalledMeld, res mahjong.UkeireResult) {
	c.cache.SetWithTTL(shantenKey(counts, called), res, 1, c.ttl)
}

// Wait 等待写入可见
func (c *ShantenCache) Wait() {
	c.cache.Wait()
}

func (c *ShantenCache) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}
