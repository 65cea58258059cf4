package service

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

// Scorer 对客户端的算分服务
type Scorer struct {
	component.Base
	app   pitaya.Pitaya
	rules mahjong.Rules
	cache *ShantenCache
}

func NewScorer(app pitaya.Pitaya, cfg *Config, cache *ShantenCache) *Scorer {
	return &Scorer{
		app:   app,
		rules: cfg.Rules(),
		cache: cache,
	}
}

// Score 按局况算分
func (s *Scorer) Score(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}

	parsed, err := ParseScoreRequest(req)
	if err != nil {
		logger.Log.Warnf("score request rejected: %v", err)
		return nil, err
	}

	res, err := mahjong.Evaluate(parsed.Hand, parsed.Ctx, s.rules)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(ScoreFields(res))
}

// Shanten 向听与进张
func (s *Scorer) Shanten(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}

	handStr := req.GetFields()["hand"].GetStringValue()
	if handStr == "" {
		return nil, errors.New("missing hand")
	}
	hand, err := mahjong.ParseHand(handStr)
	if err != nil {
		return nil, err
	}

	counts := mahjong.NewCounts(hand.Tiles)
	res, ok := s.cache.Get(counts, hand.Called)
	if !ok {
		res = mahjong.CalcUkeire(counts, hand.Called)
		s.cache.Put(counts, hand.Called, res)
	}
	return structpb.NewStruct(ShantenFields(res))
}
