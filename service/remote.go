package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_riichi/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Remote 服务间的算分入口,载荷统一为anypb包装的Struct,
// op字段区分操作
type Remote struct {
	component.Base
	app      pitaya.Pitaya
	scorer   *Scorer
	handlers map[string]func(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func NewRemote(app pitaya.Pitaya, scorer *Scorer) *Remote {
	return &Remote{
		app:      app,
		scorer:   scorer,
		handlers: make(map[string]func(context.Context, *structpb.Struct) (*structpb.Struct, error)),
	}
}

// Init 组件初始化
func (m *Remote) Init() {
	m.handlers["score"] = m.scorer.Score
	m.handlers["shanten"] = m.scorer.Shanten
}

// Message 处理算分消息
func (m *Remote) Message(ctx context.Context, req *anypb.Any) (*anypb.Any, error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}
	if req.TypeUrl != utils.TypeUrl(&structpb.Struct{}) {
		return nil, fmt.Errorf("unexpected payload type %s", req.TypeUrl)
	}

	msg, err := req.UnmarshalNew()
	if err != nil {
		return nil, err
	}
	body := msg.(*structpb.Struct)

	op := body.GetFields()["op"].GetStringValue()
	logger.Log.Info("remote message ", op)

	handler, ok := m.handlers[op]
	if !ok {
		return nil, fmt.Errorf("invalid op %q", op)
	}
	rsp, err := handler(ctx, body)
	if err != nil {
		return nil, err
	}
	return utils.ToAny(rsp), nil
}
