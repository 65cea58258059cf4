package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TypeUrl(src proto.Message) string {
	any, err := anypb.New(src)
	if err != nil {
		logger.Log.Error(err)
		return ""
	}

	return any.GetTypeUrl()
}

func ToAny(ack proto.Message) *anypb.Any {
	data, err := anypb.New(ack)
	if err != nil {
		logger.Log.Error(err)
		return nil
	}
	return data
}

// ToStruct 失败时返回空结构而不是nil,调用方可直接回包
func ToStruct(fields map[string]any) *structpb.Struct {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		logger.Log.Error(err)
		return &structpb.Struct{}
	}
	return s
}

func ToJSON(msg proto.Message) string {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		logger.Log.Error(err)
		return ""
	}
	return string(data)
}
