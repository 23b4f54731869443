package support

import (
	"github.com/bytedance/sonic"
	"github.com/limbo/journowl/pkg/entity"
)

func EncodeFrame(f entity.SupportFrame) ([]byte, error) {
	return sonic.Marshal(f)
}

func DecodeFrame(data []byte) (entity.SupportFrame, error) {
	var f entity.SupportFrame
	err := sonic.Unmarshal(data, &f)
	return f, err
}

func errorFrame(msg string) entity.SupportFrame {
	return entity.SupportFrame{Type: entity.FrameError, Error: msg}
}
