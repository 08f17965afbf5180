package handler

import (
	"context"
	"errors"

	"Highlander/internal/arena/actor"
	"Highlander/internal/shared/transport"
	"Highlander/modules/kit/errx"
)

// HandleError 把 runtime 错误翻译成 (业务码, 客户端提示)，并把错误码记进访问日志。
func HandleError(ctx context.Context, err error) (int, string) {
	if code, ok := errx.CodeOf(err); ok {
		transport.SetErrorReason(ctx, string(code))
	}

	bizCode := actor.CodeFromError(err)
	if bizCode >= transport.SystemError {
		return bizCode, "系统繁忙，请稍后重试"
	}
	var re *actor.RuntimeError
	if errors.As(err, &re) && re.Message != "" {
		return bizCode, re.Message
	}
	return bizCode, "请求被拒绝"
}
