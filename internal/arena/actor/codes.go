package actor

import (
	"Highlander/internal/arena/entity"
	"Highlander/internal/shared/transport"
	"Highlander/modules/kit/errx"
)

// bizCodeFromErrx 把 actor 返回的错误码翻译为客户端业务码。
func bizCodeFromErrx(code errx.Code) int {
	switch code {
	case errx.CodeInvalidParam, entity.CodeInvalidDimension:
		return transport.InvalidParam
	case entity.CodeNoSpaceAvailable:
		return transport.ArenaFull
	case errx.CodeUnavailable:
		return transport.Unavailable
	case errx.CodeTimeout:
		return transport.Timeout
	default:
		return transport.SystemError
	}
}
