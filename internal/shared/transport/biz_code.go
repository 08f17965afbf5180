package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 返回给客户端的业务码：0 成功，4xx 请求方问题，5xx 服务端问题。
const (
	OK           = 0
	InvalidParam = 400
	NotFound     = 404
	ArenaFull    = 409
	SystemError  = 500
	Unavailable  = 503
	Timeout      = 504
)
