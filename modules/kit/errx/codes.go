package errx

// 跨模块通用的系统类错误码。领域错误码由各领域包自行定义。
const (
	// CodeInternal 不可预期的内部错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 依赖或运行时不可用（actor 未启动、已停止等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 请求或 actor 应答超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeInvalidParam 请求参数或配置项不合法。
	CodeInvalidParam Code = "INVALID_PARAM"
)

var (
	ErrInternal     = NewSys(CodeInternal, "内部错误")
	ErrUnavailable  = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout      = NewSys(CodeTimeout, "请求超时")
	ErrInvalidParam = NewBiz(CodeInvalidParam, "参数不合法")
)
