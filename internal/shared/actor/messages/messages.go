package messages

// FailResp 是 actor 拒绝请求时的应答，Code 为 errx 错误码。
type FailResp struct {
	Code    string
	Message string
}

func (f *FailResp) Error() string {
	if f == nil {
		return "<nil>"
	}
	return f.Code + ": " + f.Message
}
