package ws

type ReqBody struct {
	Seq  int64  `json:"seq"`
	Name string `json:"name"`
	Msg  any    `json:"msg"`
}

type RespBody struct {
	Seq  int64  `json:"seq"`
	Name string `json:"name"`
	Code int    `json:"code"`
	Msg  any    `json:"msg"`
}

type WsMsgResp struct {
	Body *RespBody
}

// WSConn 是一条观战连接，只能向客户端推送。
type WSConn interface {
	Addr() string
	ArenaID() int
	// Push 非阻塞投递；缓冲已满时断开该连接并返回 false。
	Push(name string, data any) bool
	Close()
	// Done 用于感知连接生命周期结束（连接关闭时该 channel 会被关闭）
	Done() <-chan struct{}
}

type Heartbeat struct {
	CTime int64 `json:"ctime" mapstructure:"ctime"`
	STime int64 `json:"stime" mapstructure:"stime"`
}

const (
	HeartbeatMsg = "heartbeat"
	RoundMsg     = "round"
	StateMsg     = "state"
)
