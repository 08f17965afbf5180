package actor

import (
	"context"
	"errors"
	"time"

	"Highlander/internal/arena/actors"
	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/simconfig"
	"Highlander/internal/shared/transport"
	"Highlander/modules/kit/errx"
	"Highlander/modules/kit/logx"

	protoactor "github.com/asynkron/protoactor-go/actor"
)

const defaultAskTimeout = 3 * time.Second

// RuntimeError 是 actor 调用失败的统一错误，Code 为返回给客户端的业务码。
type RuntimeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *RuntimeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Runtime 是竞技场 actor 系统的同步门面，供 HTTP 层调用。
type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	manager *protoactor.PID
	timeout time.Duration
}

func NewRuntime(cfg simconfig.Config, listener actors.RoundListener, log logx.Logger) *Runtime {
	askTimeout := cfg.Arena.AskTimeout
	if askTimeout <= 0 {
		askTimeout = defaultAskTimeout
	}
	if log == nil {
		log = logx.Nop()
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(cfg, listener, log)
	})
	manager := root.Spawn(managerProps)

	return &Runtime{
		system:  system,
		root:    root,
		manager: manager,
		timeout: askTimeout,
	}
}

func (r *Runtime) State(ctx context.Context, arenaID int) (messages.ArenaState, error) {
	res, err := r.request(&messages.HAArenaState{ArenaBaseMessage: messages.ArenaBaseMessage{Arena: arenaID}}, r.timeoutFromContext(ctx))
	if err != nil {
		return messages.ArenaState{}, err
	}
	reply, ok := res.(*messages.AHArenaState)
	if !ok || reply == nil {
		return messages.ArenaState{}, badReply(res)
	}
	return reply.State, nil
}

func (r *Runtime) NextRound(ctx context.Context, arenaID int) (*messages.AHNextRound, error) {
	res, err := r.request(&messages.HANextRound{ArenaBaseMessage: messages.ArenaBaseMessage{Arena: arenaID}}, r.timeoutFromContext(ctx))
	if err != nil {
		return nil, err
	}
	reply, ok := res.(*messages.AHNextRound)
	if !ok || reply == nil {
		return nil, badReply(res)
	}
	return reply, nil
}

func (r *Runtime) Restart(ctx context.Context, arenaID int, seed int64) (messages.ArenaState, error) {
	res, err := r.request(&messages.HARestart{ArenaBaseMessage: messages.ArenaBaseMessage{Arena: arenaID}, Seed: seed}, r.timeoutFromContext(ctx))
	if err != nil {
		return messages.ArenaState{}, err
	}
	reply, ok := res.(*messages.AHRestart)
	if !ok || reply == nil {
		return messages.ArenaState{}, badReply(res)
	}
	return reply.State, nil
}

func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		_ = r.root.StopFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

func (r *Runtime) request(msg any, timeout time.Duration) (any, error) {
	if r == nil || r.root == nil || r.manager == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor runtime 未初始化", Cause: errx.ErrUnavailable}
	}

	future := r.root.RequestFuture(r.manager, msg, timeout)
	res, err := future.Result()
	if err != nil {
		cause := errx.ErrInternal.WithCause(err)
		code := transport.SystemError
		if errors.Is(err, protoactor.ErrTimeout) {
			cause, code = errx.ErrTimeout.WithCause(err), transport.Timeout
		}
		return nil, &RuntimeError{Code: code, Message: "actor 请求失败", Cause: cause}
	}
	if f, ok := res.(*messages.FailResp); ok {
		return nil, &RuntimeError{Code: bizCodeFromErrx(errx.Code(f.Code)), Message: f.Message, Cause: f}
	}
	return res, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if r == nil || r.timeout <= 0 {
		return defaultAskTimeout
	}
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	if remain < r.timeout {
		return remain
	}
	return r.timeout
}

func badReply(res any) error {
	return &RuntimeError{
		Code:    transport.SystemError,
		Message: "actor 应答类型不符",
		Cause:   errx.ErrInternal.WithDataMap(map[string]any{"reply": res}),
	}
}

func CodeFromError(err error) int {
	if err == nil {
		return transport.OK
	}
	var re *RuntimeError
	if errors.As(err, &re) && re != nil && re.Code != 0 {
		return re.Code
	}
	return transport.SystemError
}
