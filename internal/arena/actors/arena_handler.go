package actors

import (
	"Highlander/internal/shared/actor/messages"
	"Highlander/modules/kit/errx"

	"github.com/asynkron/protoactor-go/actor"
)

type ArenaHandler struct{}

var AH = &ArenaHandler{}

func (h *ArenaHandler) HandleHAArenaState(ctx actor.Context, p *ArenaActor, req *messages.HAArenaState) {
	if req == nil {
		ctx.Respond(fail(errx.ErrInvalidParam))
		return
	}
	ctx.Respond(&messages.AHArenaState{State: p.snapshot()})
}

// HandleHANextRound 手动推进一回合，与定时推进走同一条路径。
func (h *ArenaHandler) HandleHANextRound(ctx actor.Context, p *ArenaActor, req *messages.HANextRound) {
	if req == nil {
		ctx.Respond(fail(errx.ErrInvalidParam))
		return
	}
	view, err := p.advance()
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(&messages.AHNextRound{Round: view, State: p.snapshot()})
}

// HandleHARestart 同一棋盘重开一局，自动推进随之恢复。
func (h *ArenaHandler) HandleHARestart(ctx actor.Context, p *ArenaActor, req *messages.HARestart) {
	if req == nil {
		ctx.Respond(fail(errx.ErrInvalidParam))
		return
	}
	if _, err := p.dc.Restart(p.arenaID, req.Seed); err != nil {
		p.reportSysError("restart", err)
		ctx.Respond(fail(err))
		return
	}
	p.startTickLoop(ctx)
	ctx.Respond(&messages.AHRestart{State: p.snapshot()})
}

func fail(err error) *messages.FailResp {
	code, ok := errx.CodeOf(err)
	if !ok {
		code = errx.CodeInternal
	}
	return &messages.FailResp{Code: string(code), Message: err.Error()}
}
