package actors

import (
	"context"
	"time"

	"Highlander/internal/arena/dc"
	"Highlander/internal/arena/service"
	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/simconfig"
	"Highlander/modules/kit/errx"
	"Highlander/modules/kit/logx"
	"Highlander/modules/kit/tracex"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type State int

const (
	None State = iota
	Init
	Online
	Offline
	Stopping
)

// RoundListener 在每回合结算后被调用（actor goroutine 内），实现方不能阻塞。
type RoundListener interface {
	OnRound(arenaID int, view messages.RoundView)
}

// ArenaActor 独占一个竞技场的对局，所有读写都经过它的 mailbox，回合因此天然串行。
type ArenaActor struct {
	state      State
	arenaID    int
	dc         *dc.ArenaDC
	dispatcher *Dispatcher
	listener   RoundListener
	log        logx.Logger
	tickStop   chan struct{}
}

type roundTick struct{}

func (roundTick) NotInfluenceReceiveTimeout() {}

func NewArenaActor(arenaID int, cfg simconfig.Config, listener RoundListener, log logx.Logger) *ArenaActor {
	if log == nil {
		log = logx.Nop()
	}
	return &ArenaActor{
		state:      None,
		arenaID:    arenaID,
		dc:         dc.NewArenaDC(cfg.Arena, cfg.Attributes, log),
		dispatcher: NewDispatcher(),
		listener:   listener,
		log:        log,
	}
}

func (p *ArenaActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		p.state = Init
		p.init(ctx)
		return
	case *actor.Stopping:
		p.stopTickLoop()
		p.state = Stopping
		return
	case *actor.Stopped:
		p.stopTickLoop()
		p.state = Offline
		return
	case *actor.Restarting:
		p.stopTickLoop()
		p.state = Init
		return
	case roundTick:
		if p.state != Online {
			return
		}
		_, _ = p.advance()
		return
	case messages.ArenaMessage:
		if p.state != Online {
			ctx.Respond(fail(errx.ErrUnavailable.WithData("arena_id", p.arenaID)))
			return
		}
		p.dispatcher.Dispatch(ctx, p, msg)
	default:
		return
	}
}

func (p *ArenaActor) init(ctx actor.Context) {
	if _, err := p.dc.Load(p.logContext(), p.arenaID); err != nil {
		p.reportSysError("arena_load", err)
		p.state = Stopping
		ctx.Stop(ctx.Self())
		return
	}
	p.state = Online
	p.log.WithContext(p.logContext()).Info("arena online",
		zap.Int64("match_id", p.dc.MatchID()),
		zap.Int("warriors", len(p.dc.Game().Warriors())),
	)
	p.startTickLoop(ctx)
}

func (p *ArenaActor) ArenaID() int {
	return p.arenaID
}

func (p *ArenaActor) Game() *service.Game {
	return p.dc.Game()
}

// advance 推进一回合：记日志、通知观战者，对局结束后停止自动推进。
func (p *ArenaActor) advance() (messages.RoundView, error) {
	game := p.dc.Game()
	report, err := game.NextRound()
	if err != nil {
		logx.ReportSysErrorWithLoggerContext(tracex.WithRound(p.logContext(), report.Round), p.log, logx.NewSysLog("next_round", err))
		return messages.RoundView{}, err
	}

	logx.ReportRoundWithLoggerContext(p.logContext(), p.log, logx.RoundLog{
		Round:     report.Round,
		Fights:    len(report.Fights),
		Ties:      report.Ties(),
		Removed:   report.Removed,
		Survivors: report.Survivors,
		Concluded: report.Concluded,
	}, zap.Int64("match_id", p.dc.MatchID()))

	view := roundView(p.arenaID, p.dc.MatchID(), report, game.Warriors())
	if p.listener != nil {
		p.listener.OnRound(p.arenaID, view)
	}
	if report.Concluded {
		p.stopTickLoop()
	}
	return view, nil
}

func (p *ArenaActor) snapshot() messages.ArenaState {
	return arenaState(p.arenaID, p.dc.Generation(), p.dc.MatchID(), p.dc.Game())
}

func (p *ArenaActor) logContext() context.Context {
	return tracex.WithArena(context.Background(), p.arenaID)
}

func (p *ArenaActor) reportSysError(action string, err error) {
	logx.ReportSysErrorWithLoggerContext(p.logContext(), p.log, logx.NewSysLog(action, err))
}

func (p *ArenaActor) startTickLoop(ctx actor.Context) {
	if p.tickStop != nil {
		return
	}
	interval := p.dc.TickEvery()
	if interval <= 0 {
		return
	}
	p.tickStop = make(chan struct{})
	self := ctx.Self()
	root := ctx.ActorSystem().Root

	go func(stop <-chan struct{}, every time.Duration) {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				root.Send(self, roundTick{})
			case <-stop:
				return
			}
		}
	}(p.tickStop, interval)
}

func (p *ArenaActor) stopTickLoop() {
	if p.tickStop == nil {
		return
	}
	close(p.tickStop)
	p.tickStop = nil
}
