package actors

import (
	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/simconfig"
	"Highlander/modules/kit/errx"
	"Highlander/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
)

// ManagerActor 按竞技场 id 懒创建 ArenaActor 并转发请求。
type ManagerActor struct {
	cfg         simconfig.Config
	listener    RoundListener
	log         logx.Logger
	arenaActors map[int]*actor.PID
}

func NewManagerActor(cfg simconfig.Config, listener RoundListener, log logx.Logger) *ManagerActor {
	return &ManagerActor{
		cfg:         cfg,
		listener:    listener,
		log:         log,
		arenaActors: make(map[int]*actor.PID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		// 配置的竞技场启动即开局，自动推进不依赖第一次请求
		for id := 1; id <= m.cfg.Arena.Arenas; id++ {
			m.getOrSpawn(ctx, id)
		}
	case *actor.Terminated:
		for id, pid := range m.arenaActors {
			if pid.Equal(msg.Who) {
				delete(m.arenaActors, id)
			}
		}
	case messages.ArenaMessage:
		if msg == nil {
			ctx.Respond(fail(errx.ErrInvalidParam))
			return
		}
		id := msg.ArenaID()
		if id <= 0 || id > m.cfg.Arena.Arenas {
			ctx.Respond(fail(errx.ErrInvalidParam.WithData("arena_id", id)))
			return
		}
		ctx.Forward(m.getOrSpawn(ctx, id))
	}
}

func (m *ManagerActor) getOrSpawn(ctx actor.Context, arenaID int) *actor.PID {
	if pid, ok := m.arenaActors[arenaID]; ok && pid != nil {
		return pid
	}

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewArenaActor(arenaID, m.cfg, m.listener, m.log)
	})
	pid := ctx.Spawn(props)
	m.arenaActors[arenaID] = pid
	return pid
}
