package dc

import (
	"context"
	"time"

	"Highlander/internal/arena/entity"
	"Highlander/internal/arena/service"
	"Highlander/internal/shared/simconfig"
	"Highlander/internal/shared/utils"
	"Highlander/modules/kit/logx"
)

// 各组件从同一基准种子派生时使用的序号，保证组件之间随机源互相独立。
const (
	seedWorld = iota
	seedAttributes
	seedFight
	seedRelocation
)

// ArenaDC 持有一个竞技场的棋盘和当前对局。只在所属 actor 的 mailbox 内访问。
type ArenaDC struct {
	cfg    simconfig.ArenaConfig
	ranges service.AttributeRanges
	log    logx.Logger

	world      *entity.World
	game       *service.Game
	generation int
	matchID    int64
}

func NewArenaDC(cfg simconfig.ArenaConfig, attrs simconfig.AttributesConfig, log logx.Logger) *ArenaDC {
	if log == nil {
		log = logx.Nop()
	}
	return &ArenaDC{
		cfg: cfg,
		ranges: service.AttributeRanges{
			MinAge:       attrs.MinAge,
			MaxAge:       attrs.MaxAge,
			MinAttribute: attrs.MinAttribute,
			MaxAttribute: attrs.MaxAttribute,
		},
		log: log,
	}
}

// Load 创建棋盘并开第一局。
func (d *ArenaDC) Load(_ context.Context, arenaID int) (*service.Game, error) {
	base := utils.DeriveSeed(d.cfg.Seed, arenaID)
	world, err := entity.NewWorld(d.cfg.XLimit, d.cfg.YLimit,
		entity.WithRand(utils.NewRand(utils.DeriveSeed(base, seedWorld))),
		entity.WithSanctuaryRatio(d.cfg.SanctuaryRatio),
	)
	if err != nil {
		return nil, err
	}
	d.world = world

	game, err := d.newGame(base)
	if err != nil {
		return nil, err
	}
	d.game = game
	d.generation = 1
	d.matchID = utils.NextMatchID()
	return game, nil
}

// Restart 复用棋盘重开一局；seed 为 0 时按局数从配置种子派生。
// 失败时保留旧对局。
func (d *ArenaDC) Restart(arenaID int, seed int64) (*service.Game, error) {
	if d.world == nil {
		return nil, entity.ErrCollaboratorNotConfigured.WithData("component", "world")
	}
	base := seed
	if base == 0 {
		base = utils.DeriveSeed(utils.DeriveSeed(d.cfg.Seed, arenaID), d.generation*100)
	}
	game, err := d.newGame(base)
	if err != nil {
		return nil, err
	}
	d.game = game
	d.generation++
	d.matchID = utils.NextMatchID()
	return game, nil
}

func (d *ArenaDC) newGame(base int64) (*service.Game, error) {
	attributes := service.NewAttributesHandler(utils.NewRand(utils.DeriveSeed(base, seedAttributes)), d.ranges)
	fight, err := service.NewFightEngine(utils.NewRand(utils.DeriveSeed(base, seedFight)), attributes)
	if err != nil {
		return nil, err
	}

	offset := entity.Point{X: d.cfg.MoveOffsetX, Y: d.cfg.MoveOffsetY}
	if offset == (entity.Point{}) {
		offset = service.DefaultMoveOffset
	}

	game := service.NewGame(d.world,
		service.WithAttributes(attributes),
		service.WithBattlefield(fight),
		service.WithRelocator(service.NewRelocationEngine(utils.NewRand(utils.DeriveSeed(base, seedRelocation)))),
		service.WithRoster(d.cfg.Warriors, d.cfg.Names),
		service.WithMoveOffset(offset),
		service.WithLogger(d.log),
	)
	if err := game.Populate(); err != nil {
		return nil, err
	}
	return game, nil
}

func (d *ArenaDC) Game() *service.Game {
	return d.game
}

func (d *ArenaDC) World() *entity.World {
	return d.world
}

// Generation 是第几局，从 1 开始，每次 Restart 加一。
func (d *ArenaDC) Generation() int {
	return d.generation
}

// MatchID 是当前对局的全局编号，日志和观战推送用它区分同一竞技场的不同局。
func (d *ArenaDC) MatchID() int64 {
	return d.matchID
}

func (d *ArenaDC) TickEvery() time.Duration {
	return d.cfg.TickInterval
}
