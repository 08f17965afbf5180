package service

import (
	"fmt"

	"Highlander/internal/arena/entity"
	"Highlander/internal/arena/service/port"
	"Highlander/modules/kit/logx"

	"go.uber.org/zap"
)

// State 是对局的生命周期。RoundInProgress 只在 NextRound 内部短暂存在，不对外暴露。
type State int

const (
	StateInitialized State = iota
	StatePopulated
	StateConcluded
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StatePopulated:
		return "populated"
	case StateConcluded:
		return "concluded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const DefaultWarriorCount = 12

// DefaultWarriorNames 是默认名单，数量不足时循环使用并加序号。
var DefaultWarriorNames = []string{
	"Connor MacLeod",
	"Ramírez",
	"Duncan MacLeod",
	"The Kurgan",
	"Kronos",
	"Timothy of Gilliam",
	"Danny O'Donal",
	"Methos",
	"Mako",
	"Richie Ryan",
	"Slan Quince",
	"Kiem Sun",
	"Felicia Martins",
}

// FightResult 是一场战斗的结果，平局时 WinnerID 为 -1。
type FightResult struct {
	Location entity.Point `json:"location"`
	A        int          `json:"a"`
	B        int          `json:"b"`
	WinnerID int          `json:"winner_id"`
	LoserID  int          `json:"loser_id"`
}

func (f FightResult) Tie() bool {
	return f.WinnerID < 0
}

// RoundReport 汇总一回合发生的事情，供日志和观战推送使用。
type RoundReport struct {
	Round     int           `json:"round"`
	Fights    []FightResult `json:"fights"`
	Removed   []int         `json:"removed"`
	Survivors int           `json:"survivors"`
	Concluded bool          `json:"concluded"`
}

func (r RoundReport) Ties() int {
	n := 0
	for _, f := range r.Fights {
		if f.Tie() {
			n++
		}
	}
	return n
}

type Option func(*Game)

func WithRelocator(r port.Relocator) Option {
	return func(g *Game) { g.SetRelocator(r) }
}

func WithBattlefield(b port.Battlefield) Option {
	return func(g *Game) { g.SetBattlefield(b) }
}

func WithAttributes(a port.AttributesHandler) Option {
	return func(g *Game) { g.SetAttributes(a) }
}

func WithLogger(l logx.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRoster 设置初始人数和名单。
func WithRoster(count int, names []string) Option {
	return func(g *Game) {
		if count > 0 {
			g.warriorCount = count
		}
		if len(names) > 0 {
			g.names = append([]string(nil), names...)
		}
	}
}

func WithMoveOffset(offset entity.Point) Option {
	return func(g *Game) { g.moveOffset = offset }
}

// Game 持有战士名单和棋盘引用，按回合推进。非并发安全，调用方需串行调用 NextRound。
type Game struct {
	world    *entity.World
	warriors []*entity.Warrior

	relocator   port.Relocator
	battlefield port.Battlefield
	attributes  port.AttributesHandler

	warriorCount int
	names        []string
	moveOffset   entity.Point
	round        int
	populated    bool

	log logx.Logger
}

func NewGame(world *entity.World, opts ...Option) *Game {
	g := &Game{
		world:        world,
		relocator:    noopRelocator{},
		battlefield:  noopBattlefield{},
		warriorCount: DefaultWarriorCount,
		names:        DefaultWarriorNames,
		moveOffset:   DefaultMoveOffset,
		log:          logx.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetRelocator 传 nil 恢复为不移动的默认实现。
func (g *Game) SetRelocator(r port.Relocator) {
	if r == nil {
		r = noopRelocator{}
	}
	g.relocator = r
}

// SetBattlefield 传 nil 恢复为从不开战的默认实现。
func (g *Game) SetBattlefield(b port.Battlefield) {
	if b == nil {
		b = noopBattlefield{}
	}
	g.battlefield = b
}

func (g *Game) SetAttributes(a port.AttributesHandler) {
	g.attributes = a
}

func (g *Game) World() *entity.World {
	return g.world
}

// Warriors 返回名单的拷贝（元素仍是同一批战士）。
func (g *Game) Warriors() []*entity.Warrior {
	return append([]*entity.Warrior(nil), g.warriors...)
}

func (g *Game) Warrior(id int) (*entity.Warrior, bool) {
	for _, w := range g.warriors {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) State() State {
	switch {
	case !g.populated:
		return StateInitialized
	case len(g.warriors) <= 1:
		return StateConcluded
	default:
		return StatePopulated
	}
}

// AddWarrior 直接放入一名战士（已设定好位置和属性），用于自定义开局。
func (g *Game) AddWarrior(w *entity.Warrior) {
	if w == nil {
		return
	}
	g.warriors = append(g.warriors, w)
	g.populated = true
}

// Populate 按配置人数创建战士：找空位落点，再随机分配属性。
// 没有属性处理器时返回 ErrCollaboratorNotConfigured，名单保持不变。
func (g *Game) Populate() error {
	if g.attributes == nil {
		return entity.ErrCollaboratorNotConfigured.WithData("collaborator", "attributes")
	}
	g.warriors = make([]*entity.Warrior, 0, g.warriorCount)
	g.round = 0
	for id := 0; id < g.warriorCount; id++ {
		w := entity.NewWarrior(id, g.nameFor(id))
		p, err := g.relocator.FindEmptyStart(g)
		if err != nil {
			g.warriors = nil
			return err
		}
		w.SetLocation(p)
		g.attributes.AssignInitialAttributes(w)
		g.warriors = append(g.warriors, w)
	}
	g.populated = true
	return nil
}

// NextRound 推进一回合，顺序固定：
//  1. 按名单顺序逐个移动（后者能看到前者的新位置）
//  2. 按格子分组，恰好两人且不在避难格的组开战
//  3. 逐组结算，败者出局
//  4. 幸存者属性成长
func (g *Game) NextRound() (RoundReport, error) {
	g.round++
	report := RoundReport{Round: g.round}

	for _, w := range g.warriors {
		g.relocator.Relocate(g, w, g.moveOffset)
	}

	g.world.ClearFights()
	for _, pair := range g.fightPairs() {
		a, b := pair[0], pair[1]
		g.world.RecordFight(a.Location())

		winner, err := g.battlefield.Resolve(a, b)
		if err != nil {
			return report, err
		}
		result := FightResult{Location: a.Location(), A: a.ID(), B: b.ID(), WinnerID: -1, LoserID: -1}
		if winner != nil {
			loser := a
			if winner == a {
				loser = b
			}
			g.remove(loser)
			result.WinnerID, result.LoserID = winner.ID(), loser.ID()
			report.Removed = append(report.Removed, loser.ID())
		}
		report.Fights = append(report.Fights, result)
		g.log.Debug("fight",
			zap.Stringer("location", result.Location),
			zap.Int("a", result.A),
			zap.Int("b", result.B),
			zap.Int("winner", result.WinnerID),
		)
	}

	if g.attributes != nil {
		for _, w := range g.warriors {
			g.attributes.AdvanceRound(w)
		}
	}

	report.Survivors = len(g.warriors)
	report.Concluded = g.State() == StateConcluded
	return report, nil
}

// fightPairs 按首次出现顺序分组，只返回恰好两人且不在避难格的组。
func (g *Game) fightPairs() [][2]*entity.Warrior {
	groups := make(map[entity.Point][]*entity.Warrior, len(g.warriors))
	order := make([]entity.Point, 0, len(g.warriors))
	for _, w := range g.warriors {
		p := w.Location()
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], w)
	}

	var pairs [][2]*entity.Warrior
	for _, p := range order {
		group := groups[p]
		if len(group) != 2 || g.world.IsSanctuary(p) {
			continue
		}
		pairs = append(pairs, [2]*entity.Warrior{group[0], group[1]})
	}
	return pairs
}

func (g *Game) remove(w *entity.Warrior) {
	for i, cur := range g.warriors {
		if cur == w {
			g.warriors = append(g.warriors[:i], g.warriors[i+1:]...)
			return
		}
	}
}

func (g *Game) nameFor(id int) string {
	n := len(g.names)
	if n == 0 {
		return fmt.Sprintf("Warrior %d", id)
	}
	name := g.names[id%n]
	if id >= n {
		name = fmt.Sprintf("%s %d", name, id/n+1)
	}
	return name
}

type noopRelocator struct{}

func (noopRelocator) FindEmptyStart(port.GameState) (entity.Point, error) {
	return entity.Point{}, nil
}

func (noopRelocator) Relocate(_ port.GameState, w *entity.Warrior, _ entity.Point) entity.Point {
	if w == nil {
		return entity.Point{}
	}
	return w.Location()
}

type noopBattlefield struct{}

func (noopBattlefield) Resolve(*entity.Warrior, *entity.Warrior) (*entity.Warrior, error) {
	return nil, nil
}
