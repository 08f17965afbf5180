package service

import (
	"Highlander/internal/arena/entity"
	"Highlander/internal/arena/service/port"
	"Highlander/internal/shared/utils"
)

// seqRand 按给定序列循环返回（对 n 取模），用来固定随机结果。
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

type fakeState struct {
	world    *entity.World
	warriors []*entity.Warrior
}

func (s *fakeState) Warriors() []*entity.Warrior { return s.warriors }
func (s *fakeState) World() *entity.World { return s.world }

// togetherRelocator 把 follower 挪到 leader 所在的格子，其他人不动。
type togetherRelocator struct {
	leader, follower int
}

func (r togetherRelocator) FindEmptyStart(game port.GameState) (entity.Point, error) {
	return NewRelocationEngine(utils.NewRand(1)).FindEmptyStart(game)
}

func (r togetherRelocator) Relocate(game port.GameState, w *entity.Warrior, _ entity.Point) entity.Point {
	if w.ID() != r.follower {
		return w.Location()
	}
	for _, other := range game.Warriors() {
		if other.ID() == r.leader {
			w.SetLocation(other.Location())
		}
	}
	return w.Location()
}

type countingBattlefield struct {
	calls  int
	winner func(a, b *entity.Warrior) *entity.Warrior
	err    error
}

func (b *countingBattlefield) Resolve(a, c *entity.Warrior) (*entity.Warrior, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	if b.winner == nil {
		return nil, nil
	}
	return b.winner(a, c), nil
}

func newWarrior(id int, at entity.Point, health, strength int) *entity.Warrior {
	w := entity.NewWarrior(id, "")
	w.SetLocation(at)
	w.Health = health
	w.Strength = strength
	w.Age = 30
	return w
}

// nonSanctuary 找一个不是避难格的格子。
func nonSanctuary(world *entity.World) entity.Point {
	for x := world.XStart(); x <= world.XLimit(); x++ {
		for y := world.YStart(); y <= world.YLimit(); y++ {
			if p := (entity.Point{X: x, Y: y}); !world.IsSanctuary(p) {
				return p
			}
		}
	}
	panic("board is all sanctuary")
}

func mustWorld(xLimit, yLimit int, seed int64) *entity.World {
	w, err := entity.NewWorld(xLimit, yLimit, entity.WithRand(utils.NewRand(seed)))
	if err != nil {
		panic(err)
	}
	return w
}
