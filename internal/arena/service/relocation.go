package service

import (
	"Highlander/internal/arena/entity"
	"Highlander/internal/arena/service/port"
)

const (
	// 同一格最多容纳的战士数
	maxOccupantsPerCell = 2
	// 随机找空位的次数 = 面积 × 该系数，超出后改为顺序扫描
	startAttemptsPerCell = 4
)

// DefaultMoveOffset 是每回合的移动半径，即以当前格为中心的 3×3 邻域。
var DefaultMoveOffset = entity.Point{X: 1, Y: 1}

type RelocationEngine struct {
	rng Rand
}

func NewRelocationEngine(rng Rand) *RelocationEngine {
	return &RelocationEngine{rng: orDefaultRand(rng)}
}

// FindEmptyStart 随机寻找一个无人的格子。
// 随机次数有上限；之后顺序扫描一遍，仍无空位则返回 ErrNoSpaceAvailable。
func (e *RelocationEngine) FindEmptyStart(game port.GameState) (entity.Point, error) {
	world := game.World()
	occupied := occupancy(game.Warriors(), nil)

	attempts := world.Area() * startAttemptsPerCell
	for i := 0; i < attempts; i++ {
		p := world.RandomPoint(e.rng)
		if occupied[p] == 0 {
			return p, nil
		}
	}
	for x := world.XStart(); x <= world.XLimit(); x++ {
		for y := world.YStart(); y <= world.YLimit(); y++ {
			if p := (entity.Point{X: x, Y: y}); occupied[p] == 0 {
				return p, nil
			}
		}
	}
	return entity.Point{}, entity.ErrNoSpaceAvailable.WithDataMap(map[string]any{
		"area":     world.Area(),
		"warriors": len(game.Warriors()),
	})
}

// Relocate 在 location±offset 的方形邻域内随机无放回地尝试候选格，
// 第一个在界内且其他占用者少于 2 的格子即为新位置；都不行则原地不动。
//
// 占用数按调用时的实时名单计算，同一回合里前面战士的移动对后面可见。
func (e *RelocationEngine) Relocate(game port.GameState, w *entity.Warrior, offset entity.Point) entity.Point {
	if w == nil {
		return entity.Point{}
	}
	world := game.World()
	occupied := occupancy(game.Warriors(), w)

	candidates := neighborhood(w.Location(), offset)
	for len(candidates) > 0 {
		i := e.rng.IntN(len(candidates))
		p := candidates[i]
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]

		if world.Contains(p) && occupied[p] < maxOccupantsPerCell {
			w.SetLocation(p)
			break
		}
	}
	return w.Location()
}

func neighborhood(center, offset entity.Point) []entity.Point {
	dx, dy := abs(offset.X), abs(offset.Y)
	out := make([]entity.Point, 0, (2*dx+1)*(2*dy+1))
	for x := center.X - dx; x <= center.X+dx; x++ {
		for y := center.Y - dy; y <= center.Y+dy; y++ {
			out = append(out, entity.Point{X: x, Y: y})
		}
	}
	return out
}

// occupancy 统计每格人数，skip 不计入（移动者原位置视为已腾空）。
func occupancy(warriors []*entity.Warrior, skip *entity.Warrior) map[entity.Point]int {
	out := make(map[entity.Point]int, len(warriors))
	for _, w := range warriors {
		if w == skip {
			continue
		}
		out[w.Location()]++
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
