package entity

import "Highlander/internal/shared/utils"

// DefaultSanctuaryRatio 是避难格占棋盘面积的比例，至少一格。
const DefaultSanctuaryRatio = 0.01

// Rand 是领域层需要的最小随机源，*rand.Rand 直接满足。
type Rand interface {
	IntN(n int) int
}

type WorldOption func(*World)

// WithRand 注入随机源，测试用固定 seed 复现避难格。
func WithRand(r Rand) WorldOption {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

func WithSanctuaryRatio(ratio float64) WorldOption {
	return func(w *World) {
		if ratio >= 0 {
			w.sanctuaryRatio = ratio
		}
	}
}

// World 是棋盘：边界不可变、避难格构造时确定、战斗格每回合重置。
type World struct {
	xStart, yStart int
	xLimit, yLimit int

	sanctuaries    map[Point]struct{}
	fightLocations []Point

	rng            Rand
	sanctuaryRatio float64
}

// NewWorld 创建 [0,xLimit]×[0,yLimit] 的棋盘（闭区间）。
func NewWorld(xLimit, yLimit int, opts ...WorldOption) (*World, error) {
	if xLimit < 0 || yLimit < 0 {
		return nil, ErrInvalidDimension.WithDataMap(map[string]any{
			"x_limit": xLimit,
			"y_limit": yLimit,
		})
	}
	w := &World{
		xLimit:         xLimit,
		yLimit:         yLimit,
		sanctuaryRatio: DefaultSanctuaryRatio,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = utils.NewRand(0)
	}
	w.sanctuaries = w.pickSanctuaries()
	return w, nil
}

func (w *World) XStart() int { return w.xStart }
func (w *World) YStart() int { return w.yStart }
func (w *World) XLimit() int { return w.xLimit }
func (w *World) YLimit() int { return w.yLimit }

// Width/Height 是两个方向上的格子数。
func (w *World) Width() int { return w.xLimit - w.xStart + 1 }
func (w *World) Height() int { return w.yLimit - w.yStart + 1 }

func (w *World) Area() int {
	return w.Width() * w.Height()
}

func (w *World) Contains(p Point) bool {
	return p.X >= w.xStart && p.X <= w.xLimit && p.Y >= w.yStart && p.Y <= w.yLimit
}

// RandomPoint 在棋盘内均匀取一格。
func (w *World) RandomPoint(r Rand) Point {
	return Point{
		X: w.xStart + r.IntN(w.Width()),
		Y: w.yStart + r.IntN(w.Height()),
	}
}

// SanctuaryLocations 返回避难格集合的拷贝。
func (w *World) SanctuaryLocations() map[Point]struct{} {
	out := make(map[Point]struct{}, len(w.sanctuaries))
	for p := range w.sanctuaries {
		out[p] = struct{}{}
	}
	return out
}

func (w *World) IsSanctuary(p Point) bool {
	_, ok := w.sanctuaries[p]
	return ok
}

// RecordFight 用 p 替换本回合的战斗格集合。
func (w *World) RecordFight(p Point) {
	w.fightLocations = append(w.fightLocations[:0], p)
}

func (w *World) ClearFights() {
	w.fightLocations = w.fightLocations[:0]
}

func (w *World) FightLocations() []Point {
	return append([]Point(nil), w.fightLocations...)
}

func (w *World) pickSanctuaries() map[Point]struct{} {
	area := w.Area()
	count := int(float64(area) * w.sanctuaryRatio)
	count = max(1, min(count, area))

	out := make(map[Point]struct{}, count)
	for len(out) < count {
		out[w.RandomPoint(w.rng)] = struct{}{}
	}
	return out
}
