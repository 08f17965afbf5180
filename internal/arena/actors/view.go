package actors

import (
	"slices"

	"Highlander/internal/arena/entity"
	"Highlander/internal/arena/service"
	"Highlander/internal/shared/actor/messages"
)

func cell(p entity.Point) messages.Cell {
	return messages.Cell{X: p.X, Y: p.Y}
}

func warriorViews(ws []*entity.Warrior) []messages.WarriorView {
	out := make([]messages.WarriorView, 0, len(ws))
	for _, w := range ws {
		out = append(out, messages.WarriorView{
			ID:        w.ID(),
			Name:      w.Name(),
			Location:  cell(w.Location()),
			Previous:  cell(w.PreviousLocation()),
			Direction: w.Direction().String(),
			Age:       w.Age,
			Health:    w.Health,
			Strength:  w.Strength,
		})
	}
	return out
}

func arenaState(arenaID, generation int, matchID int64, game *service.Game) messages.ArenaState {
	s := messages.ArenaState{ArenaID: arenaID, MatchID: matchID, Generation: generation}
	if game == nil {
		return s
	}
	world := game.World()
	s.Round = game.Round()
	s.State = game.State().String()
	s.XStart, s.YStart = world.XStart(), world.YStart()
	s.XLimit, s.YLimit = world.XLimit(), world.YLimit()

	for p := range world.SanctuaryLocations() {
		s.Sanctuaries = append(s.Sanctuaries, cell(p))
	}
	sortCells(s.Sanctuaries)
	for _, p := range world.FightLocations() {
		s.Fights = append(s.Fights, cell(p))
	}
	s.Warriors = warriorViews(game.Warriors())
	return s
}

func roundView(arenaID int, matchID int64, r service.RoundReport, survivors []*entity.Warrior) messages.RoundView {
	v := messages.RoundView{
		ArenaID:   arenaID,
		MatchID:   matchID,
		Round:     r.Round,
		Removed:   r.Removed,
		Survivors: r.Survivors,
		Concluded: r.Concluded,
		Fights:    make([]messages.FightView, 0, len(r.Fights)),
		Warriors:  warriorViews(survivors),
	}
	for _, f := range r.Fights {
		v.Fights = append(v.Fights, messages.FightView{
			Location: cell(f.Location),
			A:        f.A,
			B:        f.B,
			Winner:   f.WinnerID,
		})
	}
	return v
}

// sortCells 让避难格输出顺序稳定，map 遍历顺序不可依赖。
func sortCells(cs []messages.Cell) {
	slices.SortFunc(cs, func(a, b messages.Cell) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
}
