package port

import "Highlander/internal/arena/entity"

// GameState 是协作者能看到的对局状态：实时名单 + 棋盘。
type GameState interface {
	Warriors() []*entity.Warrior
	World() *entity.World
}

// Relocator 负责初始落点和每回合的移动。
type Relocator interface {
	FindEmptyStart(game GameState) (entity.Point, error)
	Relocate(game GameState, w *entity.Warrior, offset entity.Point) entity.Point
}

// Battlefield 结算同格两名战士的战斗；平局返回 nil 胜者。
type Battlefield interface {
	Resolve(a, b *entity.Warrior) (*entity.Warrior, error)
}

// AttributesHandler 负责属性的初始化、成长和胜负转移。
type AttributesHandler interface {
	AssignInitialAttributes(w *entity.Warrior)
	AdvanceRound(w *entity.Warrior)
	TransferOnVictory(winner, loser *entity.Warrior)
}
