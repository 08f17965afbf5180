package service

import (
	"Highlander/internal/arena/entity"
	"Highlander/internal/arena/service/port"
)

// luckyBonusRatio 是幸运加成占战力的比例。
const luckyBonusRatio = 0.1

type FightEngine struct {
	rng        Rand
	attributes port.AttributesHandler
}

// NewFightEngine 属性处理器是必需的协作者，缺失时直接失败。
func NewFightEngine(rng Rand, attributes port.AttributesHandler) (*FightEngine, error) {
	if attributes == nil {
		return nil, entity.ErrCollaboratorNotConfigured.WithData("collaborator", "attributes")
	}
	return &FightEngine{rng: orDefaultRand(rng), attributes: attributes}, nil
}

// Rank 是不含幸运加成的基础战力。
func Rank(w *entity.Warrior) float64 {
	return float64(w.Health)/3.0 + float64(w.Strength)
}

// Resolve 计算双方战力，随机给其中一方 10% 的幸运加成，战力高者胜并吸收败者属性。
// 战力完全相等时没有胜者，双方都不变。
func (e *FightEngine) Resolve(a, b *entity.Warrior) (*entity.Warrior, error) {
	if e == nil || e.attributes == nil {
		return nil, entity.ErrCollaboratorNotConfigured.WithData("collaborator", "attributes")
	}
	rankA, rankB := Rank(a), Rank(b)
	if e.rng.IntN(2) == 0 {
		rankA += rankA * luckyBonusRatio
	} else {
		rankB += rankB * luckyBonusRatio
	}

	switch {
	case rankA > rankB:
		e.attributes.TransferOnVictory(a, b)
		return a, nil
	case rankB > rankA:
		e.attributes.TransferOnVictory(b, a)
		return b, nil
	default:
		return nil, nil
	}
}
