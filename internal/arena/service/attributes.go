package service

import "Highlander/internal/arena/entity"

// AttributeRanges 是初始属性的取值区间，左闭右开。
type AttributeRanges struct {
	MinAge       int `mapstructure:"min_age"`
	MaxAge       int `mapstructure:"max_age"`
	MinAttribute int `mapstructure:"min_attribute"`
	MaxAttribute int `mapstructure:"max_attribute"`
}

const (
	DefaultMinAge       = 25
	DefaultMaxAge       = 2000
	DefaultMinAttribute = 1
	DefaultMaxAttribute = 200

	// 胜者额外获得的生命值
	victoryHealthBonus = 2
)

func DefaultAttributeRanges() AttributeRanges {
	return AttributeRanges{
		MinAge:       DefaultMinAge,
		MaxAge:       DefaultMaxAge,
		MinAttribute: DefaultMinAttribute,
		MaxAttribute: DefaultMaxAttribute,
	}
}

// Valid 要求区间非空且下界为正。
func (r AttributeRanges) Valid() bool {
	return r.MinAge >= 0 && r.MaxAge > r.MinAge &&
		r.MinAttribute > 0 && r.MaxAttribute > r.MinAttribute
}

type AttributesHandler struct {
	rng    Rand
	ranges AttributeRanges
}

// NewAttributesHandler 区间不合法时回退到默认值。
func NewAttributesHandler(rng Rand, ranges AttributeRanges) *AttributesHandler {
	if !ranges.Valid() {
		ranges = DefaultAttributeRanges()
	}
	return &AttributesHandler{rng: orDefaultRand(rng), ranges: ranges}
}

func (h *AttributesHandler) AssignInitialAttributes(w *entity.Warrior) {
	w.Age = h.between(h.ranges.MinAge, h.ranges.MaxAge)
	w.Health = h.between(h.ranges.MinAttribute, h.ranges.MaxAttribute)
	w.Strength = h.between(h.ranges.MinAttribute, h.ranges.MaxAttribute)
}

func (h *AttributesHandler) AdvanceRound(w *entity.Warrior) {
	w.Age++
	w.Health++
	w.Strength++
}

// TransferOnVictory 胜者吸收败者力量；败者力量清零（即将出局也要清零，便于观测）。
func (h *AttributesHandler) TransferOnVictory(winner, loser *entity.Warrior) {
	winner.Health += victoryHealthBonus
	winner.Strength += loser.Strength
	loser.Strength = 0
}

func (h *AttributesHandler) between(lo, hi int) int {
	return lo + h.rng.IntN(hi-lo)
}
