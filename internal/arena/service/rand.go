package service

import (
	"Highlander/internal/arena/entity"
	"Highlander/internal/shared/utils"
)

// Rand 与 entity.Rand 相同，测试里可以换成固定序列。
type Rand = entity.Rand

func orDefaultRand(r Rand) Rand {
	if r == nil {
		return utils.NewRand(0)
	}
	return r
}
