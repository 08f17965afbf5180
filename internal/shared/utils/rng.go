package utils

import "math/rand/v2"

// NewRand 按 seed 创建独立的随机源；seed 为 0 时取运行时随机种子，
// 每个组件各持一个，互不共享。
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// DeriveSeed 从基准 seed 派生出第 n 个组件的 seed，基准为 0 时保持随机。
func DeriveSeed(base int64, n int) int64 {
	if base == 0 {
		return 0
	}
	return base + int64(n)*7919
}
