package utils

import "testing"

func TestNewRand_相同seed序列一致(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 16; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("第 %d 次取值不同: %d vs %d", i, x, y)
		}
	}
}

func TestDeriveSeed(t *testing.T) {
	if got := DeriveSeed(0, 3); got != 0 {
		t.Fatalf("基准为 0 时应保持 0, got=%d", got)
	}
	if DeriveSeed(5, 1) == DeriveSeed(5, 2) {
		t.Fatalf("不同组件应派生出不同 seed")
	}
}
