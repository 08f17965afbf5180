package dc

import (
	"context"
	"errors"
	"testing"

	"Highlander/internal/arena/entity"
	"Highlander/internal/shared/simconfig"
)

func newDC(seed int64) *ArenaDC {
	c := simconfig.Default()
	c.Arena.XLimit, c.Arena.YLimit = 9, 9
	c.Arena.Warriors = 6
	c.Arena.Seed = seed
	return NewArenaDC(c.Arena, c.Attributes, nil)
}

func TestLoad_开局人数与边界(t *testing.T) {
	d := newDC(42)
	game, err := d.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(game.Warriors()) != 6 {
		t.Fatalf("期望 6 名战士, got=%d", len(game.Warriors()))
	}
	for _, w := range game.Warriors() {
		if !d.World().Contains(w.Location()) {
			t.Fatalf("战士 %d 越界: %v", w.ID(), w.Location())
		}
	}
	if d.Generation() != 1 {
		t.Fatalf("generation=%d", d.Generation())
	}
}

func TestLoad_相同种子结果一致(t *testing.T) {
	a, _ := newDC(7).Load(context.Background(), 1)
	b, _ := newDC(7).Load(context.Background(), 1)
	for i := range a.Warriors() {
		wa, wb := a.Warriors()[i], b.Warriors()[i]
		if wa.Location() != wb.Location() || wa.Attributes != wb.Attributes {
			t.Fatalf("同种子第 %d 名战士不一致: %+v vs %+v", i, wa, wb)
		}
	}
}

func TestRestart_复用棋盘(t *testing.T) {
	d := newDC(3)
	first, err := d.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	world := d.World()
	if _, err := first.NextRound(); err != nil {
		t.Fatalf("err=%v", err)
	}

	firstMatch := d.MatchID()
	second, err := d.Restart(1, 0)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if second == first || second.World() != world {
		t.Fatalf("重开应换新对局但沿用棋盘")
	}
	if d.MatchID() == firstMatch {
		t.Fatalf("重开后应分配新的对局编号")
	}
	if second.Round() != 0 || d.Generation() != 2 {
		t.Fatalf("round=%d generation=%d", second.Round(), d.Generation())
	}
}

func TestRestart_未加载时报错(t *testing.T) {
	_, err := newDC(1).Restart(1, 0)
	if !errors.Is(err, entity.ErrCollaboratorNotConfigured) {
		t.Fatalf("err=%v", err)
	}
}

func TestLoad_棋盘放不下时报错(t *testing.T) {
	c := simconfig.Default()
	c.Arena.XLimit, c.Arena.YLimit = 0, 0
	c.Arena.Warriors = 4
	d := NewArenaDC(c.Arena, c.Attributes, nil)
	if _, err := d.Load(context.Background(), 1); !errors.Is(err, entity.ErrNoSpaceAvailable) {
		t.Fatalf("1x1 棋盘放 4 人应报 ErrNoSpaceAvailable, err=%v", err)
	}
}
