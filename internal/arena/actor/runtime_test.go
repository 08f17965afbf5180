package actor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/simconfig"
	"Highlander/internal/shared/transport"
)

type recordingListener struct {
	mu     sync.Mutex
	rounds []messages.RoundView
}

func (l *recordingListener) OnRound(_ int, view messages.RoundView) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rounds = append(l.rounds, view)
}

func (l *recordingListener) first() messages.RoundView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rounds[0]
}

func (l *recordingListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rounds)
}

func testConfig() simconfig.Config {
	c := simconfig.Default()
	c.Arena.XLimit, c.Arena.YLimit = 5, 5
	c.Arena.Warriors = 8
	c.Arena.Seed = 11
	c.Arena.TickInterval = 0
	return c
}

func newTestRuntime(t *testing.T, c simconfig.Config) (*Runtime, *recordingListener) {
	t.Helper()
	l := &recordingListener{}
	rt := NewRuntime(c, l, nil)
	t.Cleanup(rt.Shutdown)
	return rt, l
}

func TestRuntime_查询推进重开(t *testing.T) {
	rt, l := newTestRuntime(t, testConfig())
	ctx := context.Background()

	state, err := rt.State(ctx, 1)
	if err != nil {
		t.Fatalf("state err=%v", err)
	}
	if state.Round != 0 || len(state.Warriors) != 8 || state.XLimit != 5 || state.Generation != 1 {
		t.Fatalf("初始快照不对: %+v", state)
	}
	if len(state.Sanctuaries) == 0 {
		t.Fatalf("至少应有一个避难格")
	}

	reply, err := rt.NextRound(ctx, 1)
	if err != nil {
		t.Fatalf("next err=%v", err)
	}
	if reply.Round.Round != 1 || reply.State.Round != 1 {
		t.Fatalf("round=%d state.round=%d", reply.Round.Round, reply.State.Round)
	}
	if len(reply.State.Warriors) != reply.Round.Survivors {
		t.Fatalf("快照人数与回合幸存数不一致")
	}
	if l.count() != 1 {
		t.Fatalf("listener 应收到 1 回合, got=%d", l.count())
	}

	restarted, err := rt.Restart(ctx, 1, 5)
	if err != nil {
		t.Fatalf("restart err=%v", err)
	}
	if restarted.Round != 0 || restarted.Generation != 2 || len(restarted.Warriors) != 8 {
		t.Fatalf("重开后快照不对: %+v", restarted)
	}
}

func TestRuntime_非法竞技场(t *testing.T) {
	rt, _ := newTestRuntime(t, testConfig())
	_, err := rt.State(context.Background(), 2)
	var re *RuntimeError
	if !errors.As(err, &re) || re.Code != transport.InvalidParam {
		t.Fatalf("err=%v", err)
	}
	if CodeFromError(err) != transport.InvalidParam {
		t.Fatalf("code=%d", CodeFromError(err))
	}
}

func TestRuntime_自动推进到结束后停止(t *testing.T) {
	c := testConfig()
	c.Arena.XLimit, c.Arena.YLimit = 0, 0
	c.Arena.Warriors = 1
	c.Arena.TickInterval = 5 * time.Millisecond
	_, l := newTestRuntime(t, c)

	deadline := time.Now().Add(2 * time.Second)
	for l.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("自动推进没有发生")
		}
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(50 * time.Millisecond)
	n := l.count()
	time.Sleep(50 * time.Millisecond)
	if l.count() != n {
		t.Fatalf("对局结束后仍在推进: %d -> %d", n, l.count())
	}
	if !l.first().Concluded {
		t.Fatalf("一人对局应立即结束")
	}
}

func TestRuntime_开局失败返回不可用或超时(t *testing.T) {
	c := testConfig()
	c.Arena.XLimit, c.Arena.YLimit = 0, 0
	c.Arena.Warriors = 3
	c.Arena.AskTimeout = 100 * time.Millisecond
	rt, _ := newTestRuntime(t, c)

	_, err := rt.State(context.Background(), 1)
	if err == nil {
		t.Fatalf("棋盘放不下时不应返回快照")
	}
	if code := CodeFromError(err); code != transport.Timeout && code != transport.Unavailable && code != transport.SystemError {
		t.Fatalf("code=%d", code)
	}
}

func TestTimeoutFromContext_取较小值(t *testing.T) {
	r := &Runtime{timeout: time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if got := r.timeoutFromContext(ctx); got > 100*time.Millisecond {
		t.Fatalf("got=%v", got)
	}
	if got := r.timeoutFromContext(context.Background()); got != time.Second {
		t.Fatalf("got=%v", got)
	}
}
