package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Highlander/internal/arena/actor"
	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/transport"

	"github.com/gin-gonic/gin"
)

type fakeRuntime struct {
	state     messages.ArenaState
	err       error
	lastSeed  int64
	lastArena int
}

func (f *fakeRuntime) State(_ context.Context, id int) (messages.ArenaState, error) {
	f.lastArena = id
	return f.state, f.err
}

func (f *fakeRuntime) NextRound(_ context.Context, id int) (*messages.AHNextRound, error) {
	f.lastArena = id
	if f.err != nil {
		return nil, f.err
	}
	return &messages.AHNextRound{Round: messages.RoundView{ArenaID: id, Round: f.state.Round + 1}, State: f.state}, nil
}

func (f *fakeRuntime) Restart(_ context.Context, id int, seed int64) (messages.ArenaState, error) {
	f.lastArena, f.lastSeed = id, seed
	return f.state, f.err
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func serve(t *testing.T, rt ArenaRuntime, method, path, body string) envelope {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHttpHandler(rt, nil).RegisterRoutes(engine.Group(""))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	if w.Code != nethttp.StatusOK {
		t.Fatalf("http status=%d", w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal err=%v body=%s", err, w.Body.String())
	}
	return env
}

func TestState_返回快照(t *testing.T) {
	rt := &fakeRuntime{state: messages.ArenaState{ArenaID: 1, Round: 4, State: "populated"}}
	env := serve(t, rt, nethttp.MethodGet, "/arenas/1", "")
	if env.Code != transport.OK {
		t.Fatalf("code=%d msg=%s", env.Code, env.Msg)
	}
	var state messages.ArenaState
	_ = json.Unmarshal(env.Data, &state)
	if state.Round != 4 || state.State != "populated" {
		t.Fatalf("state=%+v", state)
	}
}

func TestState_非法编号(t *testing.T) {
	rt := &fakeRuntime{}
	if env := serve(t, rt, nethttp.MethodGet, "/arenas/abc", ""); env.Code != transport.InvalidParam {
		t.Fatalf("code=%d", env.Code)
	}
	if rt.lastArena != 0 {
		t.Fatalf("非法编号不应调用 runtime")
	}
}

func TestNextRound_推进一回合(t *testing.T) {
	rt := &fakeRuntime{state: messages.ArenaState{Round: 2}}
	env := serve(t, rt, nethttp.MethodPost, "/arenas/3/rounds", "")
	var reply messages.AHNextRound
	_ = json.Unmarshal(env.Data, &reply)
	if env.Code != transport.OK || reply.Round.Round != 3 || rt.lastArena != 3 {
		t.Fatalf("env=%+v reply=%+v", env, reply)
	}
}

func TestRestart_可选种子(t *testing.T) {
	rt := &fakeRuntime{}
	if env := serve(t, rt, nethttp.MethodPost, "/arenas/1/restart", ""); env.Code != transport.OK || rt.lastSeed != 0 {
		t.Fatalf("空请求体应可重开, env=%+v", env)
	}
	if env := serve(t, rt, nethttp.MethodPost, "/arenas/1/restart", `{"seed":99}`); env.Code != transport.OK || rt.lastSeed != 99 {
		t.Fatalf("seed=%d env=%+v", rt.lastSeed, env)
	}
	if env := serve(t, rt, nethttp.MethodPost, "/arenas/1/restart", `{"seed":`); env.Code != transport.InvalidParam {
		t.Fatalf("坏 JSON 应返回参数错误, code=%d", env.Code)
	}
}

func TestRuntimeError_按业务码映射(t *testing.T) {
	biz := &fakeRuntime{err: &actor.RuntimeError{Code: transport.ArenaFull, Message: "棋盘没有空位"}}
	if env := serve(t, biz, nethttp.MethodPost, "/arenas/1/restart", ""); env.Code != transport.ArenaFull || env.Msg != "棋盘没有空位" {
		t.Fatalf("env=%+v", env)
	}

	sys := &fakeRuntime{err: &actor.RuntimeError{Code: transport.Timeout, Message: "actor 请求失败"}}
	env := serve(t, sys, nethttp.MethodGet, "/arenas/1", "")
	if env.Code != transport.Timeout || env.Msg == "actor 请求失败" {
		t.Fatalf("系统错误不应透出内部信息, env=%+v", env)
	}
}
