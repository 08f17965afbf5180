package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/transport"

	"github.com/gorilla/websocket"
)

func newHubServer(t *testing.T, arenaID int) (*Hub, *websocket.Conn) {
	t.Helper()
	hub := NewHub(nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = hub.Serve(arenaID, w, r)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial err=%v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	waitFor(t, func() bool { return hub.Count(arenaID) == 1 })
	return hub, conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("等待条件超时")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readBody(t *testing.T, conn *websocket.Conn) RespBody {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read err=%v", err)
	}
	var body RespBody
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	return body
}

func TestHub_广播回合(t *testing.T) {
	hub, conn := newHubServer(t, 1)

	hub.OnRound(2, messages.RoundView{ArenaID: 2, Round: 9})
	hub.OnRound(1, messages.RoundView{ArenaID: 1, Round: 3, Survivors: 5})

	body := readBody(t, conn)
	if body.Name != RoundMsg {
		t.Fatalf("name=%q", body.Name)
	}
	msg, _ := body.Msg.(map[string]any)
	if msg["round"] != float64(3) || msg["survivors"] != float64(5) {
		t.Fatalf("收到了别的竞技场或错误的回合: %v", body.Msg)
	}
}

func TestHub_心跳回写服务端时间(t *testing.T) {
	_, conn := newHubServer(t, 1)

	if err := conn.WriteJSON(ReqBody{Seq: 7, Name: HeartbeatMsg, Msg: map[string]any{"ctime": 100}}); err != nil {
		t.Fatalf("write err=%v", err)
	}
	body := readBody(t, conn)
	msg, _ := body.Msg.(map[string]any)
	if body.Seq != 7 || msg["ctime"] != float64(100) || msg["stime"] == float64(0) {
		t.Fatalf("心跳应答不对: %+v", body)
	}
}

func TestHub_观战连接只读(t *testing.T) {
	_, conn := newHubServer(t, 1)

	if err := conn.WriteJSON(ReqBody{Seq: 1, Name: "arena.next"}); err != nil {
		t.Fatalf("write err=%v", err)
	}
	if body := readBody(t, conn); body.Code != transport.InvalidParam {
		t.Fatalf("code=%d", body.Code)
	}
}

func TestHub_断开后注销(t *testing.T) {
	hub, conn := newHubServer(t, 1)
	_ = conn.Close()
	waitFor(t, func() bool { return hub.Count(1) == 0 })
}
