package ws

import (
	"net/http"
	"sync"

	"Highlander/internal/shared/actor/messages"
	"Highlander/modules/kit/logx"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub 按竞技场维护观战连接，每回合结算后广播 RoundView。
type Hub struct {
	mu       sync.RWMutex
	conns    map[int]map[*WsServer]struct{}
	upgrader websocket.Upgrader
	log      logx.Logger
}

func NewHub(l logx.Logger) *Hub {
	if l == nil {
		l = logx.Nop()
	}
	return &Hub{
		conns: make(map[int]map[*WsServer]struct{}),
		upgrader: websocket.Upgrader{
			// 观战页面可能来自任意源
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: l,
	}
}

// Serve 升级连接并登记到 arenaID 下，连接关闭时自动注销。
func (h *Hub) Serve(arenaID int, w http.ResponseWriter, r *http.Request) (WSConn, error) {
	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade error", zap.Error(err))
		return nil, err
	}

	conn := NewWsServer(wsConn, arenaID, h.log)
	h.add(conn)
	conn.Run()
	go func() {
		<-conn.Done()
		h.remove(conn)
	}()

	h.log.Info("spectator joined", zap.Int("arena_id", arenaID), zap.String("addr", conn.Addr()))
	return conn, nil
}

// OnRound 在 actor goroutine 内调用，只做非阻塞投递。
func (h *Hub) OnRound(arenaID int, view messages.RoundView) {
	h.mu.RLock()
	targets := make([]*WsServer, 0, len(h.conns[arenaID]))
	for c := range h.conns[arenaID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.Push(RoundMsg, view)
	}
}

func (h *Hub) Count(arenaID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[arenaID])
}

// Close 断开全部连接，用于进程退出。
func (h *Hub) Close() {
	h.mu.RLock()
	all := make([]*WsServer, 0)
	for _, set := range h.conns {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.RUnlock()
	for _, c := range all {
		c.Close()
	}
}

func (h *Hub) add(c *WsServer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.conns[c.arenaID]
	if set == nil {
		set = make(map[*WsServer]struct{})
		h.conns[c.arenaID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(c *WsServer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.conns[c.arenaID]
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, c.arenaID)
	}
}
