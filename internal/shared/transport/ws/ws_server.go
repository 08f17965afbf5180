package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"Highlander/internal/shared/transport"
	"Highlander/modules/kit/logx"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	outChanSize    = 256
)

type WsServer struct {
	conn      *websocket.Conn
	arenaID   int
	outChan   chan *WsMsgResp
	done      chan struct{}
	closeOnce sync.Once
	log       logx.Logger
}

func NewWsServer(wsConn *websocket.Conn, arenaID int, l logx.Logger) *WsServer {
	if l == nil {
		l = logx.Nop()
	}
	return &WsServer{
		conn:    wsConn,
		arenaID: arenaID,
		outChan: make(chan *WsMsgResp, outChanSize),
		done:    make(chan struct{}),
		log:     l,
	}
}

func (s *WsServer) Addr() string {
	return s.conn.RemoteAddr().String()
}

func (s *WsServer) ArenaID() int {
	return s.arenaID
}

func (s *WsServer) Push(name string, data any) bool {
	return s.push(&WsMsgResp{Body: &RespBody{Name: name, Msg: data}})
}

func (s *WsServer) push(rsp *WsMsgResp) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.outChan <- rsp:
		return true
	default:
		s.log.Warn("ws_server drop slow client", zap.String("addr", s.Addr()), zap.Int("arena_id", s.arenaID))
		s.Close()
		return false
	}
}

func (s *WsServer) Run() {
	go s.readMsgLoop()
	go s.writeMsgLoop()
}

// readMsgLoop 只处理心跳；观战连接不接受其它指令。
func (s *WsServer) readMsgLoop() {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error("ws readMsgLoop panic", zap.String("err", fmt.Sprintf("%v", err)))
		}
		s.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("ws_server read msg", zap.Error(err))
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))

		req := ReqBody{}
		if err := json.Unmarshal(data, &req); err != nil {
			s.log.Debug("ws_server unmarshal json error", zap.Error(err))
			continue
		}

		resp := &WsMsgResp{Body: &RespBody{Seq: req.Seq, Name: req.Name}}
		if req.Name == HeartbeatMsg {
			h := &Heartbeat{}
			_ = mapstructure.Decode(req.Msg, h)
			h.STime = time.Now().UnixMilli()
			resp.Body.Msg = h
		} else {
			resp.Body.Code = transport.InvalidParam
			resp.Body.Msg = "spectator connection is read-only"
		}
		s.push(resp)
	}
}

func (s *WsServer) writeMsgLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()
	for {
		select {
		case msg := <-s.outChan:
			if err := s.write(msg); err != nil {
				s.log.Debug("ws_server write error", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *WsServer) write(msg *WsMsgResp) error {
	marshal, err := json.Marshal(msg.Body)
	if err != nil {
		s.log.Error("ws_server write marshal json error", zap.Error(err))
		return nil
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, marshal)
}

func (s *WsServer) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *WsServer) Done() <-chan struct{} {
	return s.done
}
