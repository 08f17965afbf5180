package http

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"strconv"

	"Highlander/internal/arena/interfaces/handler"
	"Highlander/internal/arena/interfaces/handler/http/dto"
	"Highlander/internal/shared/actor/messages"
	"Highlander/internal/shared/transport"
	"Highlander/internal/shared/transport/ws"

	"github.com/gin-gonic/gin"
)

// ArenaRuntime 是 HTTP 层依赖的 actor 门面。
type ArenaRuntime interface {
	State(ctx context.Context, arenaID int) (messages.ArenaState, error)
	NextRound(ctx context.Context, arenaID int) (*messages.AHNextRound, error)
	Restart(ctx context.Context, arenaID int, seed int64) (messages.ArenaState, error)
}

type Spectators interface {
	Serve(arenaID int, w nethttp.ResponseWriter, r *nethttp.Request) (ws.WSConn, error)
}

type HttpHandler struct {
	runtime    ArenaRuntime
	spectators Spectators
}

func NewHttpHandler(rt ArenaRuntime, spectators Spectators) *HttpHandler {
	return &HttpHandler{runtime: rt, spectators: spectators}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	arenaGroup := group.Group("/arenas/:id")
	arenaGroup.GET("", h.State)
	arenaGroup.POST("/rounds", h.NextRound)
	arenaGroup.POST("/restart", h.Restart)
	if h.spectators != nil {
		arenaGroup.GET("/ws", h.Watch)
	}
}

func (h *HttpHandler) State(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.arenaID(c)
	if !ok {
		return
	}
	state, err := h.runtime.State(ctx, id)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, state)
}

func (h *HttpHandler) NextRound(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.arenaID(c)
	if !ok {
		return
	}
	reply, err := h.runtime.NextRound(ctx, id)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, reply)
}

// Restart 请求体可省略；{"seed":n} 指定新对局的种子。
func (h *HttpHandler) Restart(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.arenaID(c)
	if !ok {
		return
	}
	var req dto.RestartReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	state, err := h.runtime.Restart(ctx, id, req.Seed)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, state)
}

// Watch 先校验竞技场存在再升级，升级后立即推送一次当前快照。
func (h *HttpHandler) Watch(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.arenaID(c)
	if !ok {
		return
	}
	state, err := h.runtime.State(ctx, id)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	conn, err := h.spectators.Serve(id, c.Writer, c.Request)
	if err != nil {
		transport.SetErrorReason(ctx, "WS_UPGRADE_FAILED")
		return
	}
	transport.SetBizCode(ctx, transport.OK)
	conn.Push(ws.StateMsg, state)
}

func (h *HttpHandler) arenaID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.fail(c, transport.InvalidParam, "竞技场编号有误")
		return 0, false
	}
	return id, true
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, err error) {
	code, msg := handler.HandleError(ctx, err)
	h.fail(c, code, msg)
}

func (h *HttpHandler) HttpRegister(group *gin.RouterGroup) {
	h.RegisterRoutes(group)
}
