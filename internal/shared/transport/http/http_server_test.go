package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"Highlander/internal/shared/transport/http/middleware"
	"Highlander/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewHttpServer_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s := NewHttpServer(":0", gin.New(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}
	if w.Header().Get(middleware.TraceHeader) == "" {
		t.Fatalf("响应应带 trace id 头")
	}
}

func TestAccessLog_从响应体提取业务码(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	s := NewHttpServer(":0", gin.New(), logx.NewZapLogger(zap.New(core)))
	s.Group().GET("/boom", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"code": 409, "msg": "full"})
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/boom", nil)
	req.Header.Set(middleware.TraceHeader, "trace-1")
	s.Handler().ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条访问日志, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["biz_code"] != int64(409) || fields["trace_id"] != "trace-1" {
		t.Fatalf("字段不对: %v", fields)
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("4xx 业务码应为 WARN, got=%v", entries[0].Level)
	}
}

func TestCors_预检请求(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewHttpServer(":0", gin.New(), nil)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(nethttp.MethodOptions, "/healthz", nil))
	if w.Code != nethttp.StatusNoContent {
		t.Fatalf("got=%d", w.Code)
	}
}
