package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Highlander/internal/shared/transport"
	"Highlander/modules/kit/logx"
	"Highlander/modules/kit/tracex"

	"github.com/gin-gonic/gin"
)

// TraceHeader 是回写给客户端的 trace id 头，便于按 id 检索访问日志。
const TraceHeader = "X-Trace-Id"

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(data []byte) (int, error) {
	_, _ = w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	_, _ = w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// AccessLog 统一写访问日志，业务码优先取响应体里的 `code` 字段。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		parent := c.Request.Context()
		if id := c.GetHeader(TraceHeader); id != "" {
			parent = tracex.WithTraceID(parent, id)
		}
		ctx := transport.NewContextWithParent(parent, action)
		c.Request = c.Request.WithContext(ctx)
		if id, ok := tracex.TraceIDFrom(ctx); ok {
			c.Header(TraceHeader, id)
		}

		bw := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		if bizCode, ok := parseBizCode(bw.body.Bytes()); ok {
			transport.SetBizCode(ctx, transport.BizCode(bizCode))
		} else if c.Writer.Status() >= http.StatusBadRequest {
			transport.SetBizCode(ctx, transport.BizCode(transport.SystemError))
		} else {
			transport.SetBizCode(ctx, transport.BizCode(transport.OK))
		}

		transport.WriteAccessLog(ctx, log)
	}
}

func parseBizCode(body []byte) (int, bool) {
	if len(body) == 0 {
		return 0, false
	}

	// 优先按常见响应体格式解析：{"code":123, ...}
	var payload struct {
		Code *int `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, false
	}
	if payload.Code == nil {
		return 0, false
	}
	return *payload.Code, true
}
