package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors 放行观战页面的跨域请求，预检请求直接 204。
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+TraceHeader)
		c.Header("Access-Control-Expose-Headers", TraceHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
