package middleware

import (
	"github.com/AtharvaZ/Portfolio-website/internal/auth"
	"github.com/AtharvaZ/Portfolio-website/internal/util"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the header the admin frontend sends on every
// mutating call.
const TokenHeader = "X-Session-Token"

// SessionToken pulls the bearer token out of a request.
func SessionToken(c *gin.Context) string {
	var tokenStr string

	// 1) Header: X-Session-Token: xxx
	tokenStr = c.GetHeader(TokenHeader)

	// 2) URL 查询参数 ?token=xxx（用于下载等无法自定义 Header 的场景）
	if tokenStr == "" {
		tokenStr = c.Query("token")
	}

	return tokenStr
}

// SessionAuth 校验管理员会话，未登录的请求直接中止。
// Reads never pass through here; only mutating routes are gated.
func SessionAuth(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Validate(SessionToken(c)); err != nil {
			util.ErrorFrom(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
