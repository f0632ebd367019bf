package handler

import (
	"net/http"

	"github.com/AtharvaZ/Portfolio-website/internal/auth"
	"github.com/AtharvaZ/Portfolio-website/internal/middleware"
	"github.com/AtharvaZ/Portfolio-website/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler 负责管理员登录/登出相关接口
type AuthHandler struct {
	Sessions *auth.SessionManager
}

func NewAuthHandler(sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// ---------- 登录 ----------

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "username and password required")
		return
	}

	token, err := h.Sessions.Login(req.Username, req.Password)
	if err != nil {
		util.ErrorFrom(c, err)
		return
	}

	util.Success(c, util.Response{"token": token})
}

// Logout 幂等登出：未知 token 也返回成功
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.Logout(middleware.SessionToken(c))
	util.Success(c, nil)
}

// Verify sits behind the session middleware; reaching it means the
// token is active.
func (h *AuthHandler) Verify(c *gin.Context) {
	util.Success(c, nil)
}
