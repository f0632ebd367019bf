package handler

import (
	"net/http"

	"github.com/AtharvaZ/Portfolio-website/internal/mailer"
	"github.com/AtharvaZ/Portfolio-website/internal/util"

	"github.com/gin-gonic/gin"
)

// ContactHandler 负责联系表单转发
type ContactHandler struct {
	Mailer *mailer.Mailer
}

func NewContactHandler(m *mailer.Mailer) *ContactHandler {
	return &ContactHandler{Mailer: m}
}

type contactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "name, email and message are required")
		return
	}

	if err := h.Mailer.SendContact(req.Name, req.Email, req.Message); err != nil {
		util.ErrorFrom(c, err)
		return
	}

	util.Success(c, util.Response{"message": "Your message has been sent successfully!"})
}
