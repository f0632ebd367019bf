package handler

import (
	"errors"
	"net/http"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/repo"
	"github.com/AtharvaZ/Portfolio-website/internal/util"

	"github.com/gin-gonic/gin"
)

// ResumeHandler 负责简历的上传、读取和在线预览
type ResumeHandler struct {
	Config *repo.Config
}

func NewResumeHandler(config *repo.Config) *ResumeHandler {
	return &ResumeHandler{Config: config}
}

// Get returns the stored base64 text. An absent resume is not an HTTP
// error: the old frontend expects 200 with success=false.
func (h *ResumeHandler) Get(c *gin.Context) {
	data, err := h.Config.GetResume()
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No resume uploaded"})
			return
		}
		util.ErrorFrom(c, err)
		return
	}
	util.Success(c, util.Response{"data": data})
}

type uploadResumeReq struct {
	Data string `json:"data"`
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	var req uploadResumeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid resume payload")
		return
	}

	if err := h.Config.SetResume(req.Data); err != nil {
		util.ErrorFrom(c, err)
		return
	}
	util.Success(c, util.Response{"message": "Resume uploaded successfully"})
}

// View serves the decoded PDF inline for browser viewing. "Never
// uploaded" renders a 404 page, a corrupt payload a 500 — the two
// cases stay distinguishable.
func (h *ResumeHandler) View(c *gin.Context) {
	raw, err := h.Config.ResumePDF()
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>No resume uploaded</h1>"))
		case errors.Is(err, apperr.ErrDecode):
			c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte("<h1>Error loading resume</h1>"))
		default:
			util.ErrorFrom(c, err)
		}
		return
	}

	c.Header("Content-Disposition", `inline; filename=resume.pdf`)
	c.Data(http.StatusOK, "application/pdf", raw)
}
