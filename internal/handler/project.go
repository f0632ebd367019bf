package handler

import (
	"net/http"
	"strconv"

	"github.com/AtharvaZ/Portfolio-website/internal/models"
	"github.com/AtharvaZ/Portfolio-website/internal/repo"
	"github.com/AtharvaZ/Portfolio-website/internal/util"

	"github.com/gin-gonic/gin"
)

// ProjectHandler 负责项目目录的增删改查
type ProjectHandler struct {
	Projects *repo.Projects
}

func NewProjectHandler(projects *repo.Projects) *ProjectHandler {
	return &ProjectHandler{Projects: projects}
}

// projectReq carries the mutable fields; any id in the body is
// ignored (assigned on create, immutable on update).
type projectReq struct {
	Title string         `json:"title"`
	Desc  string         `json:"desc"`
	Tech  []string       `json:"tech"`
	Links models.LinkMap `json:"links"`
}

func (r projectReq) toModel() models.Project {
	return models.Project{
		Title: r.Title,
		Desc:  r.Desc,
		Tech:  r.Tech,
		Links: r.Links,
	}
}

// List 公开接口，无需登录
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Projects.List()
	if err != nil {
		util.ErrorFrom(c, err)
		return
	}
	util.Success(c, util.Response{"projects": projects})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid project payload")
		return
	}

	project, err := h.Projects.Create(req.toModel())
	if err != nil {
		util.ErrorFrom(c, err)
		return
	}
	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid project payload")
		return
	}

	project, err := h.Projects.Update(id, req.toModel())
	if err != nil {
		util.ErrorFrom(c, err)
		return
	}
	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.Projects.Delete(id); err != nil {
		util.ErrorFrom(c, err)
		return
	}
	util.Success(c, nil)
}
