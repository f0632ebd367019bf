package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AtharvaZ/Portfolio-website/internal/repo"
	"github.com/AtharvaZ/Portfolio-website/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 把项目目录导出为 XLSX，方便离线备份
type ExportHandler struct {
	Projects *repo.Projects
}

func NewExportHandler(projects *repo.Projects) *ExportHandler {
	return &ExportHandler{Projects: projects}
}

// XLSX streams the whole catalog as a spreadsheet (admin only, token
// may come via ?token= since downloads cannot set headers).
func (h *ExportHandler) XLSX(c *gin.Context) {
	projects, err := h.Projects.List()
	if err != nil {
		util.ErrorFrom(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Projects"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	// 设置表头
	headers := []string{"ID", "Title", "Description", "Tech", "Links"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	// 写入数据
	for idx, p := range projects {
		row := idx + 2

		links := make([]string, 0, len(p.Links))
		for _, l := range p.Links {
			links = append(links, l.Kind+": "+l.URL)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Desc)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), strings.Join(p.Tech, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), strings.Join(links, "\n"))
	}

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "C", 50)
	f.SetColWidth(sheetName, "D", "D", 28)
	f.SetColWidth(sheetName, "E", "E", 40)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"projects_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "export failed")
	}
}
