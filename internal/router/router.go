package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AtharvaZ/Portfolio-website/internal/auth"
	"github.com/AtharvaZ/Portfolio-website/internal/config"
	"github.com/AtharvaZ/Portfolio-website/internal/handler"
	"github.com/AtharvaZ/Portfolio-website/internal/mailer"
	"github.com/AtharvaZ/Portfolio-website/internal/middleware"
	"github.com/AtharvaZ/Portfolio-website/internal/repo"
	"github.com/AtharvaZ/Portfolio-website/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures Gin engine, API routes and static resources.
func SetupRouter(cfg *config.Config, st store.Store, sessions *auth.SessionManager) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// the frontend may be served from another origin during development
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.TokenHeader)
	r.Use(cors.New(corsCfg))

	projects := repo.NewProjects(st)
	siteConfig := repo.NewConfig(st)
	contactMailer := mailer.New(cfg.Email.APIKey, cfg.Email.From, cfg.Email.Recipient)

	authHandler := handler.NewAuthHandler(sessions)
	projectHandler := handler.NewProjectHandler(projects)
	resumeHandler := handler.NewResumeHandler(siteConfig)
	contactHandler := handler.NewContactHandler(contactMailer)
	exportHandler := handler.NewExportHandler(projects)

	// ====== API ======
	api := r.Group("/api")

	// 公开接口（读操作不需要登录）
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)
	api.GET("/projects", projectHandler.List)
	api.GET("/resume", resumeHandler.Get)
	api.GET("/resume/view", resumeHandler.View)
	api.POST("/contact", contactHandler.Submit)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(middleware.SessionAuth(sessions))

	protected.GET("/admin/verify", authHandler.Verify)
	protected.POST("/projects", projectHandler.Create)
	protected.PUT("/projects/:id", projectHandler.Update)
	protected.DELETE("/projects/:id", projectHandler.Delete)
	protected.POST("/resume", resumeHandler.Upload)
	protected.GET("/admin/export/xlsx", exportHandler.XLSX)

	// ====== 静态站点 ======
	webDir := cfg.Server.WebDir
	r.GET("/", servePage(webDir, "index.html"))
	r.GET("/admin", servePage(webDir, "admin.html"))
	r.NoRoute(serveStatic(webDir))

	return r
}

func servePage(webDir, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(webDir, name)
		if _, err := os.Stat(path); err != nil {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>"+name+" not found</h1>"))
			return
		}
		c.File(path)
	}
}

// serveStatic is the catch-all for CSS, JS and images, confined to the
// web directory.
func serveStatic(webDir string) gin.HandlerFunc {
	root, _ := filepath.Abs(webDir)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
			return
		}

		requested := filepath.Join(root, filepath.Clean("/"+c.Request.URL.Path))
		if !strings.HasPrefix(requested, root+string(os.PathSeparator)) {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Access denied"})
			return
		}
		info, err := os.Stat(requested)
		if err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
			return
		}
		c.File(requested)
	}
}
