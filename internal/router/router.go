package router

import (
	"crypto/sha256"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mssas/portfolio/internal/config"
	"github.com/mssas/portfolio/internal/db"
	"github.com/mssas/portfolio/internal/handler"
)

// SetupRouter 配置 Gin 引擎、会话中间件与路由
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 访客身份与浏览器会话共用同一个加密 cookie 存储,
	// 加密密钥从配置密钥派生出 AES-256 所需的 32 字节
	encryptionKey := sha256.Sum256([]byte(cfg.CookieSecret))
	store := cookie.NewStore([]byte(cfg.CookieSecret), encryptionKey[:])
	r.Use(sessions.SessionsMany([]string{handler.VisitorSessionName, handler.BrowserSessionName}, store))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := handler.NewAPI(db.DB, cfg.Links)

	r.GET("/", api.ShowHome)
	r.GET("/dashboards", api.ShowDashboards)
	r.GET("/ab-tests", api.ShowABTests)
	r.GET("/analytics", api.ShowSiteAnalytics)
	r.POST("/analytics/vote", api.CastVote)
	r.GET("/contacts", api.ShowContacts)
	r.GET("/go/:target", api.TrackClick)

	return r
}
