package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mssas/portfolio/internal/config"
	"github.com/mssas/portfolio/internal/db"
	"github.com/mssas/portfolio/internal/router"
)

func main() {
	// 载入 .env(若存在),便于本地开发
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	if cfg.CookieSecretInsecure {
		if cfg.GinMode != "debug" {
			log.Fatalf("COOKIE_SECRET is not set; refusing to start with the built-in development key outside debug mode")
		}
		log.Printf("WARNING: COOKIE_SECRET is not set, visitor cookies are encrypted with the insecure development key")
	}

	gin.SetMode(cfg.GinMode)

	// 初始化托管数据库
	if err := db.Init(db.DSN(cfg.DatastoreURL, cfg.DatastoreKey)); err != nil {
		log.Fatalf("failed to initialize datastore: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
