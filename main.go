package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"debate_live/internal/api"
	"debate_live/internal/config"
	"debate_live/internal/debate"
	"debate_live/internal/models"
	"debate_live/internal/repository"
	"debate_live/internal/service"
	"debate_live/internal/storage"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}, &models.Debate{}, &models.FactCheck{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 辯論引擎:分出勝負時把結果寫回存檔
	hub := debate.NewHub()
	hub.SetResultSink(services.Debate)

	// 有設定 Redis 就把房間進出鏡射過去,供外部監看
	var presence *storage.RedisPresence
	if cfg.Redis.Enabled {
		presence, err = storage.NewRedisPresence(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer presence.Close()
		hub.SetPresence(presence)
	}

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, cfg, services, hub, presence)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
