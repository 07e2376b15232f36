package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_live/internal/api/handlers"
	"debate_live/internal/config"
	"debate_live/internal/debate"
	"debate_live/internal/middleware"
	"debate_live/internal/service"
	"debate_live/internal/storage"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, services *service.Services, hub *debate.Hub, presence *storage.RedisPresence) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User, cfg.JWT.Secret, cfg.TokenExpire())
	factCheckHandler := handlers.NewFactCheckHandler(services.FactCheck)
	debateHandler := handlers.NewDebateHandler(services.Debate, hub, presence)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 使用者認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		// 辯論存檔相關
		debates := authorized.Group("/debates")
		{
			debates.POST("", debateHandler.CreateDebate)
			debates.GET("", debateHandler.ListDebates)
			debates.GET("/:id", debateHandler.GetDebate)
			debates.GET("/:id/presence", debateHandler.GetPresence)     // 房間目前人數
			debates.GET("/:id/recordings", debateHandler.GetRecordings) // 已封存的錄影片段
		}

		// 事實查核相關
		factchecks := authorized.Group("/factchecks")
		{
			factchecks.POST("", factCheckHandler.CreateFactCheck)
			factchecks.GET("", factCheckHandler.ListFactChecks) // ?debate_id=
			factchecks.GET("/:id", factCheckHandler.GetFactCheck)
			factchecks.DELETE("/:id", factCheckHandler.DeleteFactCheck)
		}
	}

	// WebSocket 連接點,辯論進行全靠這條通道
	r.GET("/ws", wsHandler.HandleWebSocket)
}
