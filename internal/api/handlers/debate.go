package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_live/internal/debate"
	"debate_live/internal/service"
	"debate_live/internal/storage"
)

// DebateHandler 處理辯論存檔與即時房間的查詢請求
type DebateHandler struct {
	debateService *service.DebateService
	hub           *debate.Hub
	presence      *storage.RedisPresence // 可以是 nil,沒有 Redis 時用房間記憶體狀態
}

func NewDebateHandler(debateService *service.DebateService, hub *debate.Hub, presence *storage.RedisPresence) *DebateHandler {
	return &DebateHandler{
		debateService: debateService,
		hub:           hub,
		presence:      presence,
	}
}

// CreateDebate 建立一場辯論的存檔紀錄
func (h *DebateHandler) CreateDebate(c *gin.Context) {
	var input struct {
		DebateID string `json:"debate_id" binding:"required"`
		Topic    string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.debateService.CreateDebate(input.DebateID, input.Topic)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "辯論識別碼已被使用"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListDebates 列出所有辯論存檔
func (h *DebateHandler) ListDebates(c *gin.Context) {
	debates, err := h.debateService.ListDebates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法搜尋辯論紀錄"})
		return
	}
	c.JSON(http.StatusOK, debates)
}

// GetDebate 取得辯論存檔與即時回合狀態
func (h *DebateHandler) GetDebate(c *gin.Context) {
	debateID := c.Param("id")

	record, err := h.debateService.GetDebate(debateID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "辯論不存在"})
		return
	}

	resp := gin.H{"debate": record}
	if state, ok := h.hub.State(debateID); ok {
		resp["live"] = state
	}
	c.JSON(http.StatusOK, resp)
}

// GetPresence 回傳房間目前的人數
func (h *DebateHandler) GetPresence(c *gin.Context) {
	debateID := c.Param("id")

	count := h.hub.Occupants(debateID)
	if h.presence != nil {
		count = h.presence.Count(debateID)
	}
	c.JSON(http.StatusOK, gin.H{"debate_id": debateID, "occupants": count})
}

// GetRecordings 回傳已封存的錄影片段。片段以 base64 編碼,
// 依連線不中斷的區段分組。
func (h *DebateHandler) GetRecordings(c *gin.Context) {
	debateID := c.Param("id")

	sealed := h.hub.Recordings(debateID)
	segments := make([][]string, 0, len(sealed))
	for _, segment := range sealed {
		encoded := make([]string, 0, len(segment))
		for _, fragment := range segment {
			encoded = append(encoded, base64.StdEncoding.EncodeToString(fragment))
		}
		segments = append(segments, encoded)
	}

	c.JSON(http.StatusOK, gin.H{"debate_id": debateID, "segments": segments})
}
