package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"debate_live/internal/models"
	"debate_live/internal/service"
)

// FactCheckHandler 處理事實查核紀錄的請求
type FactCheckHandler struct {
	factCheckService *service.FactCheckService
}

func NewFactCheckHandler(factCheckService *service.FactCheckService) *FactCheckHandler {
	return &FactCheckHandler{factCheckService: factCheckService}
}

// CreateFactCheck 建立一筆查核紀錄
func (h *FactCheckHandler) CreateFactCheck(c *gin.Context) {
	var input struct {
		TargetUserID   string `json:"target_user_id" binding:"required"`
		TargetDebateID string `json:"target_debate_id" binding:"required"`
		Pros           bool   `json:"pros"`
		Description    string `json:"description" binding:"required"`
		ReferenceURL   string `json:"reference_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	factCheck := models.FactCheck{
		TargetUserID:   input.TargetUserID,
		TargetDebateID: input.TargetDebateID,
		Pros:           input.Pros,
		Description:    input.Description,
		ReferenceURL:   input.ReferenceURL,
	}

	if err := h.factCheckService.CreateFactCheck(&factCheck); err != nil {
		if errors.Is(err, service.ErrFactCheckIncomplete) || errors.Is(err, service.ErrFactCheckBadRefURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "建立查核紀錄失敗"})
		return
	}

	c.JSON(http.StatusCreated, factCheck)
}

// ListFactChecks 依辯論識別碼列出查核紀錄
func (h *FactCheckHandler) ListFactChecks(c *gin.Context) {
	debateID := c.Query("debate_id")
	if debateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 debate_id"})
		return
	}

	factChecks, err := h.factCheckService.ListFactChecks(debateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法搜尋查核紀錄"})
		return
	}

	c.JSON(http.StatusOK, factChecks)
}

// GetFactCheck 取得單筆查核紀錄
func (h *FactCheckHandler) GetFactCheck(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的紀錄 ID"})
		return
	}

	factCheck, err := h.factCheckService.GetFactCheck(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "紀錄不存在"})
		return
	}

	c.JSON(http.StatusOK, factCheck)
}

// DeleteFactCheck 刪除一筆查核紀錄
func (h *FactCheckHandler) DeleteFactCheck(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的紀錄 ID"})
		return
	}

	if err := h.factCheckService.DeleteFactCheck(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除查核紀錄失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已刪除"})
}
