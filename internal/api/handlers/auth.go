package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"debate_live/internal/models"
	"debate_live/internal/service"
	"debate_live/internal/utils"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	userService *service.UserService
	jwtSecret   string
	tokenExpire time.Duration
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(userService *service.UserService, jwtSecret string, tokenExpire time.Duration) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtSecret:   jwtSecret,
		tokenExpire: tokenExpire,
	}
}

// RegisterInput 定義註冊請求的結構
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname" binding:"max=50"`
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 處理使用者註冊
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 對密碼進行雜湊
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "建立使用者失敗"})
		return
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashedPassword),
		Nickname: input.Nickname,
	}

	// 帳號重複時 uniqueIndex 會擋下來
	if err := h.userService.CreateUser(&user); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "帳號已被使用"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "message": "使用者註冊成功"})
}

// Login 處理使用者登入
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 帳號不存在跟密碼錯誤回同一個訊息
	user, err := h.userService.GetUserByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "帳號或密碼錯誤"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "帳號或密碼錯誤"})
		return
	}

	// 生成 JWT token
	token, err := utils.GenerateToken(h.jwtSecret, user.ID, h.tokenExpire)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "獲取token失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
