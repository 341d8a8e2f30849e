package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/session"
)

// AuthHandler は簡易ログインAPIのハンドラー
type AuthHandler struct {
	sessions *session.Store
	password string
}

// NewAuthHandler は新しいAuthHandlerインスタンスを作成
func NewAuthHandler(sessions *session.Store, password string) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		password: password,
	}
}

// loginRequest ログインAPIのリクエストボディ
type loginRequest struct {
	Password string `json:"password"`
}

// PostLogin は共有パスワードを照合してログイン済みセッションを発行するエンドポイント
// POST /auth/login
// 照合失敗時はロックアウトやスロットリングは行わず、何度でも再試行できる。
func (h *AuthHandler) PostLogin(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if req.Password != h.password {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "パスワードが違います",
		})
		return
	}

	sessionID := h.sessions.Create()
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
	})
}
