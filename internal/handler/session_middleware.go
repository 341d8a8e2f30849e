package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/session"
)

// sessionIDHeader セッションIDを運ぶHTTPヘッダー
const sessionIDHeader = "X-Session-ID"

// sessionIDContextKey ハンドラーがセッションIDを取り出すためのコンテキストキー
const sessionIDContextKey = "session_id"

// SessionAuthMiddleware はログイン済みセッションのみを通すミドルウェア
func SessionAuthMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionIDHeader)
		if sessionID == "" || !sessions.IsLoggedIn(sessionID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "ログインが必要です",
			})
			return
		}

		c.Set(sessionIDContextKey, sessionID)
		c.Next()
	}
}

// sessionIDFrom はミドルウェアが格納したセッションIDを取り出す
func sessionIDFrom(c *gin.Context) string {
	return c.GetString(sessionIDContextKey)
}
