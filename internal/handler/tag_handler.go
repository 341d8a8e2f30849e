package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/session"
)

// TagHandler はタグバケット操作とスタンプカタログのハンドラー
type TagHandler struct {
	sessions *session.Store
}

// NewTagHandler は新しいTagHandlerインスタンスを作成
func NewTagHandler(sessions *session.Store) *TagHandler {
	return &TagHandler{
		sessions: sessions,
	}
}

// GetStamps はスタンプカタログを返すエンドポイント
// GET /stamps
func (h *TagHandler) GetStamps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"groups": model.GetStampCatalog(),
	})
}

// GetTags はセッションの選択中タグを返すエンドポイント
// GET /session/tags
func (h *TagHandler) GetTags(c *gin.Context) {
	sessionID := sessionIDFrom(c)

	tags, err := h.sessions.Tags(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "セッションが見つかりません",
		})
		return
	}

	query, err := h.sessions.JoinedQuery(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "セッションが見つかりません",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":          tags,
		"default_query": query,
	})
}

// addTagRequest タグ追加APIのリクエストボディ
type addTagRequest struct {
	Tag string `json:"tag"`
}

// PostTag はタグバケットにタグを追加するエンドポイント（冪等）
// POST /session/tags
func (h *TagHandler) PostTag(c *gin.Context) {
	var req addTagRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.Tag) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "タグを指定してください",
		})
		return
	}

	sessionID := sessionIDFrom(c)
	added, tags, err := h.sessions.AddTag(sessionID, req.Tag)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "セッションが見つかりません",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"tags":  tags,
	})
}

// DeleteTags はタグバケットを空にするエンドポイント
// DELETE /session/tags
func (h *TagHandler) DeleteTags(c *gin.Context) {
	sessionID := sessionIDFrom(c)

	if err := h.sessions.ClearTags(sessionID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "セッションが見つかりません",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags": []string{},
	})
}
