package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/session"
	"RokeNote-App/internal/usecase"
)

// SpotSuggestionHandler はスポット提案APIのハンドラー
type SpotSuggestionHandler struct {
	suggestionUseCase usecase.SpotSuggestionUseCase
}

// NewSpotSuggestionHandler は新しいSpotSuggestionHandlerインスタンスを作成
func NewSpotSuggestionHandler(suggestionUseCase usecase.SpotSuggestionUseCase) *SpotSuggestionHandler {
	return &SpotSuggestionHandler{
		suggestionUseCase: suggestionUseCase,
	}
}

// PostSuggestions はスポット提案を生成するエンドポイント
// POST /spots/suggestions
func (h *SpotSuggestionHandler) PostSuggestions(c *gin.Context) {
	var req model.SpotSuggestionRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.suggestionUseCase.Suggest(c.Request.Context(), sessionIDFrom(c), &req)
	if err != nil {
		h.writeSuggestionError(c, err)
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *SpotSuggestionHandler) validateRequest(req *model.SpotSuggestionRequest) error {
	if req.Style == "" {
		return &ValidationError{Field: "style", Message: "撮影スタイルは必須です"}
	}
	if !model.IsValidStyle(req.Style) {
		return &ValidationError{Field: "style", Message: "styleは'solo'または'group'を指定してください"}
	}
	return nil
}

// writeSuggestionError はエラーの種類に応じたレスポンスを書き込む。
// レスポンス形式エラーはネットワーク失敗と区別し、再試行を促すメッセージと
// 診断用の生レスポンスを返す。
func (h *SpotSuggestionHandler) writeSuggestionError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrNoSearchConditions) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": usecase.ErrNoSearchConditions.Error(),
		})
		return
	}

	if errors.Is(err, session.ErrSessionNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "セッションが見つかりません",
		})
		return
	}

	var formatErr *model.ResponseFormatError
	if errors.As(err, &formatErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":        "AIの応答を解析できませんでした。もう一度お試しください",
			"details":      formatErr.Message,
			"raw_response": formatErr.RawText,
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error":   "スポット提案の生成に失敗しました",
		"details": err.Error(),
	})
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
