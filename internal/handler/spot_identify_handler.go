package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/session"
	"RokeNote-App/internal/usecase"
)

// SpotIdentifyHandler は画像からのスポット特定APIのハンドラー
type SpotIdentifyHandler struct {
	identifyUseCase usecase.SpotIdentifyUseCase
}

// NewSpotIdentifyHandler は新しいSpotIdentifyHandlerインスタンスを作成
func NewSpotIdentifyHandler(identifyUseCase usecase.SpotIdentifyUseCase) *SpotIdentifyHandler {
	return &SpotIdentifyHandler{
		identifyUseCase: identifyUseCase,
	}
}

// PostIdentify は画像からスポットを特定するエンドポイント
// POST /spots/identify (multipart/form-data: image, hint?, area?)
// 画像のサイズ・形式の検証はモデルAPI側に任せる。
func (h *SpotIdentifyHandler) PostIdentify(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "画像ファイルが指定されていません",
			"details": err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "画像ファイルを開けませんでした",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "画像ファイルの読み取りに失敗しました",
			"details": err.Error(),
		})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	image := model.ImagePayload{
		MimeType: mimeType,
		Data:     data,
	}

	response, err := h.identifyUseCase.Identify(
		c.Request.Context(),
		sessionIDFrom(c),
		image,
		c.PostForm("hint"),
		c.PostForm("area"),
	)
	if err != nil {
		h.writeIdentifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// writeIdentifyError はエラーの種類に応じたレスポンスを書き込む
func (h *SpotIdentifyHandler) writeIdentifyError(c *gin.Context, err error) {
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
		"error":   "スポットの特定に失敗しました",
		"details": err.Error(),
	})
}
