package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/session"
	"RokeNote-App/internal/usecase"
)

// ExportHandler は検索結果のテキストエクスポートAPIのハンドラー
type ExportHandler struct {
	exportUseCase usecase.ExportUseCase
}

// NewExportHandler は新しいExportHandlerインスタンスを作成
func NewExportHandler(exportUseCase usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

// GetExport は直近の検索結果をテキストファイルとしてダウンロードさせるエンドポイント
// GET /export
func (h *ExportHandler) GetExport(c *gin.Context) {
	filename, content, err := h.exportUseCase.Export(c.Request.Context(), sessionIDFrom(c))
	if err != nil {
		if errors.Is(err, usecase.ErrNoExportableResults) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": usecase.ErrNoExportableResults.Error(),
			})
			return
		}
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "セッションが見つかりません",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "エクスポートに失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}
