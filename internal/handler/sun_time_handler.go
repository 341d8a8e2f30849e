package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/usecase"
)

// SunTimeHandler は太陽時刻APIのハンドラー
type SunTimeHandler struct {
	sunTimeUseCase usecase.SunTimeUseCase
}

// NewSunTimeHandler は新しいSunTimeHandlerインスタンスを作成
func NewSunTimeHandler(sunTimeUseCase usecase.SunTimeUseCase) *SunTimeHandler {
	return &SunTimeHandler{
		sunTimeUseCase: sunTimeUseCase,
	}
}

// GetCities は対応都市の一覧を返すエンドポイント
// GET /cities
func (h *SunTimeHandler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cities": model.GetCityCatalog(),
	})
}

// GetSunTimes は太陽時刻とゴールデンアワーを返すエンドポイント
// GET /suntimes?city=tokyo&date=2026-08-31 または ?lat=&lng=&date=
// 外部APIの失敗時も200でavailable=falseを返す（この照会は常に成功扱い）。
func (h *SunTimeHandler) GetSunTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if cityID := c.Query("city"); cityID != "" {
		result := h.sunTimeUseCase.LookupByCity(c.Request.Context(), cityID, date)
		c.JSON(http.StatusOK, result)
		return
	}

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "cityまたはlat/lngを指定してください",
		})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "latは数値で指定してください",
		})
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lngは数値で指定してください",
		})
		return
	}

	result := h.sunTimeUseCase.LookupByCoordinates(c.Request.Context(), lat, lng, date)
	c.JSON(http.StatusOK, result)
}
