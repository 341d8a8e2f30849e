package usecase

import (
	"context"
	"log"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/domain/repository"
	"RokeNote-App/internal/domain/service"
)

type SunTimeUseCase interface {
	// LookupByCity は都市IDと日付からゴールデンアワー付きの太陽時刻を取得する
	LookupByCity(ctx context.Context, cityID, date string) *model.SunWindowResult

	// LookupByCoordinates は座標と日付からゴールデンアワー付きの太陽時刻を取得する
	LookupByCoordinates(ctx context.Context, lat, lng float64, date string) *model.SunWindowResult
}

// sunTimeUseCaseImpl はSunTimeUseCaseの実装
type sunTimeUseCaseImpl struct {
	sunTimesRepo repository.SunTimesRepository
}

// NewSunTimeUseCase は新しいSunTimeUseCaseインスタンスを作成
func NewSunTimeUseCase(sunTimesRepo repository.SunTimesRepository) SunTimeUseCase {
	return &sunTimeUseCaseImpl{
		sunTimesRepo: sunTimesRepo,
	}
}

// LookupByCity は都市IDと日付からゴールデンアワー付きの太陽時刻を取得する。
// 外部APIの失敗はエラーとして伝播させず、Available=falseの結果として返す。
func (u *sunTimeUseCaseImpl) LookupByCity(ctx context.Context, cityID, date string) *model.SunWindowResult {
	city, ok := model.FindCity(cityID)
	if !ok {
		log.Printf("⚠️ 未対応の都市のため太陽時刻を取得できません: %s", cityID)
		return &model.SunWindowResult{City: cityID, Date: date, Available: false}
	}

	result := u.LookupByCoordinates(ctx, city.Latitude, city.Longitude, date)
	result.City = city.Name
	return result
}

// LookupByCoordinates は座標と日付からゴールデンアワー付きの太陽時刻を取得する
func (u *sunTimeUseCaseImpl) LookupByCoordinates(ctx context.Context, lat, lng float64, date string) *model.SunWindowResult {
	sunrise, sunset, err := u.sunTimesRepo.FetchSunTimes(ctx, lat, lng, date)
	if err != nil {
		log.Printf("⚠️ 太陽時刻の取得に失敗、利用不可として返します: %v", err)
		return &model.SunWindowResult{Date: date, Available: false}
	}

	window, err := service.BuildSunWindow(sunrise, sunset)
	if err != nil {
		log.Printf("⚠️ 太陽時刻の計算に失敗、利用不可として返します: %v", err)
		return &model.SunWindowResult{Date: date, Available: false}
	}

	log.Printf("✅ 太陽時刻取得完了 (日の入り: %s, ゴールデンアワー: %s〜%s)", window.Sunset, window.GoldenHourStart, window.GoldenHourEnd)

	return &model.SunWindowResult{
		Date:      date,
		Available: true,
		Window:    window,
	}
}
