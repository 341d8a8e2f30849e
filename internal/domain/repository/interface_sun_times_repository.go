package repository

import "context"

// SunTimesRepository 日の出・日の入り時刻取得の抽象
type SunTimesRepository interface {
	// FetchSunTimes 指定座標・日付の日の出/日の入り時刻を"HH:MM"形式で取得する。
	// dateは"YYYY-MM-DD"形式。
	FetchSunTimes(ctx context.Context, lat, lng float64, date string) (sunrise, sunset string, err error)
}
