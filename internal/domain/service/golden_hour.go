package service

import (
	"fmt"
	"strconv"
	"strings"

	"RokeNote-App/internal/domain/model"
)

// goldenHourBeforeSunsetMinutes / goldenHourAfterSunsetMinutes
// ゴールデンアワーの窓 = [日の入り30分前, 日の入り15分後]
const (
	goldenHourBeforeSunsetMinutes = 30
	goldenHourAfterSunsetMinutes  = 15
)

// ParseClock "HH:MM"形式の時刻文字列を時・分に分解する
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("時刻の形式が不正です: %q", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("時の値が不正です: %q", clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("分の値が不正です: %q", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("時刻が範囲外です: %q", clock)
	}
	return hour, minute, nil
}

// formatClock 時・分を"HH:MM"形式に整形する
func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// BuildSunWindow 日の出・日の入り時刻からゴールデンアワー付きのSunWindowを構築する。
// 分の減算で負になる場合は時から借り、加算で60を超える場合は時へ繰り上げる。
// 時は24でロールオーバーする（日付境界は扱わない。日本にサマータイムはなく、
// タイムゾーン変換もリクエスト時の固定指定に任せる）。
func BuildSunWindow(sunrise, sunset string) (*model.SunWindow, error) {
	if _, _, err := ParseClock(sunrise); err != nil {
		return nil, fmt.Errorf("日の出時刻のパースに失敗: %w", err)
	}
	sunsetHour, sunsetMinute, err := ParseClock(sunset)
	if err != nil {
		return nil, fmt.Errorf("日の入り時刻のパースに失敗: %w", err)
	}

	startHour, startMinute := sunsetHour, sunsetMinute-goldenHourBeforeSunsetMinutes
	if startMinute < 0 {
		startHour--
		startMinute += 60
	}
	if startHour < 0 {
		startHour += 24
	}

	endHour, endMinute := sunsetHour, sunsetMinute+goldenHourAfterSunsetMinutes
	if endMinute >= 60 {
		endHour++
		endMinute -= 60
	}
	if endHour >= 24 {
		endHour -= 24
	}

	return &model.SunWindow{
		Sunrise:         sunrise,
		Sunset:          sunset,
		GoldenHourStart: formatClock(startHour, startMinute),
		GoldenHourEnd:   formatClock(endHour, endMinute),
	}, nil
}
