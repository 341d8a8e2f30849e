package model

// SunWindow 日の出・日の入りとゴールデンアワーの時刻（"HH:MM"形式）
type SunWindow struct {
	Sunrise         string `json:"sunrise"`
	Sunset          string `json:"sunset"`
	GoldenHourStart string `json:"golden_hour_start"` // 日の入り30分前
	GoldenHourEnd   string `json:"golden_hour_end"`   // 日の入り15分後
}

// SunWindowResult 太陽時刻の照会結果。外部API失敗時はAvailable=falseで返し、
// エラーは呼び出し元へ伝播させない。
type SunWindowResult struct {
	City      string     `json:"city,omitempty"`
	Date      string     `json:"date"`
	Available bool       `json:"available"`
	Window    *SunWindow `json:"window,omitempty"`
}

// City 太陽時刻計算の対象となる都市
type City struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
