package model

// SpotSuggestionResponse スポット提案APIのレスポンス
type SpotSuggestionResponse struct {
	Theme string     `json:"theme"` // 実際に使用された検索条件
	Style string     `json:"style"` // 日本語表示名
	Area  string     `json:"area,omitempty"`
	Count int        `json:"count"`
	Cards []SpotCard `json:"cards"`
}

// SpotIdentifyResponse 画像特定APIのレスポンス
type SpotIdentifyResponse struct {
	Hint  string     `json:"hint,omitempty"` // ユーザーが添えた補足テキスト
	Count int        `json:"count"`
	Cards []SpotCard `json:"cards"`
}
