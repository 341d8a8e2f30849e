package model

// SpotSuggestionRequest スポット提案APIのリクエストボディ。
// タグはリクエストに含めず、セッションのタグバケットから取得する。
type SpotSuggestionRequest struct {
	Area     string `json:"area"`      // オプション
	Style    string `json:"style"`     // 必須：solo / group
	FreeText string `json:"free_text"` // オプション：空ならタグバケット由来のテキストを使用
}
