package model

import "strings"

// SearchRequest スポット提案に必要な全ての条件を保持する。
// 送信のたびに新しく構築され、構築後は変更されない。
type SearchRequest struct {
	Area     string   `json:"area"`      // オプション：指定がなければ日本全国が対象
	Style    string   `json:"style"`     // 必須：StyleSolo / StyleGroup
	FreeText string   `json:"free_text"` // オプション：自由入力テーマ
	Tags     []string `json:"tags"`      // セッションのタグバケットのスナップショット
}

// Conditions タグと自由入力を半角スペース区切りで連結した検索条件を取得する。
// エリア語との重複除去は行わない。
func (r *SearchRequest) Conditions() string {
	parts := make([]string, 0, len(r.Tags)+1)
	parts = append(parts, r.Tags...)
	if strings.TrimSpace(r.FreeText) != "" {
		parts = append(parts, strings.TrimSpace(r.FreeText))
	}
	return strings.Join(parts, " ")
}

// HasArea エリア制約が指定されているかどうかを判定する
func (r *SearchRequest) HasArea() bool {
	return strings.TrimSpace(r.Area) != ""
}

// HasConditions 検索条件が1つでも存在するかどうかを判定する
func (r *SearchRequest) HasConditions() bool {
	return r.Conditions() != ""
}
