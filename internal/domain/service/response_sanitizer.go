package service

import (
	"encoding/json"
	"strings"

	"RokeNote-App/internal/domain/model"
)

// SanitizeSpotResponse モデルの自由テキスト応答からJSON配列を取り出してパースする。
// 契約は「文字列を受け取り、Spotのリストか型付きエラーを返す」の1つだけ。
//
// 手順:
//  1. 前後の空白を除去する
//  2. Markdownコードフェンスで始まる場合は先頭行と末尾3文字を取り除く
//  3. 最初の「[」から最後の「]」までを候補テキストとして切り出す（貪欲一致）
//  4. 候補テキストをJSONとしてパースする
//
// 空配列は有効な応答であり、0件として返す。
func SanitizeSpotResponse(raw string) ([]model.Spot, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") && len(text) > 10 {
		text = text[7 : len(text)-3]
	} else if strings.HasPrefix(text, "```") && len(text) > 6 {
		text = text[3 : len(text)-3]
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &model.ResponseFormatError{
			Message: "レスポンスにJSON配列が含まれていません",
			RawText: raw,
		}
	}

	candidate := text[start : end+1]

	var spots []model.Spot
	if err := json.Unmarshal([]byte(candidate), &spots); err != nil {
		return nil, &model.ResponseFormatError{
			Message: "JSON配列のパースに失敗しました: " + err.Error(),
			RawText: raw,
		}
	}

	return spots, nil
}
