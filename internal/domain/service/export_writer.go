package service

import (
	"fmt"
	"strings"

	"RokeNote-App/internal/domain/model"
)

// scriptExcerptRunes エクスポートに含める脚本の最大文字数
const scriptExcerptRunes = 80

// WriteSpotList 現在の検索結果をフラットなテキスト文書に直列化する。
// スポット1件につき1ブロック（名前・ポイント・脚本抜粋・マップ検索名）。
// 構造化フォーマット（JSONなど）は提供しない。
func WriteSpotList(theme string, spots []model.Spot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📍 「%s」の撮影プラン\n", theme)
	fmt.Fprintf(&b, "スポット数: %d\n", len(spots))
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	for i, spot := range spots {
		fmt.Fprintf(&b, "%d. %s（%s）\n", i+1, spot.Name, spot.Area)
		fmt.Fprintf(&b, "ポイント: %s\n", spot.Reason)
		if spot.Script != "" {
			fmt.Fprintf(&b, "脚本メモ: %s\n", excerpt(spot.Script, scriptExcerptRunes))
		}
		fmt.Fprintf(&b, "マップ検索名: %s\n", spot.MapQueryName())
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
	}

	return b.String()
}

// excerpt 文字列をrune単位でmaxRunes文字に切り詰める
func excerpt(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "…"
}
