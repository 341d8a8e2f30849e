package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"RokeNote-App/internal/domain/model"
)

func TestWriteSpotList(t *testing.T) {
	t.Run("スポット1件につき1ブロックのテキストを生成する", func(t *testing.T) {
		spots := []model.Spot{
			{Name: "東京タワー", SearchName: "東京タワー 芝公園", Area: "港区", Reason: "定番の夜景", Script: "夜景をバックに一言"},
			{Name: "高架下", Area: "有楽町", Reason: "レトロな雰囲気"},
		}

		content := WriteSpotList("夜景 レトロ", spots)

		assert.Contains(t, content, "「夜景 レトロ」の撮影プラン")
		assert.Contains(t, content, "スポット数: 2")
		assert.Contains(t, content, "1. 東京タワー（港区）")
		assert.Contains(t, content, "マップ検索名: 東京タワー 芝公園")
		assert.Contains(t, content, "2. 高架下（有楽町）")
		// search_name欠落時はnameにフォールバック
		assert.Contains(t, content, "マップ検索名: 高架下")
	})

	t.Run("脚本が無いスポットには脚本メモ行が出ない", func(t *testing.T) {
		spots := []model.Spot{{Name: "a", Area: "b", Reason: "c"}}

		content := WriteSpotList("テーマ", spots)

		assert.NotContains(t, content, "脚本メモ")
	})

	t.Run("長い脚本はrune単位で切り詰められる", func(t *testing.T) {
		longScript := strings.Repeat("あ", 200)
		spots := []model.Spot{{Name: "a", Area: "b", Reason: "c", Script: longScript}}

		content := WriteSpotList("テーマ", spots)

		assert.Contains(t, content, strings.Repeat("あ", 80)+"…")
		assert.NotContains(t, content, strings.Repeat("あ", 81))
	})
}
