package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSpotPrompt(t *testing.T) {
	t.Run("エリア指定時は範囲外除外の指示を含む", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{
			Area:       "新宿",
			Conditions: "ネオン 夜景",
			StyleLabel: "一人で撮影（Vlog・自撮り・風景）",
			Mode:       ModeSuggest,
		})

		assert.Contains(t, prompt, "「新宿」エリア内のスポットに限定してください")
		assert.Contains(t, prompt, "「新宿」の外にあるスポットは絶対に含めないでください")
	})

	t.Run("エリア未指定時は日本全国が対象になる", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{
			Conditions: "工場 深夜",
			Mode:       ModeSuggest,
		})

		assert.Contains(t, prompt, "日本全国")
		assert.NotContains(t, prompt, "エリア制約")
	})

	t.Run("条件とスタイルがプロンプトに埋め込まれる", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{
			Conditions: "工場 深夜 穴場",
			StyleLabel: "複数人で撮影（演者あり・会話劇・デート風）",
			Mode:       ModeSuggest,
		})

		assert.Contains(t, prompt, "「工場 深夜 穴場」")
		assert.Contains(t, prompt, "複数人で撮影")
	})

	t.Run("JSON出力契約がフィールド名を列挙する", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{Conditions: "夜景", Mode: ModeSuggest})

		for _, field := range []string{"name", "search_name", "area", "reason", "permission", "video_idea", "script", "fashion", "bgm", "sns_info", "lat", "lon"} {
			assert.Contains(t, prompt, field)
		}
		assert.Contains(t, prompt, "JSONフォーマットのみを返してください")
	})

	t.Run("画像特定モードは文字情報と視覚的特徴の指示を含む", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{
			Conditions: "関東近郊で見かけた",
			Mode:       ModeIdentify,
		})

		assert.Contains(t, prompt, "看板")
		assert.Contains(t, prompt, "視覚的特徴")
		assert.Contains(t, prompt, "似た雰囲気のスポット")
		assert.Contains(t, prompt, "confidence")
	})

	t.Run("提案モードにはconfidence要件が含まれない", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{Conditions: "夜景", Mode: ModeSuggest})

		assert.False(t, strings.Contains(prompt, "confidence"))
	})

	t.Run("スポット数は未指定なら5になる", func(t *testing.T) {
		prompt := BuildSpotPrompt(PromptInput{Conditions: "夜景", Mode: ModeSuggest})

		assert.Contains(t, prompt, "5 つ提案")
	})
}
