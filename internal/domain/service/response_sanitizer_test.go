package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RokeNote-App/internal/domain/model"
)

func TestSanitizeSpotResponse(t *testing.T) {
	t.Run("jsonタグ付きコードフェンスを剥がしてパースする", func(t *testing.T) {
		raw := "```json\n[{\"name\":\"A\"}]\n```"

		spots, err := SanitizeSpotResponse(raw)

		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, "A", spots[0].Name)
	})

	t.Run("タグなしコードフェンスも剥がせる", func(t *testing.T) {
		raw := "```\n[{\"name\":\"A\"}]\n```"

		spots, err := SanitizeSpotResponse(raw)

		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, "A", spots[0].Name)
	})

	t.Run("前後に説明文があってもJSON配列を抽出する", func(t *testing.T) {
		raw := "おすすめのスポットをご紹介します。\n[{\"name\":\"B\"}]\n以上です。お役に立てれば幸いです。"

		spots, err := SanitizeSpotResponse(raw)

		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, "B", spots[0].Name)
	})

	t.Run("全フィールドを含むレスポンスをパースできる", func(t *testing.T) {
		raw := `[{"name":"東京タワー","search_name":"東京タワー 芝公園","area":"港区","reason":"定番","permission":"公共スペースは撮影可","video_idea":"ローアングル","script":"夜景に合わせて","fashion":"モノトーン","bgm":"Lo-fi","sns_info":"#東京タワー","lat":35.6586,"lon":139.7454}]`

		spots, err := SanitizeSpotResponse(raw)

		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, "東京タワー 芝公園", spots[0].SearchName)
		assert.InDelta(t, 35.6586, spots[0].Lat, 0.0001)
		assert.InDelta(t, 139.7454, spots[0].Lon, 0.0001)
	})

	t.Run("空配列は有効で0件を返す", func(t *testing.T) {
		spots, err := SanitizeSpotResponse("[]")

		require.NoError(t, err)
		assert.Empty(t, spots)
	})

	t.Run("角括弧が無い場合はResponseFormatErrorを返す", func(t *testing.T) {
		raw := "申し訳ありませんが、条件に合うスポットが見つかりませんでした。"

		spots, err := SanitizeSpotResponse(raw)

		require.Error(t, err)
		assert.Nil(t, spots)

		var formatErr *model.ResponseFormatError
		require.True(t, errors.As(err, &formatErr), "ResponseFormatError以外のエラー型が返された: %T", err)
		assert.Equal(t, raw, formatErr.RawText)
	})

	t.Run("JSONとして不正な場合はResponseFormatErrorを返す", func(t *testing.T) {
		raw := "[{name: 東京タワー}]"

		_, err := SanitizeSpotResponse(raw)

		var formatErr *model.ResponseFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, raw, formatErr.RawText)
	})

	t.Run("オプションフィールドの欠落はエラーにならない", func(t *testing.T) {
		raw := `[{"name":"名前だけ","search_name":"名前だけ","area":"東京","reason":"r","permission":"p"}]`

		spots, err := SanitizeSpotResponse(raw)

		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.False(t, spots[0].HasCoordinates())
		assert.Empty(t, spots[0].Script)
	})
}
