package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RokeNote-App/internal/domain/model"
)

func TestSpotCardService_RenderCards(t *testing.T) {
	cardService := NewSpotCardService()

	t.Run("マップ検索URLはqueryパラメータにエンコード・復元可能な形で埋め込む", func(t *testing.T) {
		spots := []model.Spot{{Name: "東京タワー", SearchName: "東京 タワー"}}

		cards := cardService.RenderCards(spots, nil)

		require.Len(t, cards, 1)
		parsed, err := url.Parse(cards[0].MapURL)
		require.NoError(t, err)
		assert.Equal(t, "www.google.com", parsed.Host)
		assert.Equal(t, "/maps/search/", parsed.Path)
		assert.Equal(t, "東京 タワー", parsed.Query().Get("query"))
		assert.Equal(t, "1", parsed.Query().Get("api"))
	})

	t.Run("経路案内URLはdestinationパラメータを持つ", func(t *testing.T) {
		spots := []model.Spot{{Name: "東京タワー", SearchName: "東京 タワー"}}

		cards := cardService.RenderCards(spots, nil)

		parsed, err := url.Parse(cards[0].DirectionsURL)
		require.NoError(t, err)
		assert.Equal(t, "東京 タワー", parsed.Query().Get("destination"))
	})

	t.Run("search_nameが無い場合はnameにフォールバックする", func(t *testing.T) {
		spots := []model.Spot{{Name: "名前だけのスポット"}}

		cards := cardService.RenderCards(spots, nil)

		parsed, err := url.Parse(cards[0].MapURL)
		require.NoError(t, err)
		assert.Equal(t, "名前だけのスポット", parsed.Query().Get("query"))
	})

	t.Run("画像検索URLは文脈タグと除外語を含む", func(t *testing.T) {
		spots := []model.Spot{{Name: "工場夜景スポット", SearchName: "川崎 工場地帯"}}

		cards := cardService.RenderCards(spots, []string{"工場", "深夜"})

		parsed, err := url.Parse(cards[0].ImageSearchURL)
		require.NoError(t, err)
		query := parsed.Query().Get("q")
		assert.Contains(t, query, "川崎 工場地帯")
		assert.Contains(t, query, "風景")
		assert.Contains(t, query, "工場")
		assert.Contains(t, query, "深夜")
		assert.Contains(t, query, "-グルメ")
		assert.Equal(t, "isch", parsed.Query().Get("tbm"))
	})

	t.Run("警告語を含む許可テキストはwarningに分類される", func(t *testing.T) {
		spots := []model.Spot{
			{Name: "a", Permission: "三脚の使用は禁止されています"},
			{Name: "b", Permission: "事前に撮影許可が必要です"},
			{Name: "c", Permission: "私有地のため立ち入り注意"},
			{Name: "d", Permission: "公共スペースなので自由に撮影できます"},
		}

		cards := cardService.RenderCards(spots, nil)

		assert.Equal(t, model.AlertLevelWarning, cards[0].AlertLevel)
		assert.Equal(t, model.AlertLevelWarning, cards[1].AlertLevel)
		assert.Equal(t, model.AlertLevelWarning, cards[2].AlertLevel)
		assert.Equal(t, model.AlertLevelNote, cards[3].AlertLevel)
	})

	t.Run("座標がある場合は地図プレビューとビューポート境界が付く", func(t *testing.T) {
		spots := []model.Spot{{Name: "東京タワー", Lat: 35.6586, Lon: 139.7454}}

		cards := cardService.RenderCards(spots, nil)

		preview := cards[0].MapPreview
		require.NotNil(t, preview)
		assert.InDelta(t, 35.6586, preview.Center.Lat, 0.0001)
		assert.InDelta(t, 139.7454, preview.Center.Lng, 0.0001)
		assert.Less(t, preview.MinLat, preview.Center.Lat)
		assert.Greater(t, preview.MaxLat, preview.Center.Lat)
		assert.Less(t, preview.MinLng, preview.Center.Lng)
		assert.Greater(t, preview.MaxLng, preview.Center.Lng)
	})

	t.Run("座標がゼロの場合は地図プレビューを黙って省略し他のフィールドは描画される", func(t *testing.T) {
		spots := []model.Spot{{
			Name:       "座標なしスポット",
			SearchName: "座標なしスポット",
			Reason:     "良い場所",
			Permission: "特になし",
			Lat:        0,
			Lon:        0,
		}}

		cards := cardService.RenderCards(spots, nil)

		require.Len(t, cards, 1)
		assert.Nil(t, cards[0].MapPreview)
		assert.NotEmpty(t, cards[0].MapURL)
		assert.Equal(t, "良い場所", cards[0].Shoot.Reason)
	})

	t.Run("モデルの返却順を保持し重複排除しない", func(t *testing.T) {
		spots := []model.Spot{
			{Name: "スポットA"},
			{Name: "スポットB"},
			{Name: "スポットA"},
		}

		cards := cardService.RenderCards(spots, nil)

		require.Len(t, cards, 3)
		assert.Equal(t, "スポットA", cards[0].Name)
		assert.Equal(t, "スポットB", cards[1].Name)
		assert.Equal(t, "スポットA", cards[2].Name)
	})
}
