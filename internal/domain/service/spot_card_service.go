package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/paulmach/orb"

	"RokeNote-App/internal/domain/model"
)

const (
	mapSearchBaseURL   = "https://www.google.com/maps/search/"
	directionsBaseURL  = "https://www.google.com/maps/dir/"
	imageSearchBaseURL = "https://www.google.com/search"

	// previewPadding 地図プレビューのビューポート余白（度数、約300m）
	previewPadding = 0.003
)

// permissionAlertWords 許可・注意テキストを警告表示に切り替える語
var permissionAlertWords = []string{"禁止", "許可", "私有地"}

// imageSearchExcludeTerms 画像検索から関係ないカテゴリ（飲食写真など）を除外する語
var imageSearchExcludeTerms = []string{"-グルメ", "-料理", "-食べ物"}

// SpotCardService Spotを表示用カードへ投影する純粋なサービス。
// パース済みのSpotを変更することはない。
type SpotCardService struct{}

// NewSpotCardService 新しいSpotCardServiceインスタンスを作成
func NewSpotCardService() *SpotCardService {
	return &SpotCardService{}
}

// RenderCards Spotのリストをモデルの返却順のままカードへ変換する。
// contextTagsは画像検索クエリの補強に使用される（検索時のタグ・キーワード）。
func (s *SpotCardService) RenderCards(spots []model.Spot, contextTags []string) []model.SpotCard {
	cards := make([]model.SpotCard, 0, len(spots))
	for i := range spots {
		cards = append(cards, s.renderCard(&spots[i], contextTags))
	}
	return cards
}

func (s *SpotCardService) renderCard(spot *model.Spot, contextTags []string) model.SpotCard {
	queryName := spot.MapQueryName()

	return model.SpotCard{
		Name:           spot.Name,
		Area:           spot.Area,
		Permission:     spot.Permission,
		AlertLevel:     classifyPermission(spot.Permission),
		Confidence:     spot.Confidence,
		MapURL:         buildMapSearchURL(queryName),
		DirectionsURL:  buildDirectionsURL(queryName),
		ImageSearchURL: buildImageSearchURL(queryName, contextTags),
		MapPreview:     buildMapPreview(spot),
		Shoot: model.ShootSection{
			Reason:    spot.Reason,
			VideoIdea: spot.VideoIdea,
			Script:    spot.Script,
		},
		Styling: model.StylingSection{
			Fashion: spot.Fashion,
			BGM:     spot.BGM,
			SNSInfo: spot.SNSInfo,
		},
	}
}

// classifyPermission 許可・注意テキストの表示レベルを判定する
func classifyPermission(text string) string {
	for _, word := range permissionAlertWords {
		if strings.Contains(text, word) {
			return model.AlertLevelWarning
		}
	}
	return model.AlertLevelNote
}

// buildMapSearchURL マップ検索のディープリンクを構築する
func buildMapSearchURL(queryName string) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("query", queryName)
	return fmt.Sprintf("%s?%s", mapSearchBaseURL, params.Encode())
}

// buildDirectionsURL 経路案内のディープリンクを構築する
func buildDirectionsURL(queryName string) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("destination", queryName)
	return fmt.Sprintf("%s?%s", directionsBaseURL, params.Encode())
}

// buildImageSearchURL 参考写真用の画像検索リンクを構築する。
// 検索時のタグで見た目の傾向を寄せ、飲食系カテゴリを除外語で弾く。
func buildImageSearchURL(queryName string, contextTags []string) string {
	terms := []string{queryName, "風景"}
	terms = append(terms, contextTags...)
	terms = append(terms, imageSearchExcludeTerms...)

	params := url.Values{}
	params.Set("q", strings.Join(terms, " "))
	params.Set("tbm", "isch")
	return fmt.Sprintf("%s?%s", imageSearchBaseURL, params.Encode())
}

// buildMapPreview 座標が有効な場合のみ地図プレビューを構築する。
// 座標が無い・ゼロのSpotはエラーではなく、プレビューを黙って省略する。
func buildMapPreview(spot *model.Spot) *model.MapPreview {
	if !spot.HasCoordinates() {
		return nil
	}

	point := orb.Point{spot.Lon, spot.Lat}
	bound := orb.Bound{Min: point, Max: point}.Pad(previewPadding)

	return &model.MapPreview{
		Center: spot.ToLatLng(),
		MinLat: bound.Min.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLng: bound.Max.Lon(),
	}
}
