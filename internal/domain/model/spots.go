package model

// LatLng 緯度経度を表す基本的な型（地図プレビューなどで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot 生成AIが提案した撮影スポット1件を表すモデル。
// モデルのJSONレスポンスの1要素をパースして生成され、以後は読み取り専用。
type Spot struct {
	Name       string  `json:"name"`                  // スポット名
	SearchName string  `json:"search_name"`           // Googleマップ検索用の正確な名称
	Area       string  `json:"area"`                  // エリア名
	Reason     string  `json:"reason"`                // 撮影ポイント解説
	Permission string  `json:"permission"`            // 撮影許可・注意点の目安
	VideoIdea  string  `json:"video_idea,omitempty"`  // カメラワーク・構図案
	Script     string  `json:"script,omitempty"`      // 短い脚本・演出指示
	Fashion    string  `json:"fashion,omitempty"`     // おすすめファッション
	BGM        string  `json:"bgm,omitempty"`         // 推奨BGM
	SNSInfo    string  `json:"sns_info,omitempty"`    // SNSタイトル案とハッシュタグ
	Lat        float64 `json:"lat,omitempty"`         // 緯度（省略可）
	Lon        float64 `json:"lon,omitempty"`         // 経度（省略可）
	Confidence string  `json:"confidence,omitempty"`  // 画像特定モードのみ: high / medium / low
}

// MapQueryName マップ検索に使う名称を取得する（search_nameが無ければnameにフォールバック）
func (s *Spot) MapQueryName() string {
	if s.SearchName != "" {
		return s.SearchName
	}
	return s.Name
}

// HasCoordinates 緯度経度が有効（非ゼロ）かどうかを判定する
func (s *Spot) HasCoordinates() bool {
	return s.Lat != 0 && s.Lon != 0
}

// ToLatLng Spotの位置情報をLatLng型に変換
func (s *Spot) ToLatLng() LatLng {
	return LatLng{Lat: s.Lat, Lng: s.Lon}
}

// MapPreview 地図プレビュー用の1点と表示ビューポート境界
type MapPreview struct {
	Center LatLng  `json:"center"`
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// ShootSection 撮影系フィールドの表示グループ（ポイント・構成案・脚本）
type ShootSection struct {
	Reason    string `json:"reason"`
	VideoIdea string `json:"video_idea,omitempty"`
	Script    string `json:"script,omitempty"`
}

// StylingSection 演出系フィールドの表示グループ（衣装・BGM・SNS）
type StylingSection struct {
	Fashion string `json:"fashion,omitempty"`
	BGM     string `json:"bgm,omitempty"`
	SNSInfo string `json:"sns_info,omitempty"`
}

// SpotCard Spotの表示用投影。パース後のSpotを変更せず、純粋な射影として構築される。
type SpotCard struct {
	Name           string         `json:"name"`
	Area           string         `json:"area"`
	Permission     string         `json:"permission"`
	AlertLevel     string         `json:"alert_level"` // AlertLevelWarning / AlertLevelNote
	Confidence     string         `json:"confidence,omitempty"`
	MapURL         string         `json:"map_url"`
	DirectionsURL  string         `json:"directions_url"`
	ImageSearchURL string         `json:"image_search_url"`
	MapPreview     *MapPreview    `json:"map_preview,omitempty"` // 座標が無い場合はnil
	Shoot          ShootSection   `json:"shoot"`
	Styling        StylingSection `json:"styling"`
}

// AlertLevel 許可・注意テキストの表示レベル
const (
	AlertLevelWarning = "warning" // 禁止・許可・私有地などの警告語を含む
	AlertLevelNote    = "note"    // 通常の注意書き
)

// ImagePayload 画像特定モードでモデルに添付する画像
type ImagePayload struct {
	MimeType string
	Data     []byte
}
