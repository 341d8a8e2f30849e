package model

// StyleConstants 撮影スタイルの定数
const (
	StyleSolo  = "solo"
	StyleGroup = "group"
)

// StyleNameMap スタイルIDから日本語表示名へのマッピング
var StyleNameMap = map[string]string{
	StyleSolo:  "一人で撮影（Vlog・自撮り・風景）",
	StyleGroup: "複数人で撮影（演者あり・会話劇・デート風）",
}

// GetStyleJapaneseName スタイルIDから日本語表示名を取得する
func GetStyleJapaneseName(style string) string {
	if name, ok := StyleNameMap[style]; ok {
		return name
	}
	return style // デフォルトはそのまま返す
}

// IsValidStyle スタイルIDが有効かどうかを判定する
func IsValidStyle(style string) bool {
	_, ok := StyleNameMap[style]
	return ok
}

// Stamp ワンタップで検索条件になるビジュアルスタンプ
type Stamp struct {
	Label string `json:"label"` // ボタン表示名
	Query string `json:"query"` // スタンプが展開する検索条件テキスト
}

// StampGroup スタンプのタブグループ
type StampGroup struct {
	Name   string  `json:"name"`
	Stamps []Stamp `json:"stamps"`
}

// GetStampCatalog スタンプカタログの全グループを取得する
func GetStampCatalog() []StampGroup {
	return []StampGroup{
		{
			Name: "時間帯・天気",
			Stamps: []Stamp{
				{Label: "🌅 早朝の静寂", Query: "人がいない早朝、朝日が差し込むビル街や公園、澄んだ空気"},
				{Label: "🌇 夕暮れ・マジックアワー", Query: "夕日が沈む直前の空、シルエットが美しい場所、オレンジ色の街並み"},
				{Label: "🌃 真夜中の孤独", Query: "深夜の誰もいない道路、街灯だけが光る場所、孤独感のある都会"},
				{Label: "☔ 雨の日のリフレクション", Query: "雨で濡れた地面にネオンが反射する場所、ガラス越しの雨粒"},
			},
		},
		{
			Name: "雰囲気・感情",
			Stamps: []Stamp{
				{Label: "☕ チル・落ち着く", Query: "風の音が聞こえるような静かな場所、緑とベンチがある場所、リラックスできる風景"},
				{Label: "🎞️ ノスタルジック", Query: "昭和レトロな路地裏、錆びた看板、時間が止まったような懐かしい場所"},
				{Label: "🤖 サイバーパンク", Query: "近未来的な構造物、複雑なパイプや電線、LEDの光、ブレードランナーのような雰囲気"},
				{Label: "🍃 廃墟・退廃美", Query: "植物に侵食された人工物、古びたコンクリート、少し不気味だが美しい場所"},
			},
		},
		{
			Name: "場所・建物",
			Stamps: []Stamp{
				{Label: "⛩️ 神社・仏閣", Query: "静寂に包まれた境内、木漏れ日、石畳、日本的な美しさ"},
				{Label: "🏭 工場・インダストリアル", Query: "巨大な鉄骨、煙突、メカニカルな構造美、夜の工場地帯"},
				{Label: "🌉 橋・水辺", Query: "川沿いの遊歩道、巨大な橋の下、水面に映る街の光"},
				{Label: "🚈 電車・高架下", Query: "電車の通過音が響く高架下、線路沿いの小道、踏切のある風景"},
			},
		},
	}
}

// cityCatalog 太陽時刻計算に対応する都市の一覧
var cityCatalog = []City{
	{ID: "tokyo", Name: "東京", Latitude: 35.6762, Longitude: 139.6503},
	{ID: "osaka", Name: "大阪", Latitude: 34.6937, Longitude: 135.5023},
	{ID: "kyoto", Name: "京都", Latitude: 35.0116, Longitude: 135.7681},
	{ID: "sapporo", Name: "札幌", Latitude: 43.0618, Longitude: 141.3545},
	{ID: "sendai", Name: "仙台", Latitude: 38.2682, Longitude: 140.8694},
	{ID: "nagoya", Name: "名古屋", Latitude: 35.1815, Longitude: 136.9066},
	{ID: "fukuoka", Name: "福岡", Latitude: 33.5904, Longitude: 130.4017},
	{ID: "naha", Name: "那覇", Latitude: 26.2124, Longitude: 127.6792},
}

// GetCityCatalog 対応都市の一覧を取得する
func GetCityCatalog() []City {
	cities := make([]City, len(cityCatalog))
	copy(cities, cityCatalog)
	return cities
}

// FindCity 都市IDから都市を検索する
func FindCity(id string) (*City, bool) {
	for i := range cityCatalog {
		if cityCatalog[i].ID == id {
			return &cityCatalog[i], true
		}
	}
	return nil, false
}
