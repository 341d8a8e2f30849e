package service

import (
	"fmt"
	"strings"
)

// OutputMode プロンプトの出力モード
type OutputMode int

const (
	// ModeSuggest 条件からスポットを提案するモード
	ModeSuggest OutputMode = iota
	// ModeIdentify 添付画像から場所を特定するモード
	ModeIdentify
)

// PromptInput プロンプトテンプレートの名前付きスロット
type PromptInput struct {
	Area       string     // 空の場合は日本全国が対象
	Conditions string     // タグ＋自由入力を連結した検索条件
	StyleLabel string     // 撮影スタイルの日本語表示名
	Mode       OutputMode
	SpotCount  int // 提案するスポット数（0なら5）
}

// jsonFormatExample モデルに要求するJSON配列の形のサンプル。
// フィールド名と値の型（lat/lonは数値、他は文字列）をここで固定する。
const jsonFormatExample = `[
    {
        "name": "スポット名",
        "search_name": "Googleマップ検索用の正確な名称",
        "area": "エリア名",
        "reason": "撮影ポイント解説",
        "permission": "⚠️ 許可・注意点の目安",
        "video_idea": "🎥 カメラワーク案",
        "script": "📝 脚本・セリフ・演出指示",
        "fashion": "👗 おすすめファッション",
        "bgm": "🎵 推奨BGM",
        "sns_info": "📱 SNSタイトル案とハッシュタグ",
        "lat": 35.123456,
        "lon": 139.123456
    }
]`

// BuildSpotPrompt スポット提案・画像特定に共通のプロンプトを構築する。
// テンプレートは1箇所に集約し、エリア制約ガードレールをここで必ず適用する。
func BuildSpotPrompt(input PromptInput) string {
	count := input.SpotCount
	if count <= 0 {
		count = 5
	}

	var b strings.Builder

	scope := "日本全国"
	if strings.TrimSpace(input.Area) != "" {
		scope = strings.TrimSpace(input.Area)
	}

	switch input.Mode {
	case ModeIdentify:
		b.WriteString("添付した画像に写っている場所を特定し、撮影スポットとして提案してください。\n")
		b.WriteString("【特定の手がかり】\n")
		b.WriteString("- 看板・駅名標・路線標識など、画像内の文字情報を読み取って根拠にしてください。\n")
		b.WriteString("- 建物の形状、植生、設備などの視覚的特徴をreasonで説明してください。\n")
		b.WriteString("- 完全に特定できない場合は、似た雰囲気のスポットを提案してください。\n")
		b.WriteString("- 各スポットに confidence フィールド（\"high\" / \"medium\" / \"low\"）を必ず付けてください。\n")
		if input.Conditions != "" {
			fmt.Fprintf(&b, "【補足情報】: %s\n", input.Conditions)
		}
	default:
		fmt.Fprintf(&b, "ユーザーの条件「%s」に基づき、%sの撮影スポットを%d つ提案してください。\n", input.Conditions, scope, count)
	}

	if input.StyleLabel != "" {
		fmt.Fprintf(&b, "【現在の撮影スタイル】: %s\n", input.StyleLabel)
	}

	// エリア指定時は範囲外スポットの除外を明示的に指示する（ハルシネーション対策）
	if strings.TrimSpace(input.Area) != "" {
		area := strings.TrimSpace(input.Area)
		fmt.Fprintf(&b, "【エリア制約】: 提案は「%s」エリア内のスポットに限定してください。「%s」の外にあるスポットは絶対に含めないでください。\n", area, area)
	}

	b.WriteString(`【必須要件】
1. lat/lon: アプリ内地図用（必須・数値）。
2. search_name: Googleマップ検索用の正確な名称。
3. permission: 撮影許可の目安。
4. video_idea: カメラワークや構図の提案。
5. script: 撮影スタイルに合わせた短い脚本・演出指示。
6. fashion: その場所の雰囲気に合うおすすめの服装・ファッション。
7. bgm: 編集時に合わせるべきBGMのジャンルや雰囲気。
8. sns_info: TikTok/Reels投稿用のバズりそうなハッシュタグ5〜6個と、キャッチーなタイトル案。
`)
	if input.Mode == ModeIdentify {
		b.WriteString("9. confidence: 特定の確度（\"high\" / \"medium\" / \"low\"）。\n")
	}

	b.WriteString("\n以下のJSONフォーマットのみを返してください。JSON配列以外のテキストは出力しないでください。\n")
	b.WriteString(jsonFormatExample)

	return b.String()
}
