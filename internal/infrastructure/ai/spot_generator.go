package ai

import (
	"context"
	"fmt"
	"log"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/domain/repository"
	"RokeNote-App/internal/domain/service"
)

// geminiSpotRepository はGemini APIを使用してSpotGenerationRepositoryを実装
type geminiSpotRepository struct {
	client *GeminiClient
}

// NewGeminiSpotRepository は新しいgeminiSpotRepositoryインスタンスを作成
func NewGeminiSpotRepository(client *GeminiClient) repository.SpotGenerationRepository {
	return &geminiSpotRepository{
		client: client,
	}
}

// GenerateSpots はプロンプトから撮影スポットのリストを生成する
func (g *geminiSpotRepository) GenerateSpots(ctx context.Context, prompt string) ([]model.Spot, error) {
	log.Printf("🤖 Gemini APIで撮影スポットを生成中...")

	raw, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}

	spots, err := service.SanitizeSpotResponse(raw)
	if err != nil {
		log.Printf("❌ スポットレスポンスのサニタイズに失敗: %v", err)
		return nil, err
	}

	log.Printf("✅ スポット生成完了 (%d件)", len(spots))
	return spots, nil
}

// IdentifySpots は画像を添付してスポットを特定・提案する
func (g *geminiSpotRepository) IdentifySpots(ctx context.Context, prompt string, image model.ImagePayload) ([]model.Spot, error) {
	log.Printf("🤖 Gemini APIで画像からスポットを特定中... (mime: %s, %dバイト)", image.MimeType, len(image.Data))

	raw, err := g.client.GenerateContentWithImage(ctx, prompt, image)
	if err != nil {
		return nil, fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}

	spots, err := service.SanitizeSpotResponse(raw)
	if err != nil {
		log.Printf("❌ スポットレスポンスのサニタイズに失敗: %v", err)
		return nil, err
	}

	log.Printf("✅ スポット特定完了 (%d件)", len(spots))
	return spots, nil
}
