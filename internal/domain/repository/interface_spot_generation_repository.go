package repository

import (
	"context"

	"RokeNote-App/internal/domain/model"
)

// SpotGenerationRepository 生成AIによるスポット提案の抽象
type SpotGenerationRepository interface {
	// GenerateSpots プロンプトからスポットのリストを生成する。
	// 1リクエストにつき1回の同期呼び出しで、リトライは行わない。
	GenerateSpots(ctx context.Context, prompt string) ([]model.Spot, error)

	// IdentifySpots 画像を添付してスポットを特定・提案する
	IdentifySpots(ctx context.Context, prompt string, image model.ImagePayload) ([]model.Spot, error)
}
