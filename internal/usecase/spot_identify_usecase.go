package usecase

import (
	"context"
	"fmt"
	"log"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/domain/repository"
	"RokeNote-App/internal/domain/service"
	"RokeNote-App/internal/session"
)

type SpotIdentifyUseCase interface {
	// Identify はアップロードされた画像から撮影スポットを特定・提案する
	Identify(ctx context.Context, sessionID string, image model.ImagePayload, hint, area string) (*model.SpotIdentifyResponse, error)
}

// spotIdentifyUseCaseImpl はSpotIdentifyUseCaseの実装
type spotIdentifyUseCaseImpl struct {
	sessions    *session.Store
	spotRepo    repository.SpotGenerationRepository
	cardService *service.SpotCardService
}

// NewSpotIdentifyUseCase は新しいSpotIdentifyUseCaseインスタンスを作成
func NewSpotIdentifyUseCase(
	sessions *session.Store,
	spotRepo repository.SpotGenerationRepository,
	cardService *service.SpotCardService,
) SpotIdentifyUseCase {
	return &spotIdentifyUseCaseImpl{
		sessions:    sessions,
		spotRepo:    spotRepo,
		cardService: cardService,
	}
}

// Identify はアップロードされた画像から撮影スポットを特定・提案する。
// 特定できない場合はモデル側が類似スポットをconfidence付きで返す。
func (u *spotIdentifyUseCaseImpl) Identify(ctx context.Context, sessionID string, image model.ImagePayload, hint, area string) (*model.SpotIdentifyResponse, error) {
	log.Printf("🚀 画像からのスポット特定開始 (ヒント: %s)", hint)

	tags, err := u.sessions.Tags(sessionID)
	if err != nil {
		return nil, fmt.Errorf("セッションの取得に失敗: %w", err)
	}

	prompt := service.BuildSpotPrompt(service.PromptInput{
		Area:       area,
		Conditions: hint,
		Mode:       service.ModeIdentify,
	})

	spots, err := u.spotRepo.IdentifySpots(ctx, prompt, image)
	if err != nil {
		return nil, fmt.Errorf("スポット特定に失敗: %w", err)
	}

	cards := u.cardService.RenderCards(spots, tags)

	if err := u.sessions.SetLastResults(sessionID, hint, spots); err != nil {
		return nil, fmt.Errorf("検索結果の保存に失敗: %w", err)
	}

	log.Printf("🎉 画像からのスポット特定完了 (%d件)", len(cards))

	return &model.SpotIdentifyResponse{
		Hint:  hint,
		Count: len(cards),
		Cards: cards,
	}, nil
}
