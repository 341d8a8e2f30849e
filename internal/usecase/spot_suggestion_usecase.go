package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/domain/repository"
	"RokeNote-App/internal/domain/service"
	"RokeNote-App/internal/session"
)

// ErrNoSearchConditions タグも自由入力も無く、検索条件を組み立てられないことを表す
var ErrNoSearchConditions = errors.New("スタンプを選ぶか、テーマを入力してください")

type SpotSuggestionUseCase interface {
	// Suggest はセッションのタグとリクエスト条件からスポット提案を生成する
	Suggest(ctx context.Context, sessionID string, req *model.SpotSuggestionRequest) (*model.SpotSuggestionResponse, error)
}

// spotSuggestionUseCaseImpl はSpotSuggestionUseCaseの実装
type spotSuggestionUseCaseImpl struct {
	sessions    *session.Store
	spotRepo    repository.SpotGenerationRepository
	cardService *service.SpotCardService
}

// NewSpotSuggestionUseCase は新しいSpotSuggestionUseCaseインスタンスを作成
func NewSpotSuggestionUseCase(
	sessions *session.Store,
	spotRepo repository.SpotGenerationRepository,
	cardService *service.SpotCardService,
) SpotSuggestionUseCase {
	return &spotSuggestionUseCaseImpl{
		sessions:    sessions,
		spotRepo:    spotRepo,
		cardService: cardService,
	}
}

// Suggest はセッションのタグとリクエスト条件からスポット提案を生成する。
// モデル呼び出しは同期1回のみで、失敗時は0件のままエラーを返す。
func (u *spotSuggestionUseCaseImpl) Suggest(ctx context.Context, sessionID string, req *model.SpotSuggestionRequest) (*model.SpotSuggestionResponse, error) {
	log.Printf("🚀 スポット提案生成開始 (エリア: %s, スタイル: %s)", req.Area, req.Style)

	// Step 1: セッションのタグバケットをスナップショットして検索条件を構築
	tags, err := u.sessions.Tags(sessionID)
	if err != nil {
		return nil, fmt.Errorf("セッションの取得に失敗: %w", err)
	}

	searchReq := &model.SearchRequest{
		Area:     req.Area,
		Style:    req.Style,
		FreeText: req.FreeText,
		Tags:     tags,
	}

	if !searchReq.HasConditions() {
		return nil, ErrNoSearchConditions
	}
	theme := searchReq.Conditions()

	// Step 2: プロンプトを構築してモデルを1回呼び出す
	prompt := service.BuildSpotPrompt(service.PromptInput{
		Area:       searchReq.Area,
		Conditions: theme,
		StyleLabel: model.GetStyleJapaneseName(searchReq.Style),
		Mode:       service.ModeSuggest,
	})

	spots, err := u.spotRepo.GenerateSpots(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("スポット生成に失敗: %w", err)
	}

	// Step 3: カードへ投影し、結果をセッションに保存（次の検索で上書き）
	cards := u.cardService.RenderCards(spots, tags)

	if err := u.sessions.SetLastResults(sessionID, theme, spots); err != nil {
		return nil, fmt.Errorf("検索結果の保存に失敗: %w", err)
	}

	log.Printf("🎉 スポット提案生成完了 (%d件)", len(cards))

	return &model.SpotSuggestionResponse{
		Theme: theme,
		Style: model.GetStyleJapaneseName(searchReq.Style),
		Area:  searchReq.Area,
		Count: len(cards),
		Cards: cards,
	}, nil
}
