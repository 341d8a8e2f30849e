package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"RokeNote-App/internal/domain/service"
	"RokeNote-App/internal/session"
)

// ErrNoExportableResults エクスポート対象となる検索結果が無いことを表す
var ErrNoExportableResults = errors.New("エクスポートできる検索結果がありません")

type ExportUseCase interface {
	// Export はセッションの直近の検索結果をテキスト文書に直列化する
	Export(ctx context.Context, sessionID string) (filename, content string, err error)
}

// exportUseCaseImpl はExportUseCaseの実装
type exportUseCaseImpl struct {
	sessions *session.Store
}

// NewExportUseCase は新しいExportUseCaseインスタンスを作成
func NewExportUseCase(sessions *session.Store) ExportUseCase {
	return &exportUseCaseImpl{
		sessions: sessions,
	}
}

// Export はセッションの直近の検索結果をテキスト文書に直列化する
func (u *exportUseCaseImpl) Export(ctx context.Context, sessionID string) (string, string, error) {
	query, spots, err := u.sessions.LastResults(sessionID)
	if err != nil {
		return "", "", fmt.Errorf("セッションの取得に失敗: %w", err)
	}

	if len(spots) == 0 {
		return "", "", ErrNoExportableResults
	}

	content := service.WriteSpotList(query, spots)
	log.Printf("✅ 撮影プランのエクスポート完了 (%d件)", len(spots))

	return "rokenote_plan.txt", content, nil
}
