package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RokeNote-App/internal/domain/model"
	"RokeNote-App/internal/session"
)

func TestExportUseCase_Export(t *testing.T) {
	t.Run("検索結果が無いセッションはエクスポートできない", func(t *testing.T) {
		sessions := session.NewStore(time.Minute)
		sessionID := sessions.Create()
		uc := NewExportUseCase(sessions)

		_, _, err := uc.Export(context.Background(), sessionID)

		assert.ErrorIs(t, err, ErrNoExportableResults)
	})

	t.Run("直近の検索結果をファイル名付きテキストとして返す", func(t *testing.T) {
		sessions := session.NewStore(time.Minute)
		sessionID := sessions.Create()
		spots := []model.Spot{
			{Name: "東京タワー", Area: "港区", Reason: "夜景が映える"},
			{Name: "芝公園", Area: "港区", Reason: "緑とタワーの対比"},
		}
		require.NoError(t, sessions.SetLastResults(sessionID, "夜景", spots))
		uc := NewExportUseCase(sessions)

		filename, content, err := uc.Export(context.Background(), sessionID)

		require.NoError(t, err)
		assert.Equal(t, "rokenote_plan.txt", filename)
		assert.Contains(t, content, "「夜景」の撮影プラン")
		assert.Contains(t, content, "1. 東京タワー（港区）")
		assert.Contains(t, content, "2. 芝公園（港区）")
	})

	t.Run("存在しないセッションはエラー", func(t *testing.T) {
		sessions := session.NewStore(time.Minute)
		uc := NewExportUseCase(sessions)

		_, _, err := uc.Export(context.Background(), "unknown-session")

		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}
