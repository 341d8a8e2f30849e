package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"RokeNote-App/internal/domain/model"
)

// ErrSessionNotFound セッションが存在しない、または期限切れであることを表す
var ErrSessionNotFound = errors.New("セッションが見つかりません")

// Session 1ユーザーセッションが所有する可変状態。
// タグバケット・ログインフラグ・直近の検索結果はセッション間で共有されない。
type Session struct {
	ID        string
	LoggedIn  bool
	TagBucket *model.TagBucket
	LastQuery string
	LastSpots []model.Spot
}

// Store セッションをTTL付きで保持するインメモリストア。
// 全ての読み書きはストアのロック下で行い、アクセスのたびに有効期限を延長する。
type Store struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore 新しいStoreを作成する。ttlが0以下の場合は60分を使用する。
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	return &Store{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Create ログイン済みの新しいセッションを発行してIDを返す
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.New().String(),
		LoggedIn:  true,
		TagBucket: model.NewTagBucket(),
	}
	s.cache.Set(sess.ID, sess, s.ttl)
	return sess.ID
}

// IsLoggedIn セッションが存在しログイン済みかどうかを判定する
func (s *Store) IsLoggedIn(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	return ok && sess.LoggedIn
}

// AddTag セッションのタグバケットにタグを追加する（冪等）。
// 追加されたかどうかと更新後のタグ一覧を返す。
func (s *Store) AddTag(id, tag string) (bool, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	if !ok {
		return false, nil, ErrSessionNotFound
	}
	added := sess.TagBucket.Add(tag)
	return added, sess.TagBucket.List(), nil
}

// ClearTags セッションのタグバケットを空にする
func (s *Store) ClearTags(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	if !ok {
		return ErrSessionNotFound
	}
	sess.TagBucket.Clear()
	return nil
}

// Tags セッションのタグ一覧のスナップショットを取得する
func (s *Store) Tags(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.TagBucket.List(), nil
}

// JoinedQuery タグバケット由来のデフォルト検索テキストを取得する
func (s *Store) JoinedQuery(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	if !ok {
		return "", ErrSessionNotFound
	}
	return sess.TagBucket.JoinedQuery(), nil
}

// SetLastResults 直近の検索条件と結果を保存する（次の検索で上書きされる）
func (s *Store) SetLastResults(id, query string, spots []model.Spot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	if !ok {
		return ErrSessionNotFound
	}
	sess.LastQuery = query
	sess.LastSpots = make([]model.Spot, len(spots))
	copy(sess.LastSpots, spots)
	return nil
}

// LastResults 直近の検索条件と結果のスナップショットを取得する
func (s *Store) LastResults(id string) (string, []model.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.getLocked(id)
	if !ok {
		return "", nil, ErrSessionNotFound
	}
	spots := make([]model.Spot, len(sess.LastSpots))
	copy(spots, sess.LastSpots)
	return sess.LastQuery, spots, nil
}

// getLocked セッションを取得し、見つかれば有効期限を延長する。ロック保持中に呼ぶこと。
func (s *Store) getLocked(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	value, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := value.(*Session)
	if !ok {
		return nil, false
	}
	s.cache.Set(id, sess, s.ttl)
	return sess, true
}
