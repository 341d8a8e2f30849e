package model

import "strings"

// TagBucket 選択中のタグを挿入順で保持する重複なしコレクション。
// 1セッションが排他的に所有するためロックは持たない（排他はセッションストア側で行う）。
type TagBucket struct {
	tags []string
}

// NewTagBucket 空のTagBucketを作成
func NewTagBucket() *TagBucket {
	return &TagBucket{tags: []string{}}
}

// Add タグを末尾に追加する。既に存在する場合は何もしない（冪等）。
// 追加された場合はtrueを返す。
func (b *TagBucket) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	if b.Contains(tag) {
		return false
	}
	b.tags = append(b.tags, tag)
	return true
}

// Contains タグが既に選択されているかどうかを判定する
func (b *TagBucket) Contains(tag string) bool {
	for _, t := range b.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clear 全タグを削除する
func (b *TagBucket) Clear() {
	b.tags = b.tags[:0]
}

// List タグのコピーを挿入順で取得する
func (b *TagBucket) List() []string {
	list := make([]string, len(b.tags))
	copy(list, b.tags)
	return list
}

// JoinedQuery タグを半角スペース区切りで連結したデフォルト検索テキストを取得する。
// タグが無い場合は空文字列。
func (b *TagBucket) JoinedQuery() string {
	return strings.Join(b.tags, " ")
}

// Len 選択中のタグ数を取得する
func (b *TagBucket) Len() int {
	return len(b.tags)
}
