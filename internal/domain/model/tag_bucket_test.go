package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagBucket_Add(t *testing.T) {
	t.Run("タグを挿入順に保持する", func(t *testing.T) {
		bucket := NewTagBucket()

		assert.True(t, bucket.Add("昭和レトロ"))
		assert.True(t, bucket.Add("神社"))
		assert.True(t, bucket.Add("深夜"))

		assert.Equal(t, []string{"昭和レトロ", "神社", "深夜"}, bucket.List())
	})

	t.Run("同じタグを2回追加しても1つだけ元の位置に残る", func(t *testing.T) {
		bucket := NewTagBucket()

		bucket.Add("昭和レトロ")
		bucket.Add("神社")
		assert.False(t, bucket.Add("昭和レトロ"))

		assert.Equal(t, []string{"昭和レトロ", "神社"}, bucket.List())
		assert.Equal(t, 2, bucket.Len())
	})

	t.Run("空文字列は追加されない", func(t *testing.T) {
		bucket := NewTagBucket()

		assert.False(t, bucket.Add(""))
		assert.False(t, bucket.Add("   "))
		assert.Equal(t, 0, bucket.Len())
	})
}

func TestTagBucket_Clear(t *testing.T) {
	t.Run("クリア後はバケットが空でデフォルト検索テキストも空になる", func(t *testing.T) {
		bucket := NewTagBucket()
		bucket.Add("工場")
		bucket.Add("深夜")

		bucket.Clear()

		assert.Empty(t, bucket.List())
		assert.Equal(t, "", bucket.JoinedQuery())
	})
}

func TestTagBucket_JoinedQuery(t *testing.T) {
	t.Run("タグを半角スペース区切りで連結する", func(t *testing.T) {
		bucket := NewTagBucket()
		bucket.Add("工場")
		bucket.Add("深夜")

		assert.Equal(t, "工場 深夜", bucket.JoinedQuery())
	})
}

func TestTagBucket_List(t *testing.T) {
	t.Run("Listはコピーを返し内部状態に影響しない", func(t *testing.T) {
		bucket := NewTagBucket()
		bucket.Add("神社")

		list := bucket.List()
		list[0] = "改変"

		assert.Equal(t, []string{"神社"}, bucket.List())
	})
}
