package model

// ResponseFormatError モデルのレスポンスからJSON配列を取り出せなかったことを表す。
// 診断用に生のレスポンステキストを保持する。
type ResponseFormatError struct {
	Message string
	RawText string
}

func (e *ResponseFormatError) Error() string {
	return "レスポンス形式エラー: " + e.Message
}
