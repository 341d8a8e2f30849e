package suntimes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// fixedTimezone APIに要求する出力タイムゾーン。
// 日本にサマータイムはないため、これ以上のタイムゾーン処理は行わない。
const fixedTimezone = "Asia/Tokyo"

// SunriseSunsetProvider はsunrise-sunset.org APIを使用した日の出・日の入り取得の実装
type SunriseSunsetProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewSunriseSunsetProvider は新しいプロバイダを生成する
func NewSunriseSunsetProvider() *SunriseSunsetProvider {
	return &SunriseSunsetProvider{
		baseURL:    "https://api.sunrise-sunset.org",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchSunTimes は指定座標・日付の日の出/日の入り時刻を"HH:MM"形式で取得する
func (p *SunriseSunsetProvider) FetchSunTimes(ctx context.Context, lat, lng float64, date string) (string, string, error) {
	// 1. APIリクエストURLを構築
	reqURL := p.buildURL(lat, lng, date)

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp sunriseSunsetResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", "", fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if apiResp.Status != "OK" {
		return "", "", fmt.Errorf("APIから有効な結果が返されませんでした: %s", apiResp.Status)
	}

	// 4. 12時間表記の時刻文字列を"HH:MM"に変換して返す
	sunrise, err := toClock(apiResp.Results.Sunrise)
	if err != nil {
		return "", "", fmt.Errorf("日の出時刻の変換に失敗: %w", err)
	}
	sunset, err := toClock(apiResp.Results.Sunset)
	if err != nil {
		return "", "", fmt.Errorf("日の入り時刻の変換に失敗: %w", err)
	}

	return sunrise, sunset, nil
}

func (p *SunriseSunsetProvider) buildURL(lat, lng float64, date string) string {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lng", fmt.Sprintf("%f", lng))
	params.Set("date", date)
	params.Set("tzid", fixedTimezone)
	return fmt.Sprintf("%s/json?%s", p.baseURL, params.Encode())
}

// toClock "6:49:21 AM"形式の時刻文字列を"HH:MM"に変換する
func toClock(value string) (string, error) {
	parsed, err := time.Parse("3:04:05 PM", value)
	if err != nil {
		return "", fmt.Errorf("時刻の形式が不正です %q: %w", value, err)
	}
	return parsed.Format("15:04"), nil
}

// --- sunrise-sunset.org APIのレスポンスをパースするための構造体 ---

type sunriseSunsetResponse struct {
	Results sunResults `json:"results"`
	Status  string     `json:"status"`
}

type sunResults struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}
