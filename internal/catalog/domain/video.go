package domain

import "time"

const (
	// CategoryAll sentinel category that disables the category filter
	CategoryAll = "All"

	// RecommendLimit max entries in a recommendation result
	RecommendLimit = 3
)

// Video 定義影片模型
// 目錄在啟動時填入一次，之後唯讀
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	UploadDate  string `json:"uploadDate"`
}

// SummaryResult usecase summarize response
type SummaryResult struct {
	Summary     string    `json:"summary"`
	VideoID     string    `json:"videoId"`
	GeneratedAt time.Time `json:"generatedAt"`
	AIModel     string    `json:"aiModel"`
}
