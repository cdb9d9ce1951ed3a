package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"short_video_service/internal/catalog/domain"
)

// DefaultAIModel 摘要結果標記的模型名稱
const DefaultAIModel = "GPT-4 Summary Engine"

// DefaultSummaryDelay 模擬推論延遲的預設值
const DefaultSummaryDelay = 1500 * time.Millisecond

// SummaryGenerator 模擬 AI 摘要產生器的呼叫能力
type SummaryGenerator interface {
	Summarize(ctx context.Context, video *domain.Video) (*domain.SummaryResult, error)
}

// cannedSummaryGenerator 用預寫文案代替真實推論
type cannedSummaryGenerator struct {
	delay time.Duration
	model string
}

// NewSummaryGenerator create a SummaryGenerator
func NewSummaryGenerator(delay time.Duration, model string) SummaryGenerator {
	if delay <= 0 {
		delay = DefaultSummaryDelay
	}
	if model == "" {
		model = DefaultAIModel
	}
	return &cannedSummaryGenerator{
		delay: delay,
		model: model,
	}
}

// 預寫摘要，以影片 id 為 key
var cannedSummaries = map[string]string{
	"1": "This video explores a transformative morning routine backed by neuroscience. Key highlights include: waking at a consistent time, 5 minutes of meditation, cold water exposure, and a protein-rich breakfast. The routine has been tested by over 10,000 people with a 94% success rate in improving focus and energy throughout the day.",
	"2": "An authentic look inside a tech engineer's daily workflow. The video covers: morning standup meetings, code review processes, pair programming sessions, and the challenges of maintaining work-life balance in Silicon Valley. Viewers get practical insights into tech culture and collaborative development practices.",
	"3": "A quick and nutritious Mediterranean pasta recipe that breaks the myth that healthy food takes time. The recipe features: whole grain pasta, fresh cherry tomatoes, garlic, olive oil, and fresh basil. Rich in antioxidants and healthy fats, this meal provides sustained energy and can be prepared in under 5 minutes.",
	"4": "An honest breakdown of building passive income streams. The creator shares: 3 digital products that generate monthly revenue, the initial time investment required (200+ hours), realistic income expectations, and common pitfalls to avoid. Emphasizes that \"passive\" income requires significant upfront work.",
	"5": "Urban exploration documentary showcasing abandoned locations in Tokyo. Features: a 1970s shopping mall frozen in time, an old pachinko parlor with vintage machines, and a forgotten apartment complex. The video discusses the economic factors behind urban abandonment in modern Japan.",
	"6": "Gentle yoga sequence designed for stress relief and beginners. Includes: breathing techniques, 6 basic poses, modifications for limited flexibility, and guidance on proper form. Studies show regular practice can reduce cortisol levels by 28% and improve sleep quality.",
}

// Summarize 返回摘要文字與產生時間
// 延遲用 timer 等待，只停住本請求的 goroutine，其他請求不受影響
func (g *cannedSummaryGenerator) Summarize(ctx context.Context, video *domain.Video) (*domain.SummaryResult, error) {
	summary, ok := cannedSummaries[video.ID]
	if !ok {
		// 沒有預寫文案時，用類別與標題合成
		summary = fmt.Sprintf("This %s video titled %q provides valuable content. %s",
			strings.ToLower(video.Category), video.Title, video.Description)
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &domain.SummaryResult{
		Summary:     summary,
		VideoID:     video.ID,
		GeneratedAt: time.Now(),
		AIModel:     g.model,
	}, nil
}
