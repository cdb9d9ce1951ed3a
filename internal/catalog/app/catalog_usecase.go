package app

import (
	"context"
	"strings"

	"short_video_service/internal/catalog/domain"
	"short_video_service/internal/catalog/repository"
	"short_video_service/pkg"
	"short_video_service/pkg/logger"

	"go.uber.org/zap"
)

// CatalogUseCase 這裡封裝了對外提供的應用服務
type CatalogUseCase interface {
	GetVideos(ctx context.Context) []domain.Video
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
	Search(ctx context.Context, keyword, category string) []domain.Video
	Categories(ctx context.Context) []string
	Recommend(ctx context.Context, videoID string) ([]domain.Video, error)
	Summarize(ctx context.Context, videoID string) (*domain.SummaryResult, error)
}

type catalogUseCase struct {
	videoRepo  repository.VideoRepo
	summarizer SummaryGenerator
}

// NewCatalogUseCase 建立一個新的 CatalogUseCase
func NewCatalogUseCase(videoRepo repository.VideoRepo, summarizer SummaryGenerator) CatalogUseCase {
	return &catalogUseCase{
		videoRepo:  videoRepo,
		summarizer: summarizer,
	}
}

// GetVideos 依目錄順序返回全部影片
func (u *catalogUseCase) GetVideos(ctx context.Context) []domain.Video {
	return u.videoRepo.GetAll()
}

// GetVideo get video by id
func (u *catalogUseCase) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	return u.videoRepo.GetByID(id)
}

// Search 關鍵字比對標題或描述（不分大小寫），再與類別過濾取交集
// keyword 為空時全部命中；category 為空或 "All" 時不過濾類別
// 結果保持目錄順序，不做任何排序或計分
func (u *catalogUseCase) Search(ctx context.Context, keyword, category string) []domain.Video {
	term := strings.ToLower(keyword)
	filterCategory := category != "" && category != domain.CategoryAll

	result := []domain.Video{}
	for _, v := range u.videoRepo.GetAll() {
		if filterCategory && v.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(v.Title), term) &&
			!strings.Contains(strings.ToLower(v.Description), term) {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Categories 依目錄順序去重類別，前面補上 "All"
func (u *catalogUseCase) Categories(ctx context.Context) []string {
	categories := []string{domain.CategoryAll}
	for _, v := range u.videoRepo.GetAll() {
		if !pkg.Contains(categories, v.Category) {
			categories = append(categories, v.Category)
		}
	}
	return categories
}

// Recommend 給定影片，產生最多 3 部接著看的影片
// 先取同類別（目錄順序，排除自身），不足 3 部時依目錄順序
// 用尚未被選中的影片補滿。結果對固定目錄是確定性的
func (u *catalogUseCase) Recommend(ctx context.Context, videoID string) ([]domain.Video, error) {
	current, err := u.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}

	all := u.videoRepo.GetAll()
	recommendations := make([]domain.Video, 0, domain.RecommendLimit)
	for _, v := range all {
		if v.ID == videoID || v.Category != current.Category {
			continue
		}
		recommendations = append(recommendations, v)
		if len(recommendations) == domain.RecommendLimit {
			break
		}
	}

	if len(recommendations) < domain.RecommendLimit {
		// 補位以 id 判斷是否已被選中，不用實例比對
		selected := make([]string, 0, len(recommendations))
		for _, v := range recommendations {
			selected = append(selected, v.ID)
		}
		for _, v := range all {
			if v.ID == videoID || pkg.Contains(selected, v.ID) {
				continue
			}
			recommendations = append(recommendations, v)
			if len(recommendations) == domain.RecommendLimit {
				break
			}
		}
	}

	return recommendations, nil
}

// Summarize 產生影片摘要，帶有模擬的推論延遲
func (u *catalogUseCase) Summarize(ctx context.Context, videoID string) (*domain.SummaryResult, error) {
	video, err := u.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}

	result, err := u.summarizer.Summarize(ctx, video)
	if err != nil {
		logger.Log.Warn("summarize aborted", zap.String("video_id", videoID), zap.Error(err))
		return nil, err
	}
	return result, nil
}
