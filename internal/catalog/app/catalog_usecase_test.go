package app

import (
	"context"
	"testing"
	"time"

	"short_video_service/internal/catalog/domain"
	"short_video_service/internal/catalog/repository"
	errprocess "short_video_service/pkg/err"
	"short_video_service/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newSeededUseCase() CatalogUseCase {
	logger.SetNewNop()
	videoRepo := repository.NewVideoRepo(repository.SeedVideos())
	return NewCatalogUseCase(videoRepo, NewSummaryGenerator(time.Millisecond, ""))
}

func videoIDs(videos []domain.Video) []string {
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestGetVideos(t *testing.T) {
	uc := newSeededUseCase()

	videos := uc.GetVideos(context.Background())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, videoIDs(videos), "seed order preserved")
}

func TestGetVideoNotFound(t *testing.T) {
	uc := newSeededUseCase()

	_, err := uc.GetVideo(context.Background(), "999")
	assert.Error(t, err)
	assert.True(t, errprocess.IsKind(err, errprocess.KindNotFound))
}

func TestRecommendSeedExample(t *testing.T) {
	uc := newSeededUseCase()

	// "1" 的類別 Lifestyle 在目錄中唯一，全部由補位構成
	recs, err := uc.Recommend(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, videoIDs(recs))
}

func TestRecommendCompleteness(t *testing.T) {
	uc := newSeededUseCase()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		recs, err := uc.Recommend(ctx, id)
		assert.NoError(t, err)
		assert.Len(t, recs, domain.RecommendLimit)
		assert.NotContains(t, videoIDs(recs), id, "source video is excluded")
	}
}

func TestRecommendDeterminism(t *testing.T) {
	uc := newSeededUseCase()
	ctx := context.Background()

	first, err := uc.Recommend(ctx, "3")
	assert.NoError(t, err)
	second, err := uc.Recommend(ctx, "3")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommendCategoryPriority(t *testing.T) {
	logger.SetNewNop()
	// 四部同類別影片加一部其他類別，同類別必須填滿全部名額
	videos := []domain.Video{
		{ID: "10", Title: "a", Category: "Music"},
		{ID: "11", Title: "b", Category: "Music"},
		{ID: "12", Title: "c", Category: "Sports"},
		{ID: "13", Title: "d", Category: "Music"},
		{ID: "14", Title: "e", Category: "Music"},
	}
	uc := NewCatalogUseCase(repository.NewVideoRepo(videos), NewSummaryGenerator(time.Millisecond, ""))

	recs, err := uc.Recommend(context.Background(), "10")
	assert.NoError(t, err)
	assert.Equal(t, []string{"11", "13", "14"}, videoIDs(recs))
	for _, v := range recs {
		assert.Equal(t, "Music", v.Category)
	}
}

func TestRecommendFillOrder(t *testing.T) {
	logger.SetNewNop()
	// 同類別只有一部時，其餘名額依目錄順序補位
	videos := []domain.Video{
		{ID: "20", Title: "a", Category: "Music"},
		{ID: "21", Title: "b", Category: "Sports"},
		{ID: "22", Title: "c", Category: "Music"},
		{ID: "23", Title: "d", Category: "News"},
	}
	uc := NewCatalogUseCase(repository.NewVideoRepo(videos), NewSummaryGenerator(time.Millisecond, ""))

	recs, err := uc.Recommend(context.Background(), "20")
	assert.NoError(t, err)
	assert.Equal(t, []string{"22", "21", "23"}, videoIDs(recs), "same category first, then catalog-order fill")
}

func TestRecommendNotFound(t *testing.T) {
	uc := newSeededUseCase()

	_, err := uc.Recommend(context.Background(), "999")
	assert.Error(t, err)
	assert.True(t, errprocess.IsKind(err, errprocess.KindNotFound))
}

func TestSearch(t *testing.T) {
	uc := newSeededUseCase()
	ctx := context.Background()

	t.Run("空關鍵字加 All 返回整個目錄", func(t *testing.T) {
		result := uc.Search(ctx, "", domain.CategoryAll)
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, videoIDs(result))
	})

	t.Run("關鍵字不分大小寫", func(t *testing.T) {
		assert.Equal(t, []string{"5"}, videoIDs(uc.Search(ctx, "tokyo", domain.CategoryAll)))
		assert.Equal(t, []string{"5"}, videoIDs(uc.Search(ctx, "TOKYO", "")))
	})

	t.Run("關鍵字比對描述", func(t *testing.T) {
		// "neuroscience" 只出現在 "1" 的描述
		assert.Equal(t, []string{"1"}, videoIDs(uc.Search(ctx, "neuroscience", domain.CategoryAll)))
	})

	t.Run("類別過濾", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, videoIDs(uc.Search(ctx, "", "Food")))
	})

	t.Run("關鍵字與類別取交集", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, videoIDs(uc.Search(ctx, "pasta", "Food")))
		assert.Empty(t, uc.Search(ctx, "pasta", "Travel"))
	})

	t.Run("沒有命中返回空集合", func(t *testing.T) {
		assert.Empty(t, uc.Search(ctx, "nonexistent keyword", domain.CategoryAll))
	})
}

func TestCategories(t *testing.T) {
	uc := newSeededUseCase()

	categories := uc.Categories(context.Background())
	assert.Equal(t, []string{"All", "Lifestyle", "Technology", "Food", "Finance", "Travel", "Health"}, categories)
}

func TestCategoriesDeduplicated(t *testing.T) {
	logger.SetNewNop()
	videos := []domain.Video{
		{ID: "1", Category: "Music"},
		{ID: "2", Category: "Music"},
		{ID: "3", Category: "Sports"},
	}
	uc := NewCatalogUseCase(repository.NewVideoRepo(videos), NewSummaryGenerator(time.Millisecond, ""))

	assert.Equal(t, []string{"All", "Music", "Sports"}, uc.Categories(context.Background()))
}
