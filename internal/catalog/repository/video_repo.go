package repository

import (
	"short_video_service/internal/catalog/domain"
	errprocess "short_video_service/pkg/err"
)

// VideoRepo definition get video info
type VideoRepo interface {
	GetAll() []domain.Video
	GetByID(id string) (*domain.Video, error)
	// 目錄唯讀，沒有 Create/Update/Delete
}

// videoRepo 行程內的影片目錄，啟動時填入一次後不再變動，讀取免鎖
type videoRepo struct {
	videos []domain.Video
	byID   map[string]int
}

// NewVideoRepo create VideoRepo
func NewVideoRepo(videos []domain.Video) VideoRepo {
	byID := make(map[string]int, len(videos))
	for i, v := range videos {
		byID[v.ID] = i
	}
	return &videoRepo{
		videos: videos,
		byID:   byID,
	}
}

// GetAll 依目錄的固定順序返回全部影片
func (r *videoRepo) GetAll() []domain.Video {
	// 返回副本，避免呼叫端改動目錄
	out := make([]domain.Video, len(r.videos))
	copy(out, r.videos)
	return out
}

// GetByID get video by id
func (r *videoRepo) GetByID(id string) (*domain.Video, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, errprocess.NotFound("Video not found")
	}
	v := r.videos[idx]
	return &v, nil
}
