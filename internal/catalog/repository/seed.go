package repository

import "short_video_service/internal/catalog/domain"

// SeedVideos 返回啟動時填入目錄的影片清單
// id 在目錄內唯一，順序即目錄順序
func SeedVideos() []domain.Video {
	return []domain.Video{
		{
			ID:          "1",
			Title:       "The Morning Routine That Changed My Life",
			Description: "Discover how a simple 10-minute morning routine can transform your entire day. Based on neuroscience and tested by thousands.",
			Category:    "Lifestyle",
			Duration:    "8:45",
			Views:       125000,
			Likes:       8500,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Thumbnail:   "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=400&h=700&fit=crop",
			UploadDate:  "2024-01-15",
		},
		{
			ID:          "2",
			Title:       "Inside a Day of a Silicon Valley Engineer",
			Description: "Follow me through a typical workday at a major tech company. Code reviews, meetings, and the reality behind the scenes.",
			Category:    "Technology",
			Duration:    "9:30",
			Views:       89000,
			Likes:       5200,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Thumbnail:   "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=400&h=700&fit=crop",
			UploadDate:  "2024-01-20",
		},
		{
			ID:          "3",
			Title:       "5-Minute Mediterranean Pasta Recipe",
			Description: "Quick, delicious, and healthy! This pasta dish takes only 5 minutes to prepare and tastes like you spent an hour cooking.",
			Category:    "Food",
			Duration:    "6:20",
			Views:       210000,
			Likes:       15000,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Thumbnail:   "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400&h=700&fit=crop",
			UploadDate:  "2024-01-22",
		},
		{
			ID:          "4",
			Title:       "The Truth About Passive Income",
			Description: "I made $10k last month from passive income streams. Here is exactly what I did and what you need to know.",
			Category:    "Finance",
			Duration:    "10:00",
			Views:       156000,
			Likes:       9800,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			Thumbnail:   "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=400&h=700&fit=crop",
			UploadDate:  "2024-01-25",
		},
		{
			ID:          "5",
			Title:       "Exploring Abandoned Tokyo: Urban Adventure",
			Description: "Journey through the forgotten corners of Tokyo. Abandoned buildings with incredible stories waiting to be told.",
			Category:    "Travel",
			Duration:    "9:15",
			Views:       94000,
			Likes:       6100,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
			Thumbnail:   "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=400&h=700&fit=crop",
			UploadDate:  "2024-01-28",
		},
		{
			ID:          "6",
			Title:       "Beginner Yoga Flow for Stress Relief",
			Description: "Perfect for complete beginners. This gentle 8-minute flow will help you release tension and find calm.",
			Category:    "Health",
			Duration:    "8:00",
			Views:       178000,
			Likes:       12000,
			URL:         "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Thumbnail:   "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=700&fit=crop",
			UploadDate:  "2024-01-30",
		},
	}
}
