package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	Id          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"not null"`
	Description string
	Url         string    `gorm:"not null"`
	UserId      string    `gorm:"index;size:36;not null"`
	User        User      `gorm:"foreignKey:UserId"`
	CreatedAt   time.Time `gorm:"index"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.Id == "" {
		v.Id = uuid.NewString()
	}
	return nil
}

func PersistVideo(video *Video) error {
	return Db.Create(video).Error
}

func GetVideoById(videoId string) (v Video, err error) {
	err = Db.Preload("User").First(&v, "id = ?", videoId).Error
	return
}

// FeedWindow returns up to limit videos in (created_at DESC, id DESC)
// order, strictly after the given row when one is passed. The id
// tiebreak keeps the window stable when timestamps collide.
func FeedWindow(limit int, after *Video) ([]Video, error) {
	q := Db.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit)
	if after != nil {
		q = q.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			after.CreatedAt, after.CreatedAt, after.Id,
		)
	}

	var videos []Video
	err := q.Find(&videos).Error
	return videos, err
}

// get published videos by the specified author, newest first
func GetVideosByAuthor(authorId string) ([]Video, error) {
	var videos []Video
	err := Db.Preload("User").
		Where("user_id = ?", authorId).
		Order("created_at DESC, id DESC").
		Find(&videos).Error
	return videos, err
}

// videos the user has liked, most recently liked first
func GetVideosLikedBy(userId string) ([]Video, error) {
	var videos []Video
	err := Db.Preload("User").
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.user_id = ?", userId).
		Order("likes.created_at DESC").
		Find(&videos).Error
	return videos, err
}
