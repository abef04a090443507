package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Like struct {
	Id        string    `gorm:"primaryKey;size:36"`
	UserId    string    `gorm:"uniqueIndex:idx_user_video;size:36;not null"`
	VideoId   string    `gorm:"uniqueIndex:idx_user_video;size:36;not null"`
	CreatedAt time.Time
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.Id == "" {
		l.Id = uuid.NewString()
	}
	return nil
}

// ToggleLike flips the (user, video) like row inside one transaction
// so the check and the create/delete cannot interleave with a second
// identical request. The composite unique index is the backstop: a
// race that slips through fails with gorm.ErrDuplicatedKey instead of
// writing a second row.
func ToggleLike(userId, videoId string) (liked bool, err error) {
	err = Db.Transaction(func(tx *gorm.DB) error {
		var existing Like
		findErr := tx.First(&existing, "user_id = ? AND video_id = ?", userId, videoId).Error
		switch {
		case findErr == nil:
			liked = false
			return tx.Delete(&existing).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			liked = true
			return tx.Create(&Like{UserId: userId, VideoId: videoId}).Error
		default:
			return findErr
		}
	})
	return
}

// CountLikesByVideoIds returns like counts keyed by video id; ids with
// no likes are simply absent from the map.
func CountLikesByVideoIds(videoIds []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(videoIds))
	if len(videoIds) == 0 {
		return counts, nil
	}

	type row struct {
		VideoId string
		Cnt     int64
	}
	var rows []row
	err := Db.Model(&Like{}).
		Select("video_id, COUNT(*) AS cnt").
		Where("video_id IN ?", videoIds).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.VideoId] = r.Cnt
	}
	return counts, nil
}

// GetLikedVideoIdSet reports which of the given videos the user has
// liked.
func GetLikedVideoIdSet(userId string, videoIds []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(videoIds))
	if userId == "" || len(videoIds) == 0 {
		return liked, nil
	}

	ids := []string{}
	err := Db.Model(&Like{}).
		Where("user_id = ? AND video_id IN ?", userId, videoIds).
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
