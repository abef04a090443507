package impl

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vinay-goud/KLIP/dao"
	"github.com/vinay-goud/KLIP/pkg"
)

type LikeServiceImpl struct{}

func NewLikeService() *LikeServiceImpl {
	return &LikeServiceImpl{}
}

func (s *LikeServiceImpl) ToggleLike(viewerId, videoId string) (bool, error) {
	if viewerId == "" {
		return false, pkg.NewError(pkg.ErrUnauthorized, nil)
	}

	if _, err := dao.GetVideoById(videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, pkg.NewError(pkg.ErrNotFound, fmt.Errorf("video %s: %w", videoId, err))
		}
		return false, pkg.NewError(pkg.ErrInternal, err)
	}

	liked, err := dao.ToggleLike(viewerId, videoId)
	if err != nil {
		// unique-index backstop fired on a concurrent identical toggle
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, pkg.NewError(pkg.ErrConflict, err)
		}
		return false, pkg.NewError(pkg.ErrInternal, err)
	}
	return liked, nil
}
