package impl

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vinay-goud/KLIP/dao"
	"github.com/vinay-goud/KLIP/middleware/storage"
	"github.com/vinay-goud/KLIP/pkg"
	"github.com/vinay-goud/KLIP/pkg/logger"
	vSrv "github.com/vinay-goud/KLIP/service/video"
)

type VideoServiceImpl struct {
	vSrv.LikeService
}

func NewVideoService(likeSrv vSrv.LikeService) *VideoServiceImpl {
	return &VideoServiceImpl{
		LikeService: likeSrv,
	}
}

func (s *VideoServiceImpl) GetFeedPage(limit int, cursor, viewerId string) (*vSrv.FeedPage, error) {
	if limit < 1 || limit > vSrv.MaxFeedLimit {
		return nil, pkg.NewError(pkg.ErrInvalidInput,
			fmt.Errorf("limit %d outside [1,%d]", limit, vSrv.MaxFeedLimit))
	}

	var after *dao.Video
	if cursor != "" {
		row, err := dao.GetVideoById(cursor)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// unknown cursor degrades to an empty page, same as a
				// range query past the end of the feed
				return &vSrv.FeedPage{Items: []vSrv.VideoView{}}, nil
			}
			return nil, pkg.NewError(pkg.ErrInternal, err)
		}
		after = &row
	}

	// one extra row tells us whether another page exists without a
	// separate count query
	rows, err := dao.FeedWindow(limit+1, after)
	if err != nil {
		logger.L.Error("feed window query failed", zap.Error(err))
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	var nextCursor string
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = rows[limit-1].Id
	}

	items, err := s.buildVideoViews(rows, viewerId)
	if err != nil {
		return nil, err
	}

	return &vSrv.FeedPage{
		Items:      items,
		NextCursor: nextCursor,
	}, nil
}

func (s *VideoServiceImpl) Create(userId, title, url, description string) (*vSrv.VideoView, error) {
	video := dao.Video{
		Title:       title,
		Description: description,
		Url:         url,
		UserId:      userId,
	}
	if err := dao.PersistVideo(&video); err != nil {
		logger.L.Error("failed to persist video", zap.Error(err))
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	// reload for the author preload
	stored, err := dao.GetVideoById(video.Id)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	view := buildVideoView(stored, 0, false)
	return &view, nil
}

func (s *VideoServiceImpl) Publish(userId, title, filename string, data io.Reader) (*vSrv.VideoView, error) {
	url, err := storage.StoreVideo(uuid.NewString(), filename, data)
	if err != nil {
		logger.L.Error("video upload failed", zap.Error(err))
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	return s.Create(userId, title, url, "")
}

func (s *VideoServiceImpl) ListUserVideos(targetId, viewerId string) ([]vSrv.VideoView, error) {
	if _, err := dao.GetUserById(targetId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NewError(pkg.ErrNotFound, err)
		}
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	rows, err := dao.GetVideosByAuthor(targetId)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	return s.buildVideoViews(rows, viewerId)
}

func (s *VideoServiceImpl) ListUserLikedVideos(targetId, viewerId string) ([]vSrv.VideoView, error) {
	if _, err := dao.GetUserById(targetId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NewError(pkg.ErrNotFound, err)
		}
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	rows, err := dao.GetVideosLikedBy(targetId)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	return s.buildVideoViews(rows, viewerId)
}

// buildVideoViews annotates a window of rows with aggregate like
// counts and the viewer-relative liked flag, two grouped queries for
// the whole window.
func (s *VideoServiceImpl) buildVideoViews(rows []dao.Video, viewerId string) ([]vSrv.VideoView, error) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Id)
	}

	counts, err := dao.CountLikesByVideoIds(ids)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	likedSet, err := dao.GetLikedVideoIdSet(viewerId, ids)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	views := make([]vSrv.VideoView, 0, len(rows))
	for _, row := range rows {
		views = append(views, buildVideoView(row, counts[row.Id], likedSet[row.Id]))
	}
	return views, nil
}

func buildVideoView(video dao.Video, likeCount int64, isLiked bool) vSrv.VideoView {
	return vSrv.VideoView{
		Id:          video.Id,
		Title:       video.Title,
		Description: video.Description,
		Url:         video.Url,
		Author: vSrv.Author{
			Id:   video.User.Id,
			Name: video.User.Name,
		},
		LikeCount: likeCount,
		IsLiked:   isLiked,
		CreatedAt: video.CreatedAt,
	}
}
