package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinay-goud/KLIP/middleware/jwt"
	"github.com/vinay-goud/KLIP/pkg"
	vSrv "github.com/vinay-goud/KLIP/service/video"
)

type CreateVideoReq struct {
	Title       string `json:"title" binding:"required"`
	Url         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
}

type FeedResp struct {
	pkg.Response
	Items      []vSrv.VideoView `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type VideosResp struct {
	pkg.Response
	Videos []vSrv.VideoView `json:"videos"`
}

type VideoResp struct {
	pkg.Response
	Video vSrv.VideoView `json:"video"`
}

type LikeResp struct {
	pkg.Response
	IsLiked bool `json:"is_liked"`
}

type VideoController struct {
	videoSrv vSrv.VideoService
}

func NewVideoController(videoSrv vSrv.VideoService) *VideoController {
	return &VideoController{
		videoSrv: videoSrv,
	}
}

func (ctl *VideoController) Feed(ctx *gin.Context) {
	// viewer id is empty for anonymous requests
	viewerId := jwt.ViewerId(ctx)

	limit := vSrv.DefaultFeedLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			ctx.Error(pkg.NewError(pkg.ErrInvalidInput, fmt.Errorf("limit %q: %w", limitStr, err)))
			ctx.Abort()
			return
		}
		limit = parsed
	}

	page, err := ctl.videoSrv.GetFeedPage(limit, ctx.Query("cursor"), viewerId)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, FeedResp{
		Response:   pkg.NewOkResp(),
		Items:      page.Items,
		NextCursor: page.NextCursor,
	})
}

func (ctl *VideoController) ToggleLike(ctx *gin.Context) {
	viewerId := ctx.GetString(jwt.ContextUserKey)
	videoId := ctx.Param("video_id")

	isLiked, err := ctl.videoSrv.ToggleLike(viewerId, videoId)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, LikeResp{
		Response: pkg.NewOkResp(),
		IsLiked:  isLiked,
	})
}

func (ctl *VideoController) Create(ctx *gin.Context) {
	userId := ctx.GetString(jwt.ContextUserKey)

	req := CreateVideoReq{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(pkg.NewError(pkg.ErrInvalidInput, err))
		ctx.Abort()
		return
	}

	view, err := ctl.videoSrv.Create(userId, req.Title, req.Url, req.Description)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, VideoResp{
		Response: pkg.NewOkResp(),
		Video:    *view,
	})
}

func (ctl *VideoController) Upload(ctx *gin.Context) {
	userId := ctx.GetString(jwt.ContextUserKey)

	title := ctx.PostForm("title")
	if title == "" {
		ctx.Error(pkg.NewError(pkg.ErrInvalidInput, fmt.Errorf("missing title")))
		ctx.Abort()
		return
	}

	videoFH, err := ctx.FormFile("video")
	if err != nil {
		ctx.Error(pkg.NewError(pkg.ErrInvalidInput, err))
		ctx.Abort()
		return
	}

	videoFile, err := videoFH.Open()
	if err != nil {
		ctx.Error(pkg.NewError(pkg.ErrInvalidInput, err))
		ctx.Abort()
		return
	}
	defer videoFile.Close()

	view, err := ctl.videoSrv.Publish(userId, title, videoFH.Filename, videoFile)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, VideoResp{
		Response: pkg.NewOkResp(),
		Video:    *view,
	})
}

func (ctl *VideoController) ListUserVideos(ctx *gin.Context) {
	targetId := ctx.Param("user_id")
	viewerId := jwt.ViewerId(ctx)

	videos, err := ctl.videoSrv.ListUserVideos(targetId, viewerId)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, VideosResp{
		Response: pkg.NewOkResp(),
		Videos:   videos,
	})
}

func (ctl *VideoController) ListUserLikedVideos(ctx *gin.Context) {
	targetId := ctx.Param("user_id")
	viewerId := jwt.ViewerId(ctx)

	videos, err := ctl.videoSrv.ListUserLikedVideos(targetId, viewerId)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, VideosResp{
		Response: pkg.NewOkResp(),
		Videos:   videos,
	})
}
