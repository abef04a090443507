package main

import (
	"github.com/gin-gonic/gin"

	"github.com/vinay-goud/KLIP/controller"
	"github.com/vinay-goud/KLIP/middleware/jwt"
	uSrvImp "github.com/vinay-goud/KLIP/service/user/impl"
	vSrvImp "github.com/vinay-goud/KLIP/service/video/impl"
)

func setRoutes(eng *gin.Engine) {
	userSrv := uSrvImp.NewUserService()
	likeSrv := vSrvImp.NewLikeService()
	videoSrv := vSrvImp.NewVideoService(likeSrv)

	videoCtl := controller.NewVideoController(videoSrv)
	userCtl := controller.NewUserController(userSrv)

	klipGrp := eng.Group("/klip")
	klipGrp.Use(controller.ErrHandler)

	// no need AuthorizationMiddleware; viewer taken from the token
	// when one is present
	klipGrp.GET("/feed", videoCtl.Feed)

	videoGrp := klipGrp.Group("/videos")
	videoGrp.Use(jwt.AuthorizationMiddleware)
	videoGrp.POST("", videoCtl.Create)
	videoGrp.POST("/upload", videoCtl.Upload)
	videoGrp.POST("/:video_id/like", videoCtl.ToggleLike)

	userGrp := klipGrp.Group("/users")
	userGrp.POST("/signup", userCtl.Signup)
	userGrp.POST("/login", userCtl.Login)
	userGrp.GET("/:user_id", userCtl.GetProfile)
	userGrp.GET("/:user_id/videos", videoCtl.ListUserVideos)
	userGrp.GET("/:user_id/likes", videoCtl.ListUserLikedVideos)
	userGrp.GET("/me", jwt.AuthorizationMiddleware, userCtl.Me)
}
