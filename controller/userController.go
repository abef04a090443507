package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinay-goud/KLIP/middleware/jwt"
	"github.com/vinay-goud/KLIP/pkg"
	uSrv "github.com/vinay-goud/KLIP/service/user"
)

type SignupReq struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResp struct {
	pkg.Response
	User uSrv.UserInfo `json:"user"`
}

type AuthResp struct {
	pkg.Response
	User  uSrv.UserInfo `json:"user"`
	Token string        `json:"token"`
}

type UserController struct {
	userSrv uSrv.UserService
}

func NewUserController(userSrv uSrv.UserService) *UserController {
	return &UserController{
		userSrv: userSrv,
	}
}

func (ctl *UserController) Signup(ctx *gin.Context) {
	req := SignupReq{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(pkg.NewError(pkg.ErrInvalidInput, err))
		ctx.Abort()
		return
	}

	info, err := ctl.userSrv.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, UserResp{
		Response: pkg.NewOkResp(),
		User:     *info,
	})
}

func (ctl *UserController) Login(ctx *gin.Context) {
	req := LoginReq{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(pkg.NewError(pkg.ErrInvalidInput, err))
		ctx.Abort()
		return
	}

	auth, err := ctl.userSrv.Login(req.Email, req.Password)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, AuthResp{
		Response: pkg.NewOkResp(),
		User:     auth.User,
		Token:    auth.Token,
	})
}

func (ctl *UserController) Me(ctx *gin.Context) {
	userId := ctx.GetString(jwt.ContextUserKey)

	info, err := ctl.userSrv.GetUserInfo(userId)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, UserResp{
		Response: pkg.NewOkResp(),
		User:     *info,
	})
}

func (ctl *UserController) GetProfile(ctx *gin.Context) {
	targetId := ctx.Param("user_id")

	info, err := ctl.userSrv.GetUserInfo(targetId)
	if err != nil {
		ctx.Error(err)
		ctx.Abort()
		return
	}

	// email stays private on other users' profiles
	info.Email = ""
	ctx.JSON(http.StatusOK, UserResp{
		Response: pkg.NewOkResp(),
		User:     *info,
	})
}
