package impl

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vinay-goud/KLIP/dao"
	"github.com/vinay-goud/KLIP/middleware/jwt"
	"github.com/vinay-goud/KLIP/pkg"
	"github.com/vinay-goud/KLIP/pkg/logger"
	uSrv "github.com/vinay-goud/KLIP/service/user"

	"go.uber.org/zap"
)

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

func (s *UserServiceImpl) Signup(name, email, password string) (*uSrv.UserInfo, error) {
	_, err := dao.GetUserByEmail(email)
	if err == nil {
		return nil, pkg.NewError(pkg.ErrEmailTaken, nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	user := dao.User{Name: name, Email: email, Password: string(hashedPwd)}
	if err := dao.PersistUser(&user); err != nil {
		// the unique email index catches a concurrent signup race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.NewError(pkg.ErrEmailTaken, err)
		}
		logger.L.Error("failed to persist user", zap.Error(err))
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	info := buildUserInfo(user)
	return &info, nil
}

func (s *UserServiceImpl) Login(email, password string) (*uSrv.AuthInfo, error) {
	user, err := dao.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NewError(pkg.ErrBadCredentials, nil)
		}
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, pkg.NewError(pkg.ErrBadCredentials, nil)
	}

	token, err := jwt.NewToken(user.Id)
	if err != nil {
		logger.L.Error("failed to sign token", zap.Error(err))
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}

	return &uSrv.AuthInfo{
		User:  buildUserInfo(user),
		Token: token,
	}, nil
}

func (s *UserServiceImpl) GetUserInfo(userId string) (*uSrv.UserInfo, error) {
	user, err := dao.GetUserById(userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NewError(pkg.ErrNotFound, err)
		}
		return nil, pkg.NewError(pkg.ErrInternal, err)
	}
	info := buildUserInfo(user)
	return &info, nil
}

func buildUserInfo(user dao.User) uSrv.UserInfo {
	return uSrv.UserInfo{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}
}
