package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vinay-goud/KLIP/pkg"
	"github.com/vinay-goud/KLIP/pkg/logger"
)

// ErrHandler translates errors attached to the context into the wire
// response. Only the first error is reported.
func ErrHandler(ctx *gin.Context) {
	ctx.Next()

	errorList := ctx.Errors.ByType(gin.ErrorTypeAny)
	if len(errorList) == 0 {
		return
	}
	err := errorList[0].Err

	var appE *pkg.AppError
	if !errors.As(err, &appE) {
		appE = pkg.NewError(pkg.ErrInternal, err)
	}
	if appE.Code == pkg.ErrInternal {
		logger.L.Error("request failed", zap.Error(appE))
	}

	ctx.JSON(appE.HttpStatus, pkg.NewErrResp(appE))
}
