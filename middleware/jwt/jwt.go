package jwt

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vinay-goud/KLIP/pkg"
)

// ContextUserKey is where the middleware stores the authenticated
// viewer's id on the gin context.
const ContextUserKey = "user_id"

var (
	secret   []byte
	tokenTTL = time.Hour * 24
)

func Init(jwtSecret string, ttl time.Duration) {
	secret = []byte(jwtSecret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

type KlipClaims struct {
	jwt.RegisteredClaims
	UserId string `json:"user_id"`
}

func getToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ctx.Query("token")
}

func abortUnauthorized(ctx *gin.Context, err error) {
	appErr := pkg.NewError(pkg.ErrUnauthorized, err)
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, pkg.NewErrResp(appErr))
}

// AuthorizationMiddleware rejects requests without a valid token and
// stores the viewer id for downstream handlers.
func AuthorizationMiddleware(ctx *gin.Context) {
	token := getToken(ctx)
	if token == "" {
		abortUnauthorized(ctx, nil)
		return
	}

	claims, err := ParsingToken(token)
	if err != nil {
		abortUnauthorized(ctx, err)
		return
	}

	ctx.Set(ContextUserKey, claims.UserId)
	ctx.Next()
}

// ViewerId resolves the requesting user for public routes: a present,
// valid token yields the viewer id, anything else means anonymous.
func ViewerId(ctx *gin.Context) string {
	if id := ctx.GetString(ContextUserKey); id != "" {
		return id
	}
	token := getToken(ctx)
	if token == "" {
		return ""
	}
	claims, err := ParsingToken(token)
	if err != nil {
		return ""
	}
	return claims.UserId
}

func NewToken(userId string) (string, error) {
	claims := KlipClaims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "klip",
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Add(tokenTTL)},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParsingToken(token string) (KlipClaims, error) {
	claims := &KlipClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return KlipClaims{}, fmt.Errorf("invalid token: %w", err)
	}
	return *claims, nil
}
