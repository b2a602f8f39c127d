package middleware

import (
	"context"
	"net/http"
	"strings"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator checks HTTP Basic credentials of an API account.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*model.PUser, error)
}

func StrictAuth(j *jwt.JWT, logger *log.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ctx.Request.Header.Get("Authorization")
		if tokenString == "" {
			logger.WithContext(ctx).Warn("No token", zap.Any("data", map[string]interface{}{
				"url":    ctx.Request.URL,
				"params": ctx.Params,
			}))
			v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
			ctx.Abort()
			return
		}
		if !bearerToken(ctx, j, logger, tokenString) {
			v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// ClientAuth accepts either a bearer token or Basic credentials. Acquisition
// clients on instrument PCs use Basic.
func ClientAuth(j *jwt.JWT, accounts Authenticator, logger *log.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get("Authorization")
		ok := false
		if username, password, isBasic := ctx.Request.BasicAuth(); isBasic {
			ok = basicAccount(ctx, accounts, logger, username, password)
		} else if header != "" {
			ok = bearerToken(ctx, j, logger, header)
		}
		if !ok {
			ctx.Header("WWW-Authenticate", `Basic realm="pitschi"`)
			v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context, j *jwt.JWT, logger *log.Logger, header string) bool {
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return false
	}
	claims, err := j.ParseToken(header)
	if err != nil {
		logger.WithContext(ctx).Warn("token error", zap.String("url", ctx.Request.URL.String()), zap.Error(err))
		return false
	}
	ctx.Set("claims", claims)
	recoveryLoggerFunc(ctx, logger)
	return true
}

func basicAccount(ctx *gin.Context, accounts Authenticator, logger *log.Logger, username, password string) bool {
	user, err := accounts.Authenticate(ctx, username, password)
	if err != nil {
		logger.WithContext(ctx).Warn("basic auth rejected", zap.String("username", username), zap.Error(err))
		return false
	}
	ctx.Set("claims", &jwt.MyCustomClaims{UserId: user.UserId, Username: user.Username})
	recoveryLoggerFunc(ctx, logger)
	return true
}

func recoveryLoggerFunc(ctx *gin.Context, logger *log.Logger) {
	if claims, ok := ctx.MustGet("claims").(*jwt.MyCustomClaims); ok {
		logger.WithValue(ctx, zap.String("UserId", claims.UserId))
	}
}
