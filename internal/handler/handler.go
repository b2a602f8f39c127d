package handler

import (
	"errors"
	"net/http"
	"strconv"

	v1 "pitschi/api/v1"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	logger *log.Logger
}

func NewHandler(logger *log.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

func GetUserIdFromCtx(ctx *gin.Context) string {
	v, exists := ctx.Get("claims")
	if !exists {
		return ""
	}
	claims, ok := v.(*jwt.MyCustomClaims)
	if !ok {
		return ""
	}
	return claims.UserId
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return 0, false
	}
	return id, true
}

var statusByError = []struct {
	err  error
	code int
}{
	{v1.ErrBadRequest, http.StatusBadRequest},
	{v1.ErrInvalidMode, http.StatusBadRequest},
	{v1.ErrUnknownTask, http.StatusBadRequest},
	{v1.ErrUnauthorized, http.StatusUnauthorized},
	{v1.ErrNotFound, http.StatusNotFound},
	{v1.ErrDatasetNotFound, http.StatusNotFound},
	{v1.ErrBookingNotFound, http.StatusNotFound},
	{v1.ErrProjectNotFound, http.StatusNotFound},
	{v1.ErrSystemNotFound, http.StatusNotFound},
	{v1.ErrDailyTaskNotFound, http.StatusNotFound},
	{v1.ErrCollectionNotFound, http.StatusNotFound},
	{v1.ErrConflict, http.StatusConflict},
	{v1.ErrUsernameAlreadyUse, http.StatusConflict},
	{v1.ErrInvalidTransition, http.StatusConflict},
	{v1.ErrResetNotAllowed, http.StatusConflict},
	{v1.ErrSyncInProgress, http.StatusConflict},
}

// handleServiceError writes err with the HTTP status of its business code.
func handleServiceError(ctx *gin.Context, err error) {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			v1.HandleError(ctx, e.code, e.err, nil)
			return
		}
	}
	v1.HandleError(ctx, http.StatusInternalServerError, v1.ErrInternalServerError, nil)
}
