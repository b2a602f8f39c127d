package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AccountHandler struct {
	*Handler
	accountService service.AccountService
}

func NewAccountHandler(handler *Handler, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		Handler:        handler,
		accountService: accountService,
	}
}

// Login godoc
// @Summary Log in with an API account
// @Schemes
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body v1.LoginRequest true "params"
// @Success 200 {object} v1.LoginResponse
// @Router /api/v1/login [post]
func (h *AccountHandler) Login(ctx *gin.Context) {
	var req v1.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	token, err := h.accountService.Login(ctx, &req)
	if err != nil {
		h.logger.WithContext(ctx).Info("login rejected", zap.String("username", req.Username))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, v1.LoginResponseData{
		AccessToken: token,
	})
}

// CreateAccount godoc
// @Summary Create an API account
// @Description Accounts are used by acquisition clients (Basic auth) and operators (Bearer token).
// @Tags Accounts
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateAccountRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/accounts [post]
func (h *AccountHandler) CreateAccount(ctx *gin.Context) {
	req := new(v1.CreateAccountRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.accountService.CreateAccount(ctx, req); err != nil {
		h.logger.WithContext(ctx).Error("accountService.CreateAccount error", zap.Error(err))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// GetProfile godoc
// @Summary Current account
// @Tags Accounts
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.GetProfileResponse
// @Router /api/v1/account [get]
func (h *AccountHandler) GetProfile(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}
	data, err := h.accountService.GetProfile(ctx, userId)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdatePassword godoc
// @Summary Change the password of the current account
// @Tags Accounts
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.UpdatePasswordRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/account/password [put]
func (h *AccountHandler) UpdatePassword(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}
	req := new(v1.UpdatePasswordRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.accountService.UpdatePassword(ctx, userId, req); err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}
