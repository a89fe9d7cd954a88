package handler

import (
	"context"
	"fmt"
	"net/http"

	account "grain-market/internal/accountService"
	model "grain-market/internal/models"
	"grain-market/services/market/helpers"
	"grain-market/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, params account.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
	Profile(ctx context.Context, userID string) (model.User, error)
	PendingAccreditations(ctx context.Context) ([]model.User, error)
	UpdateAccreditation(ctx context.Context, userID string, decision model.AccreditationStatus) (model.User, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /api/auth/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), account.RegisterParams{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		EDRPOU:      req.EDRPOU,
		Phone:       req.Phone,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: failed to register user", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewUserResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        helpers.NewUserResponse(user),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// MeHandler handles GET /api/auth/me
func (h *AccountHandler) MeHandler(c *gin.Context) {
	principal, ok := helpers.CurrentPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing principal"), "could not validate credentials")
		return
	}

	user, err := h.service.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MeHandler: failed to load profile", map[string]any{
			"user_id": principal.ID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "profile retrieved successfully")
}

// PendingAccreditationsHandler handles GET /api/auth/pending-accreditations (admin only)
func (h *AccountHandler) PendingAccreditationsHandler(c *gin.Context) {
	users, err := h.service.PendingAccreditations(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PendingAccreditationsHandler: error retrieving queue", map[string]any{"error": err.Error()})
		return
	}

	responses := make([]helpers.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, helpers.NewUserResponse(user))
	}
	utils.JSONResponse(c, http.StatusOK, responses, "pending accreditations retrieved successfully")
}

// UpdateAccreditationHandler handles POST /api/auth/update-accreditation (admin only)
func (h *AccountHandler) UpdateAccreditationHandler(c *gin.Context) {
	var req helpers.AccreditationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAccreditationHandler", err)
		return
	}

	user, err := h.service.UpdateAccreditation(c.Request.Context(), req.UserID, model.AccreditationStatus(req.Status))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAccreditationHandler: failed to update accreditation", map[string]any{
			"user_id":  req.UserID,
			"decision": req.Status,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), fmt.Sprintf("accreditation %s", req.Status))
	helpers.LogSuccess("UpdateAccreditationHandler", "accreditation updated", map[string]any{
		"user_id":  user.ID,
		"decision": req.Status,
	})
}
