package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grain-market/internal/auth"
	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
	"grain-market/internal/notify"
	"grain-market/internal/repository"
	"grain-market/utils"
)

// AccountService defines the business logic for registration, login and
// the admin accreditation workflow
type AccountService struct {
	users  repository.UserStore
	tokens *auth.TokenManager
	mailer notify.Mailer
}

// NewAccountService creates a new AccountService instance
func NewAccountService(users repository.UserStore, tokens *auth.TokenManager, mailer notify.Mailer) *AccountService {
	return &AccountService{
		users:  users,
		tokens: tokens,
		mailer: mailer,
	}
}

// RegisterParams describes a new buyer registration
type RegisterParams struct {
	Email       string
	Password    string
	FullName    string
	CompanyName string
	EDRPOU      string
	Phone       string
}

// Register creates a buyer account with pending accreditation
func (s *AccountService) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	_, err := s.users.FindUserByEmail(ctx, params.Email)
	if err == nil {
		return model.User{}, fmt.Errorf("service: %w", markerrors.ErrEmailTaken)
	}
	if !errors.Is(err, markerrors.ErrUserNotFound) {
		return model.User{}, fmt.Errorf("service: failed to check email %s: %w", params.Email, err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:                  utils.GenerateID(),
		Email:               params.Email,
		PasswordHash:        hash,
		FullName:            params.FullName,
		CompanyName:         params.CompanyName,
		EDRPOU:              params.EDRPOU,
		Phone:               params.Phone,
		Role:                model.RoleBuyer,
		AccreditationStatus: model.AccreditationPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.users.InsertUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("service: failed to register user %s: %w", params.Email, err)
	}
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password both return ErrInvalidCredentials so callers
// cannot probe for registered addresses.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, markerrors.ErrUserNotFound) {
			return "", model.User{}, fmt.Errorf("service: %w", markerrors.ErrInvalidCredentials)
		}
		return "", model.User{}, fmt.Errorf("service: failed to load user %s: %w", email, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", model.User{}, fmt.Errorf("service: %w", markerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", model.User{}, fmt.Errorf("service: failed to issue token for %s: %w", email, err)
	}
	return token, user, nil
}

// Profile returns the stored user record for an authenticated principal
func (s *AccountService) Profile(ctx context.Context, userID string) (model.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to load profile %s: %w", userID, err)
	}
	return user, nil
}

// PendingAccreditations returns the admin review queue
func (s *AccountService) PendingAccreditations(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindUsersByAccreditation(ctx, model.AccreditationPending)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pending accreditations: %w", err)
	}
	return users, nil
}

// UpdateAccreditation applies an admin decision and notifies the buyer.
// The decision must be approved or rejected; notification failures are
// logged and do not undo the decision.
func (s *AccountService) UpdateAccreditation(ctx context.Context, userID string, decision model.AccreditationStatus) (model.User, error) {
	if decision != model.AccreditationApproved && decision != model.AccreditationRejected {
		return model.User{}, fmt.Errorf("service: %q: %w", decision, markerrors.ErrInvalidDecision)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to update accreditation: %w", err)
	}

	if err := s.users.UpdateAccreditation(ctx, userID, decision); err != nil {
		return model.User{}, fmt.Errorf("service: failed to update accreditation for %s: %w", userID, err)
	}
	user.AccreditationStatus = decision

	var subject, body string
	if decision == model.AccreditationApproved {
		subject, body = notify.AccreditationApprovedMessage(user.FullName)
	} else {
		subject, body = notify.AccreditationRejectedMessage(user.FullName)
	}
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		utils.Warn("failed to send accreditation notification", map[string]any{
			"user_id":  userID,
			"decision": decision,
			"error":    err.Error(),
		})
	}

	return user, nil
}
