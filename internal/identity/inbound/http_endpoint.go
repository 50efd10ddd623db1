package inbound

import (
	"github.com/hamrokart/identity/internal/pkg/router"

	"github.com/hamrokart/identity/internal/identity/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the identity workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new user account.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{ID: resp.ID}, nil
}

// Login authenticates a user and returns an access token with the profile.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		ID:          resp.ID,
		Email:       resp.Email,
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		Phone:       resp.Phone,
		IsAdmin:     resp.IsAdmin,
	}, nil
}

// Token mints a bearer token for the given user id.
func (h *HTTPEndpoint) Token(r *router.Request) (any, error) {
	var req TokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Token(r.Context(), usecase.TokenInput{ID: req.ID})
	if err != nil {
		return nil, err
	}

	return TokenResponse{AccessToken: resp.AccessToken}, nil
}

// PasswordForgot issues a password reset code over SMS.
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{Phone: req.Phone}); err != nil {
		return nil, err
	}

	return PasswordForgotResponse{}, nil
}

// PasswordReset verifies the reset code and stores the new password.
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Phone:    req.Phone,
		OTP:      req.OTP,
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// Profile retrieves the current user's profile details.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{})
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Phone:     resp.Phone,
		IsAdmin:   resp.IsAdmin,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}, nil
}

// ProfileUpdate updates the current user's profile information.
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password,
	}); err != nil {
		return nil, err
	}

	return ProfileUpdateResponse{}, nil
}
