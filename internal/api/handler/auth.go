package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vladia/corretora-go/internal/api/apierr"
	"github.com/vladia/corretora-go/internal/api/middleware"
	"github.com/vladia/corretora-go/internal/api/request"
	"github.com/vladia/corretora-go/internal/api/response"
	"github.com/vladia/corretora-go/internal/services/account"
)

// AuthHandler handles registration, login and profile endpoints
type AuthHandler struct {
	accounts *account.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *account.Service) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewValidationError("name, email and password are required"))
		return
	}

	auth, err := h.accounts.Register(r.Context(), account.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromAuth(auth))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Email == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewValidationError("email and password are required"))
		return
	}

	auth, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromAuth(auth))
}

// GetProfile handles GET /api/auth/profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	acct := middleware.MustGetAccount(r.Context())
	response.JSON(w, http.StatusOK, response.AccountFromModel(acct))
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	acct := middleware.MustGetAccount(r.Context())

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	if req.Name == "" || req.Email == "" {
		apierr.WriteError(w, apierr.NewValidationError("name and email are required"))
		return
	}

	auth, err := h.accounts.UpdateProfile(r.Context(), acct.ID, account.UpdateProfileParams{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromAuth(auth))
}

// Verify handles GET /api/auth/verify
// Reaching this handler means the token already passed the auth middleware
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	acct := middleware.MustGetAccount(r.Context())
	response.JSON(w, http.StatusOK, response.VerifyResponse{
		Valid:   true,
		Account: response.AccountFromModel(acct),
	})
}
