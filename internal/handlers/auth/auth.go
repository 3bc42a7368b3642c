package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/dto"
	"github.com/GlebRadaev/coinledger/internal/service/authservice"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*authservice.Session, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

var authErrors = []utils.ErrorStatus{
	{Err: authservice.ErrInvalidUsername, Code: http.StatusBadRequest},
	{Err: authservice.ErrInvalidCredentials, Code: http.StatusUnauthorized},
	{Err: authservice.ErrUsernameTaken, Code: http.StatusConflict},
	{Err: domain.ErrAccountNotFound, Code: http.StatusNotFound},
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user with a fresh wallet address and the welcome grant
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithServiceError(w, err, authErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		User:    dto.NewUserDTO(user),
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and open a session; the token is returned in the body and the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid username or password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithServiceError(w, err, authErrors...)
		return
	}
	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.NewUserDTO(session.User),
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Deactivate the session bound to the bearer token
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.Logout(r.Context(), principal.SessionID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Logged out"})
}

// Profile godoc
//
//	@Summary		Current user
//	@Description	Get the profile and wallet of the authenticated user
//	@Tags			User
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.Profile(r.Context(), principal.UserID)
	if err != nil {
		utils.RespondWithServiceError(w, err, authErrors...)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}
