// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"expense-ledger/internal/api/types"
	"expense-ledger/internal/service"
	"expense-ledger/internal/util"
)

// UserHandler handles HTTP requests related to user operations.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// ListUsers handles the list-all-users request.
// GET /users/
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "List of all users",
		"users":   users,
	})
}

// GetUserByID handles the lookup of a single user by id.
// GET /users/{userID}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "User found",
		"user":    user,
	})
}

// GetUsersByName handles the case-insensitive name lookup.
// GET /users/name/{userName}
func (h *UserHandler) GetUsersByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "userName")

	users, err := h.service.GetUsersByName(r.Context(), name)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "User found",
		"count":   len(users),
		"users":   users,
	})
}

// GetUsersByGroup handles the case-insensitive group lookup.
// GET /users/group/{groupName}
func (h *UserHandler) GetUsersByGroup(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "groupName")

	users, err := h.service.GetUsersByGroup(r.Context(), group)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "Users found",
		"count":   len(users),
		"users":   users,
	})
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	UserName  string  `json:"user_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	GroupName *string `json:"group_name"`
	Role      *string `json:"role"`
}

// Register handles new user registration.
// POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	user, err := h.service.Register(r.Context(), service.RegisterInput{
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
		GroupName: req.GroupName,
		Role:      req.Role,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, types.Envelope{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles credential verification. No token is issued.
// POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "Login successful",
		"user":    user,
	})
}
