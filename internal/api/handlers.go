package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/internal/service"
	"github.com/limbo/journowl/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Timezone string `json:"timezone,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type TimezoneRequest struct {
	Timezone string `json:"timezone"`
}

// requireUID answers 401 when the request went around AuthMiddleware.
func requireUID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

func pathID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := httputil.DecodeJSON(r.Body, dst); err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// @Summary Liveness check
// @Tags system
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// @Summary Register new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "credentials"
// @Success 201 {object} map[string]string
// @Failure 400,409 {object} httputil.ErrorResponse
// @Router /api/auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
		Timezone: req.Timezone,
	})
	if err != nil {
		writeServiceError(w, r, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} map[string]string
// @Failure 400,401 {object} httputil.ErrorResponse
// @Router /api/auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// @Summary Delete own account
// @Tags account
// @Security BearerAuth
// @Accept json
// @Param body body DeleteAccountRequest true "current password"
// @Success 204
// @Failure 400,401 {object} httputil.ErrorResponse
// @Router /api/account [delete]
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, r, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	GetLoggerFromCtx(r.Context()).Info("account deleted")
}

// @Summary Change the timezone streak days are cut in
// @Tags account
// @Security BearerAuth
// @Accept json
// @Param body body TimezoneRequest true "IANA zone"
// @Success 204
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/account/timezone [put]
func (s *Server) SetTimezone(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "setting timezone")
	if !ok {
		return
	}
	var req TimezoneRequest
	if !decodeBody(w, r, "setting timezone", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.SetTimezone(ctx, uid, req.Timezone); err != nil {
		writeServiceError(w, r, "setting timezone", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	GetLoggerFromCtx(r.Context()).Info("timezone changed", slog.String("timezone", req.Timezone))
}
