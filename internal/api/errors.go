package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/pkg/httputil"
)

// errorStatuses maps service sentinels onto HTTP codes. First match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrInvalidTopUp, http.StatusBadRequest},
	{errorvalues.ErrUnknownTier, http.StatusBadRequest},
	{errorvalues.ErrWrongCredentials, http.StatusUnauthorized},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized},
	{errorvalues.ErrNoPromptsLeft, http.StatusPaymentRequired},
	{errorvalues.ErrWrongOwner, http.StatusForbidden},
	{errorvalues.ErrUserNotFound, http.StatusNotFound},
	{errorvalues.ErrEntryNotFound, http.StatusNotFound},
	{errorvalues.ErrUnknownBoard, http.StatusNotFound},
	{errorvalues.ErrTournamentNotFound, http.StatusNotFound},
	{errorvalues.ErrChallengeNotFound, http.StatusNotFound},
	{errorvalues.ErrUserExists, http.StatusConflict},
	{errorvalues.ErrAlreadyJoined, http.StatusConflict},
	{errorvalues.ErrChallengeCompleted, http.StatusConflict},
	{errorvalues.ErrChallengeNotMet, http.StatusConflict},
	{errorvalues.ErrTournamentEnded, http.StatusUnprocessableEntity},
	{errorvalues.ErrChallengeNotActive, http.StatusUnprocessableEntity},
}

func statusFor(err error) (int, error) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			return m.status, m.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError logs err under op and answers with the mapped status.
// Validation errors carry the field errors as details.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := GetLoggerFromCtx(r.Context())
	status, sentinel := statusFor(err)
	if sentinel == nil {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error", nil)
		return
	}
	logger.Error(op+" error: "+sentinel.Error(), slog.Int("status", status))
	var details error
	if errors.Is(sentinel, errorvalues.ErrValidation) {
		details = err
	}
	httputil.WriteErrorResponse(w, status, sentinel.Error(), details)
}
