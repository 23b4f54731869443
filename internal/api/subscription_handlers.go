package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/limbo/journowl/pkg/httputil"
)

type TopUpRequest struct {
	Amount int `json:"amount"`
}

type TierRequest struct {
	Tier string `json:"tier"`
}

type PromptRequest struct {
	Mood string `json:"mood,omitempty"`
}

// @Summary Subscription and prompt balance
// @Tags subscription
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.SubscriptionState
// @Router /api/subscription [get]
func (s *Server) GetSubscription(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting subscription")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	state, err := s.subscriptionService.Get(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "getting subscription", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

// @Summary Buy extra prompts
// @Tags subscription
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body TopUpRequest true "amount"
// @Success 200 {object} entity.SubscriptionState
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/subscription/top-up [post]
func (s *Server) TopUp(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "topping up")
	if !ok {
		return
	}
	var req TopUpRequest
	if !decodeBody(w, r, "topping up", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	state, err := s.subscriptionService.TopUp(ctx, uid, req.Amount)
	if err != nil {
		writeServiceError(w, r, "topping up", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
	GetLoggerFromCtx(r.Context()).Info("prompts topped up", slog.Int("amount", req.Amount))
}

// @Summary Switch subscription tier
// @Tags subscription
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body TierRequest true "free, premium or pro"
// @Success 200 {object} entity.SubscriptionState
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/subscription/tier [put]
func (s *Server) ChangeTier(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "changing tier")
	if !ok {
		return
	}
	var req TierRequest
	if !decodeBody(w, r, "changing tier", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	state, err := s.subscriptionService.ChangeTier(ctx, uid, req.Tier)
	if err != nil {
		writeServiceError(w, r, "changing tier", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
	GetLoggerFromCtx(r.Context()).Info("tier changed", slog.String("tier", req.Tier))
}

// @Summary Spend one prompt on a writing suggestion
// @Tags subscription
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body PromptRequest false "optional mood"
// @Success 200 {object} service.GeneratedPrompt
// @Failure 402 {object} httputil.ErrorResponse
// @Router /api/prompts/generate [post]
func (s *Server) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "generating prompt")
	if !ok {
		return
	}
	var req PromptRequest
	// Body is optional here
	if err := httputil.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		GetLoggerFromCtx(r.Context()).Error("generating prompt error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	prompt, err := s.subscriptionService.GeneratePrompt(ctx, uid, req.Mood)
	if err != nil {
		writeServiceError(w, r, "generating prompt", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, prompt)
	GetLoggerFromCtx(r.Context()).Info("prompt generated", slog.Int("remaining", prompt.PromptsRemaining))
}
