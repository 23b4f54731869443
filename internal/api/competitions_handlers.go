package api

import (
	"context"
	"net/http"

	"github.com/limbo/journowl/pkg/httputil"
)

// @Summary Active challenges with the caller's progress
// @Tags competitions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Challenge
// @Router /api/challenges [get]
func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting challenges")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	challenges, err := s.challengesService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "getting challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenges)
}

// @Summary Mark challenge as completed
// @Tags competitions
// @Security BearerAuth
// @Produce json
// @Param id path string true "challenge id"
// @Success 200 {object} httputil.Ack
// @Failure 404,409,422 {object} httputil.ErrorResponse
// @Router /api/challenges/{id}/complete [post]
func (s *Server) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "completing challenge")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "completing challenge")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.challengesService.Complete(ctx, id, uid); err != nil {
		writeServiceError(w, r, "completing challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.Ack{Success: true, Message: "challenge completed"})
	GetLoggerFromCtx(r.Context()).Info("challenge completed")
}

// @Summary Active and upcoming tournaments
// @Tags competitions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Tournament
// @Router /api/tournaments [get]
func (s *Server) GetTournaments(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting tournaments")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tournaments, err := s.tournamentsService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "getting tournaments", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tournaments)
}

// @Summary Join tournament
// @Tags competitions
// @Security BearerAuth
// @Produce json
// @Param id path string true "tournament id"
// @Success 200 {object} httputil.Ack
// @Failure 404,409,422 {object} httputil.ErrorResponse
// @Router /api/tournaments/{id}/join [post]
func (s *Server) JoinTournament(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "joining tournament")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "joining tournament")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.tournamentsService.Join(ctx, id, uid); err != nil {
		writeServiceError(w, r, "joining tournament", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.Ack{Success: true, Message: "joined tournament"})
	GetLoggerFromCtx(r.Context()).Info("tournament joined")
}

// @Summary Tournament standings
// @Tags competitions
// @Security BearerAuth
// @Produce json
// @Param id path string true "tournament id"
// @Param limit query int false "top entries, up to 100"
// @Success 200 {array} entity.LeaderboardEntry
// @Header 200 {integer} X-Total-Users "participants ranked"
// @Header 200 {integer} X-User-Rank "caller's rank, absent when not joined"
// @Failure 404 {object} httputil.ErrorResponse
// @Router /api/tournaments/{id}/leaderboard [get]
func (s *Server) GetTournamentLeaderboard(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting tournament leaderboard")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "getting tournament leaderboard")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	board, err := s.tournamentsService.Leaderboard(ctx, id, uid, queryInt(r, "limit", 0))
	if err != nil {
		writeServiceError(w, r, "getting tournament leaderboard", err)
		return
	}
	writeLeaderboard(w, board)
}
