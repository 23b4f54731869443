package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/journowl/pkg/entity"
	"github.com/limbo/journowl/pkg/httputil"
)

// Leaderboard bodies are the bare ranked array. The size of the ranking and
// the caller's own place travel in these headers.
const (
	headerTotalUsers = "X-Total-Users"
	headerUserRank   = "X-User-Rank"
	headerUserScore  = "X-User-Score"
)

func writeLeaderboard(w http.ResponseWriter, snapshot *entity.Leaderboard) {
	w.Header().Set(headerTotalUsers, strconv.Itoa(snapshot.TotalUsers))
	if own := snapshot.UserPosition; own != nil {
		w.Header().Set(headerUserRank, strconv.Itoa(own.Rank))
		w.Header().Set(headerUserScore, strconv.Itoa(own.Score))
	}
	entries := snapshot.Entries
	if entries == nil {
		entries = []*entity.LeaderboardEntry{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

// @Summary Streak statistics of the caller
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.Stats
// @Router /api/stats [get]
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.statsService.Stats(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "getting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

// @Summary Leaderboard snapshot
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Param board path string true "weekly, all-time, streaks or words"
// @Param limit query int false "top entries, up to 100"
// @Success 200 {array} entity.LeaderboardEntry
// @Header 200 {integer} X-Total-Users "users ranked on the board"
// @Header 200 {integer} X-User-Rank "caller's rank, absent when unranked"
// @Header 200 {integer} X-User-Score "caller's score, absent when unranked"
// @Failure 404 {object} httputil.ErrorResponse
// @Router /api/leaderboard/{board} [get]
func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting leaderboard")
	if !ok {
		return
	}
	board := chi.URLParam(r, "board")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snapshot, err := s.leaderboardService.Board(ctx, board, uid, queryInt(r, "limit", 0))
	if err != nil {
		writeServiceError(w, r, "getting leaderboard", err)
		return
	}
	writeLeaderboard(w, snapshot)
	GetLoggerFromCtx(r.Context()).Info("leaderboard served", slog.String("board", board), slog.Int("ranked", snapshot.TotalUsers))
}

// @Summary Decide which reminder the caller should see
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.Reminder
// @Router /api/notifications/check-reminders [get]
func (s *Server) CheckReminders(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "checking reminders")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminder, err := s.statsService.CheckReminder(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "checking reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminder)
}

// @Summary Achievement catalog with unlock times
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.AchievementStatus
// @Router /api/achievements [get]
func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting achievements")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	statuses, err := s.achievementsService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "getting achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, statuses)
}

// @Summary Level and totals
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.LevelStats
// @Router /api/achievements/stats [get]
func (s *Server) GetLevelStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting level stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.achievementsService.LevelStats(ctx, uid)
	if err != nil {
		writeServiceError(w, r, "getting level stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
