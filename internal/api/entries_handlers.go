package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/journowl/internal/service"
	"github.com/limbo/journowl/pkg/entity"
	"github.com/limbo/journowl/pkg/httputil"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

type AttachmentRequest struct {
	Kind string `json:"kind"`
	Ref  string `json:"ref"`
}

type EntryRequest struct {
	Content     string              `json:"content"`
	Mood        string              `json:"mood"`
	Tags        []string            `json:"tags,omitempty"`
	Attachments []AttachmentRequest `json:"attachments,omitempty"`
}

type GetEntriesResponse struct {
	UserID  uuid.UUID              `json:"uid"`
	Page    int                    `json:"page"`
	Limit   int                    `json:"limit"`
	Entries []*entity.JournalEntry `json:"entries"`
}

func (er *EntryRequest) toService() *service.EntryRequest {
	attachments := make([]service.AttachmentRequest, 0, len(er.Attachments))
	for _, a := range er.Attachments {
		attachments = append(attachments, service.AttachmentRequest{Kind: a.Kind, Ref: a.Ref})
	}
	return &service.EntryRequest{
		Content:     er.Content,
		Mood:        er.Mood,
		Tags:        er.Tags,
		Attachments: attachments,
	}
}

// queryInt reads a positive integer query value, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// @Summary Create journal entry
// @Tags entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body EntryRequest true "entry"
// @Success 201 {object} entity.JournalEntry
// @Failure 400,404 {object} httputil.ErrorResponse
// @Router /api/entries [post]
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "creating entry")
	if !ok {
		return
	}
	var req EntryRequest
	if !decodeBody(w, r, "creating entry", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.entriesService.Create(ctx, uid, req.toService())
	if err != nil {
		writeServiceError(w, r, "creating entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	GetLoggerFromCtx(r.Context()).Info("entry created")
}

// @Summary List own entries, newest first
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param page query int false "page number, from 1"
// @Param limit query int false "page size, up to 50"
// @Success 200 {object} GetEntriesResponse
// @Router /api/entries [get]
func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting entries")
	if !ok {
		return
	}
	page := queryInt(r, "page", 1)
	limit := min(queryInt(r, "limit", defaultPageLimit), maxPageLimit)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entries, err := s.entriesService.List(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, r, "getting entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetEntriesResponse{
		UserID:  uid,
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
}

// @Summary Get entry
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "entry id"
// @Success 200 {object} entity.JournalEntry
// @Failure 400,403,404 {object} httputil.ErrorResponse
// @Router /api/entries/{id} [get]
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "getting entry")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "getting entry")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.entriesService.Get(ctx, uid, id)
	if err != nil {
		writeServiceError(w, r, "getting entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

// @Summary Replace entry content
// @Tags entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "entry id"
// @Param body body EntryRequest true "entry"
// @Success 200 {object} entity.JournalEntry
// @Failure 400,403,404 {object} httputil.ErrorResponse
// @Router /api/entries/{id} [put]
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "updating entry")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "updating entry")
	if !ok {
		return
	}
	var req EntryRequest
	if !decodeBody(w, r, "updating entry", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.entriesService.Update(ctx, uid, id, req.toService())
	if err != nil {
		writeServiceError(w, r, "updating entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	GetLoggerFromCtx(r.Context()).Info("entry updated")
}

// @Summary Delete entry
// @Tags entries
// @Security BearerAuth
// @Param id path string true "entry id"
// @Success 204
// @Failure 400,403,404 {object} httputil.ErrorResponse
// @Router /api/entries/{id} [delete]
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r, "deleting entry")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "deleting entry")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.entriesService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, r, "deleting entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	GetLoggerFromCtx(r.Context()).Info("entry deleted")
}
