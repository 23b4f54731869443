package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/journowl/internal/cache"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/pkg/entity"
	"github.com/limbo/journowl/pkg/logging"
)

type EntriesService struct {
	repo            repository.EntriesRepositoryI
	tournamentsRepo repository.TournamentsRepositoryI
	cache           cache.Store
}

func NewEntriesService(entriesRepo repository.EntriesRepositoryI, tournamentsRepo repository.TournamentsRepositoryI, store cache.Store) *EntriesService {
	if entriesRepo == nil || tournamentsRepo == nil {
		log.Fatal("on entries service provided nil repos")
	}
	InitValidator()
	return &EntriesService{
		repo:            entriesRepo,
		tournamentsRepo: tournamentsRepo,
		cache:           orNop(store),
	}
}

// WordCount counts whitespace-delimited tokens.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// NormalizeTags trims tags, drops empty ones and keeps the first of duplicates.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}

func buildEntry(req *EntryRequest) *entity.JournalEntry {
	attachments := make([]entity.Attachment, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, entity.Attachment{Kind: entity.AttachmentKind(a.Kind), Ref: a.Ref})
	}
	return &entity.JournalEntry{
		Content:     req.Content,
		Mood:        entity.Mood(req.Mood),
		WordCount:   WordCount(req.Content),
		Tags:        NormalizeTags(req.Tags),
		Attachments: attachments,
	}
}

func (es *EntriesService) Create(ctx context.Context, uid uuid.UUID, req *EntryRequest) (*entity.JournalEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := buildEntry(req)
	entry.AuthorID = uid
	id, err := es.repo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAuthorMissing) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	es.invalidate(ctx, uid)
	created, err := es.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return created, nil
}

func (es *EntriesService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.JournalEntry, error) {
	entry, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.AuthorID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return entry, nil
}

func (es *EntriesService) List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.JournalEntry, error) {
	entries, err := es.repo.GetByAuthor(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entries, nil
}

func (es *EntriesService) Update(ctx context.Context, uid, id uuid.UUID, req *EntryRequest) (*entity.JournalEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	current, err := es.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	entry := buildEntry(req)
	entry.ID = current.ID
	entry.AuthorID = current.AuthorID
	if err := es.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	es.invalidate(ctx, uid)
	updated, err := es.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return updated, nil
}

func (es *EntriesService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := es.Get(ctx, uid, id); err != nil {
		return err
	}
	if err := es.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("entries repository error: " + err.Error())
	}
	es.invalidate(ctx, uid)
	return nil
}

// invalidate drops every cached value an entry of uid feeds into.
func (es *EntriesService) invalidate(ctx context.Context, uid uuid.UUID) {
	joined, err := es.tournamentsRepo.ListJoinedIDs(ctx, uid)
	if err != nil {
		logging.FromContext(ctx).Warn("listing joined tournaments for invalidation failed", slog.String("error", err.Error()))
	}
	cache.Invalidate(ctx, es.cache, EntryMutationKeys(uid, joined)...)
}

// EntryMutationKeys lists the cache keys a new, edited or deleted entry makes stale.
func EntryMutationKeys(uid uuid.UUID, joinedTournaments []uuid.UUID) []string {
	keys := []string{cache.StatsKey(uid), cache.AchievementsKey(uid)}
	for _, board := range Boards {
		keys = append(keys, cache.LeaderboardKey(board))
	}
	for _, id := range joinedTournaments {
		keys = append(keys, cache.TournamentKey(id))
	}
	return keys
}

func orNop(store cache.Store) cache.Store {
	if store == nil {
		return cache.Nop{}
	}
	return store
}
