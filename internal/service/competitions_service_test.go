package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/journowl/internal/cache"
	cachemocks "github.com/limbo/journowl/internal/cache/mocks"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	repomocks "github.com/limbo/journowl/internal/repository/mocks"
	"github.com/limbo/journowl/internal/service"
	"github.com/limbo/journowl/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinTournament(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tournaments := repomocks.NewMockTournamentsRepositoryI(ctrl)
	entries := repomocks.NewMockEntriesRepositoryI(ctrl)
	store := cachemocks.NewMockStore(ctrl)
	ts := service.NewTournamentsService(tournaments, entries, store, time.Minute, fixedClock())
	uid := uuid.New()
	tid := uuid.New()
	running := &entity.Tournament{ID: tid, Name: "March Madness", Metric: entity.MetricEntries,
		StartsAt: fixedNow.Add(-48 * time.Hour), EndsAt: fixedNow.Add(48 * time.Hour)}
	ended := &entity.Tournament{ID: tid, Name: "February Frenzy", Metric: entity.MetricEntries,
		StartsAt: fixedNow.Add(-30 * 24 * time.Hour), EndsAt: fixedNow}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "joined",
			MockPrepFunc: func() {
				tournaments.EXPECT().GetByID(gomock.Any(), tid).Return(running, nil)
				tournaments.EXPECT().Join(gomock.Any(), tid, uid).Return(nil)
				store.EXPECT().Delete(gomock.Any(), []string{cache.TournamentKey(tid), cache.AchievementsKey(uid)}).Return(nil)
			},
		},
		{
			Desc:  "already joined",
			Error: errorvalues.ErrAlreadyJoined,
			MockPrepFunc: func() {
				tournaments.EXPECT().GetByID(gomock.Any(), tid).Return(running, nil)
				tournaments.EXPECT().Join(gomock.Any(), tid, uid).Return(errorvalues.ErrAlreadyJoined)
			},
		},
		{
			Desc:  "ended at this very moment",
			Error: errorvalues.ErrTournamentEnded,
			MockPrepFunc: func() {
				tournaments.EXPECT().GetByID(gomock.Any(), tid).Return(ended, nil)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrTournamentNotFound,
			MockPrepFunc: func() {
				tournaments.EXPECT().GetByID(gomock.Any(), tid).Return(nil, errorvalues.ErrTournamentNotFound)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		err := ts.Join(context.Background(), tid, uid)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
		} else {
			assert.NoError(t, err, tc.Desc)
		}
	}
}

func TestTournamentLeaderboard(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tournaments := repomocks.NewMockTournamentsRepositoryI(ctrl)
	entries := repomocks.NewMockEntriesRepositoryI(ctrl)
	ts := service.NewTournamentsService(tournaments, entries, nil, time.Minute, fixedClock())
	tid := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	ctx := context.Background()

	t.Run("upcoming tournament has an empty board", func(t *testing.T) {
		tournaments.EXPECT().GetByID(gomock.Any(), tid).Return(&entity.Tournament{ID: tid, Name: "Spring Cup", Metric: entity.MetricWords,
			StartsAt: fixedNow.Add(time.Hour), EndsAt: fixedNow.Add(7 * 24 * time.Hour)}, nil)
		lb, err := ts.Leaderboard(ctx, tid, alice, 10)
		require.NoError(t, err)
		assert.Equal(t, "Spring Cup", lb.Board)
		assert.Empty(t, lb.Entries)
		assert.Zero(t, lb.TotalUsers)
	})
	t.Run("running tournament counts up to now", func(t *testing.T) {
		start := fixedNow.Add(-72 * time.Hour)
		tournaments.EXPECT().GetByID(gomock.Any(), tid).Return(&entity.Tournament{ID: tid, Name: "Word Sprint", Metric: entity.MetricWords,
			StartsAt: start, EndsAt: fixedNow.Add(72 * time.Hour)}, nil)
		entries.EXPECT().ListTournamentActivity(gomock.Any(), tid, start, fixedNow).Return(append(
			activityAt(alice, "alice", "UTC", 300, fixedNow.Add(-time.Hour)),
			activityAt(bob, "bob", "UTC", 120, fixedNow.Add(-2*time.Hour), fixedNow.Add(-3*time.Hour))...,
		), nil)
		lb, err := ts.Leaderboard(ctx, tid, bob, 10)
		require.NoError(t, err)
		require.Len(t, lb.Entries, 2)
		assert.Equal(t, alice, lb.Entries[0].UserID)
		assert.Equal(t, 300, lb.Entries[0].Score)
		require.NotNil(t, lb.UserPosition)
		assert.Equal(t, 240, lb.UserPosition.Score)
		assert.Equal(t, 2, lb.UserPosition.Rank)
	})
}

func TestCompleteChallenge(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	challenges := repomocks.NewMockChallengesRepositoryI(ctrl)
	entries := repomocks.NewMockEntriesRepositoryI(ctrl)
	store := cachemocks.NewMockStore(ctrl)
	cs := service.NewChallengesService(challenges, entries, store, fixedClock())
	uid := uuid.New()
	cid := uuid.New()
	completedAt := fixedNow.Add(-time.Hour)
	challenge := func() *entity.Challenge {
		return &entity.Challenge{ID: cid, Title: "Two a day", Metric: entity.MetricEntries, Target: 2,
			StartsAt: fixedNow.Add(-24 * time.Hour), EndsAt: fixedNow.Add(24 * time.Hour)}
	}
	twoEntries := activityAt(uid, "owl", "UTC", 10, fixedNow.Add(-time.Hour), fixedNow.Add(-2*time.Hour))
	testCases := []struct {
		Desc         string
		Error        error
		AnyError     bool
		MockPrepFunc func()
	}{
		{
			Desc: "completed",
			MockPrepFunc: func() {
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(challenge(), nil)
				entries.EXPECT().ListUserActivity(gomock.Any(), uid).Return(twoEntries, nil)
				challenges.EXPECT().Complete(gomock.Any(), cid, uid).Return(nil)
				store.EXPECT().Delete(gomock.Any(), []string{cache.AchievementsKey(uid)}).Return(nil)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrChallengeNotFound,
			MockPrepFunc: func() {
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(nil, errorvalues.ErrChallengeNotFound)
			},
		},
		{
			Desc:  "completed before",
			Error: errorvalues.ErrChallengeCompleted,
			MockPrepFunc: func() {
				c := challenge()
				c.CompletedAt = &completedAt
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(c, nil)
			},
		},
		{
			Desc:  "not started",
			Error: errorvalues.ErrChallengeNotActive,
			MockPrepFunc: func() {
				c := challenge()
				c.StartsAt = fixedNow.Add(time.Minute)
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(c, nil)
			},
		},
		{
			Desc:  "target not reached",
			Error: errorvalues.ErrChallengeNotMet,
			MockPrepFunc: func() {
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(challenge(), nil)
				entries.EXPECT().ListUserActivity(gomock.Any(), uid).Return(twoEntries[:1], nil)
			},
		},
		{
			Desc:  "entries before the window do not count",
			Error: errorvalues.ErrChallengeNotMet,
			MockPrepFunc: func() {
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(challenge(), nil)
				entries.EXPECT().ListUserActivity(gomock.Any(), uid).Return(
					activityAt(uid, "owl", "UTC", 10, fixedNow.Add(-time.Hour), fixedNow.Add(-48*time.Hour)), nil)
			},
		},
		{
			Desc:     "repository failure",
			AnyError: true,
			MockPrepFunc: func() {
				challenges.EXPECT().GetByID(gomock.Any(), cid, uid).Return(challenge(), nil)
				entries.EXPECT().ListUserActivity(gomock.Any(), uid).Return(twoEntries, nil)
				challenges.EXPECT().Complete(gomock.Any(), cid, uid).Return(errors.New("db down"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		err := cs.Complete(context.Background(), cid, uid)
		switch {
		case tc.Error != nil:
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
		case tc.AnyError:
			assert.Error(t, err, tc.Desc)
		default:
			assert.NoError(t, err, tc.Desc)
		}
	}
}

func TestListChallengesWithProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	challenges := repomocks.NewMockChallengesRepositoryI(ctrl)
	entries := repomocks.NewMockEntriesRepositoryI(ctrl)
	cs := service.NewChallengesService(challenges, entries, nil, fixedClock())
	uid := uuid.New()
	words := &entity.Challenge{ID: uuid.New(), Metric: entity.MetricWords, Target: 1000,
		StartsAt: fixedNow.Add(-24 * time.Hour), EndsAt: fixedNow.Add(24 * time.Hour)}
	count := &entity.Challenge{ID: uuid.New(), Metric: entity.MetricEntries, Target: 5,
		StartsAt: fixedNow.Add(-24 * time.Hour), EndsAt: fixedNow.Add(24 * time.Hour)}
	challenges.EXPECT().ListActive(gomock.Any(), fixedNow, uid).Return([]*entity.Challenge{words, count}, nil)
	entries.EXPECT().ListUserActivity(gomock.Any(), uid).Return(
		activityAt(uid, "owl", "UTC", 150, fixedNow.Add(-time.Hour), fixedNow.Add(-2*time.Hour), fixedNow.Add(-72*time.Hour)), nil)
	list, err := cs.List(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 300, list[0].Progress)
	assert.Equal(t, 2, list[1].Progress)
}
