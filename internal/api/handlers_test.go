package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/journowl/internal/api"
	"github.com/limbo/journowl/internal/cache"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/internal/service"
	"github.com/limbo/journowl/internal/service/mocks"
	"github.com/limbo/journowl/pkg/entity"
	"github.com/limbo/journowl/pkg/httputil"
	jwtservice "github.com/limbo/journowl/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

const testSecret = "test_secret"

var (
	username = "test_name"
	password = "test_password"
	uid      = uuid.New()
)

type testEnv struct {
	users         *mocks.MockUserServiceI
	entries       *mocks.MockEntriesServiceI
	stats         *mocks.MockStatsServiceI
	achievements  *mocks.MockAchievementsServiceI
	leaderboard   *mocks.MockLeaderboardServiceI
	tournaments   *mocks.MockTournamentsServiceI
	challenges    *mocks.MockChallengesServiceI
	subscriptions *mocks.MockSubscriptionServiceI
	server        *api.Server
	token         string
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		users:         mocks.NewMockUserServiceI(ctrl),
		entries:       mocks.NewMockEntriesServiceI(ctrl),
		stats:         mocks.NewMockStatsServiceI(ctrl),
		achievements:  mocks.NewMockAchievementsServiceI(ctrl),
		leaderboard:   mocks.NewMockLeaderboardServiceI(ctrl),
		tournaments:   mocks.NewMockTournamentsServiceI(ctrl),
		challenges:    mocks.NewMockChallengesServiceI(ctrl),
		subscriptions: mocks.NewMockSubscriptionServiceI(ctrl),
	}
	jwtSvc := jwtservice.New(testSecret)
	env.server = api.New(&api.ServicesList{
		UserService:         env.users,
		EntriesService:      env.entries,
		StatsService:        env.stats,
		AchievementsService: env.achievements,
		LeaderboardService:  env.leaderboard,
		TournamentsService:  env.tournaments,
		ChallengesService:   env.challenges,
		SubscriptionService: env.subscriptions,
		JwtService:          jwtSvc,
	}, api.Options{RateLimitRPS: 1000, RateLimitBurst: 1000})
	token, err := jwtSvc.GenerateToken(&entity.User{ID: uid, Name: username})
	require.NoError(t, err)
	env.token = token
	return env
}

// expectAuth lets one request through AuthMiddleware.
func (env *testEnv) expectAuth() {
	env.users.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Name: username, Timezone: "UTC"}, nil)
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.ConfigDefault.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+env.token)
	rr := httptest.NewRecorder()
	env.server.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&v))
	return v
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	body := api.RegisterRequest{Name: username, Password: password}
	expected := &service.RegisterRequest{Name: username, Password: password}
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         any
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), expected).Return(&entity.User{ID: uid, Name: username}, nil)
			},
			Body: body,
		},
		{
			Desc:         "name taken",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), expected).Return(nil, errorvalues.ErrUserExists)
			},
			Body: body,
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), expected).Return(nil, fmt.Errorf("%w: name is too short", errorvalues.ErrValidation))
			},
			Body: body,
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.users.EXPECT().Register(gomock.Any(), expected).Return(nil, errors.New("mocked error"))
			},
			Body: body,
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(t, http.MethodPost, "/api/auth/register", tc.Body)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
	t.Run("uid in body", func(t *testing.T) {
		env.users.EXPECT().Register(gomock.Any(), expected).Return(&entity.User{ID: uid, Name: username}, nil)
		rr := env.do(t, http.MethodPost, "/api/auth/register", body)
		require.Equal(t, http.StatusCreated, rr.Code)
		result := decode[map[string]string](t, rr)
		assert.Equal(t, uid.String(), result["uid"])
	})
	t.Run("validation details", func(t *testing.T) {
		env.users.EXPECT().Register(gomock.Any(), expected).Return(nil, fmt.Errorf("%w: name is too short", errorvalues.ErrValidation))
		rr := env.do(t, http.MethodPost, "/api/auth/register", body)
		result := decode[httputil.ErrorResponse](t, rr)
		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.Contains(t, result.Details, "name is too short")
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	body := api.LoginRequest{Name: username, Password: password}
	t.Run("logged in", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), username, password).Return(&entity.User{ID: uid, Name: username}, nil)
		rr := env.do(t, http.MethodPost, "/api/auth/login", body)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[map[string]string](t, rr)
		assert.Equal(t, uid.String(), result["uid"])
		claims, err := jwtservice.New(testSecret).ParseToken(result["token"])
		require.NoError(t, err)
		assert.Equal(t, uid.String(), claims.UserID)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := env.do(t, http.MethodPost, "/api/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("service error", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), username, password).Return(nil, errors.New("mocked error"))
		rr := env.do(t, http.MethodPost, "/api/auth/login", body)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/login", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAccountHandlers(t *testing.T) {
	env := newTestEnv(t)
	t.Run("deleted", func(t *testing.T) {
		env.expectAuth()
		env.users.EXPECT().DeleteAccount(gomock.Any(), uid, password).Return(nil)
		rr := env.do(t, http.MethodDelete, "/api/account", api.DeleteAccountRequest{Password: password})
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("wrong password", func(t *testing.T) {
		env.expectAuth()
		env.users.EXPECT().DeleteAccount(gomock.Any(), uid, "nope").Return(errorvalues.ErrWrongCredentials)
		rr := env.do(t, http.MethodDelete, "/api/account", api.DeleteAccountRequest{Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("timezone changed", func(t *testing.T) {
		env.expectAuth()
		env.users.EXPECT().SetTimezone(gomock.Any(), uid, "Asia/Tokyo").Return(nil)
		rr := env.do(t, http.MethodPut, "/api/account/timezone", api.TimezoneRequest{Timezone: "Asia/Tokyo"})
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("bad timezone", func(t *testing.T) {
		env.expectAuth()
		env.users.EXPECT().SetTimezone(gomock.Any(), uid, "Mars/Olympus").Return(fmt.Errorf("%w: unknown zone", errorvalues.ErrValidation))
		rr := env.do(t, http.MethodPut, "/api/account/timezone", api.TimezoneRequest{Timezone: "Mars/Olympus"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)
	stats := &service.Stats{CurrentStreak: 3, LongestStreak: 5}

	t.Run("successful auth", func(t *testing.T) {
		env.expectAuth()
		env.stats.EXPECT().Stats(gomock.Any(), uid).Return(stats, nil)
		rr := env.do(t, http.MethodGet, "/api/stats", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("no header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("not bearer", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		req.Header.Set("Authorization", "Basic "+env.token)
		env.server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("foreign signature", func(t *testing.T) {
		token, err := jwtservice.New("other_secret").GenerateToken(&entity.User{ID: uid, Name: username})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		env.server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("user deleted", func(t *testing.T) {
		env.users.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		rr := env.do(t, http.MethodGet, "/api/stats", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("lookup failed", func(t *testing.T) {
		env.users.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errors.New("mocked error"))
		rr := env.do(t, http.MethodGet, "/api/stats", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestEntriesHandlers(t *testing.T) {
	env := newTestEnv(t)
	entryID := uuid.New()
	body := api.EntryRequest{
		Content:     "quiet evening by the lake",
		Mood:        "calm",
		Tags:        []string{"lake"},
		Attachments: []api.AttachmentRequest{{Kind: "photo", Ref: "s3://bucket/lake.jpg"}},
	}
	expected := &service.EntryRequest{
		Content:     body.Content,
		Mood:        body.Mood,
		Tags:        body.Tags,
		Attachments: []service.AttachmentRequest{{Kind: "photo", Ref: "s3://bucket/lake.jpg"}},
	}
	entry := &entity.JournalEntry{
		ID:        entryID,
		AuthorID:  uid,
		Content:   body.Content,
		Mood:      entity.Mood(body.Mood),
		WordCount: 5,
		Tags:      body.Tags,
	}

	t.Run("created", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().Create(gomock.Any(), uid, expected).Return(entry, nil)
		rr := env.do(t, http.MethodPost, "/api/entries", body)
		require.Equal(t, http.StatusCreated, rr.Code)
		result := decode[entity.JournalEntry](t, rr)
		assert.Equal(t, entryID, result.ID)
		assert.Equal(t, 5, result.WordCount)
	})
	t.Run("create validation", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().Create(gomock.Any(), uid, gomock.Any()).Return(nil, fmt.Errorf("%w: mood", errorvalues.ErrValidation))
		rr := env.do(t, http.MethodPost, "/api/entries", api.EntryRequest{Content: "x", Mood: "grumpy"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("paginated list", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().List(gomock.Any(), uid, service.PaginationOpts{Limit: 50, Offset: 50}).Return([]*entity.JournalEntry{entry}, nil)
		rr := env.do(t, http.MethodGet, "/api/entries?page=2&limit=500", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[api.GetEntriesResponse](t, rr)
		assert.Equal(t, uid, result.UserID)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 50, result.Limit)
		assert.Len(t, result.Entries, 1)
	})
	t.Run("default page", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().List(gomock.Any(), uid, service.PaginationOpts{Limit: 10, Offset: 0}).Return([]*entity.JournalEntry{}, nil)
		rr := env.do(t, http.MethodGet, "/api/entries?page=abc", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Path         string
	}{
		{
			Desc:         "found",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				env.entries.EXPECT().Get(gomock.Any(), uid, entryID).Return(entry, nil)
			},
			Path: "/api/entries/" + entryID.String(),
		},
		{
			Desc:         "foreign entry",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				env.entries.EXPECT().Get(gomock.Any(), uid, entryID).Return(nil, errorvalues.ErrWrongOwner)
			},
			Path: "/api/entries/" + entryID.String(),
		},
		{
			Desc:         "missing",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.entries.EXPECT().Get(gomock.Any(), uid, entryID).Return(nil, errorvalues.ErrEntryNotFound)
			},
			Path: "/api/entries/" + entryID.String(),
		},
		{
			Desc:         "bad id",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Path:         "/api/entries/not-a-uuid",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env.expectAuth()
			tc.MockPrepFunc()
			rr := env.do(t, http.MethodGet, tc.Path, nil)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	t.Run("updated", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().Update(gomock.Any(), uid, entryID, expected).Return(entry, nil)
		rr := env.do(t, http.MethodPut, "/api/entries/"+entryID.String(), body)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("deleted", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().Delete(gomock.Any(), uid, entryID).Return(nil)
		rr := env.do(t, http.MethodDelete, "/api/entries/"+entryID.String(), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("delete foreign", func(t *testing.T) {
		env.expectAuth()
		env.entries.EXPECT().Delete(gomock.Any(), uid, entryID).Return(errorvalues.ErrWrongOwner)
		rr := env.do(t, http.MethodDelete, "/api/entries/"+entryID.String(), nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGamificationHandlers(t *testing.T) {
	env := newTestEnv(t)
	t.Run("stats", func(t *testing.T) {
		last := "2025-03-10"
		env.expectAuth()
		env.stats.EXPECT().Stats(gomock.Any(), uid).Return(&service.Stats{
			CurrentStreak:   4,
			LongestStreak:   9,
			LastEntryDate:   &last,
			DaysUntilBroken: 1,
			NextMilestone:   7,
		}, nil)
		rr := env.do(t, http.MethodGet, "/api/stats", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[map[string]any](t, rr)
		assert.EqualValues(t, 4, result["currentStreak"])
		assert.Equal(t, last, result["lastEntryDate"])
		assert.EqualValues(t, 7, result["nextMilestone"])
	})
	t.Run("leaderboard", func(t *testing.T) {
		env.expectAuth()
		other := uuid.New()
		env.leaderboard.EXPECT().Board(gomock.Any(), "weekly", uid, 5).Return(&entity.Leaderboard{
			Board: "weekly",
			Entries: []*entity.LeaderboardEntry{
				{Rank: 1, UserID: other, Username: "lark", Score: 9, Badge: "gold"},
				{Rank: 2, UserID: uid, Username: username, Score: 6},
			},
			UserPosition: &entity.LeaderboardEntry{Rank: 2, UserID: uid, Username: username, Score: 6},
			TotalUsers:   14,
		}, nil)
		rr := env.do(t, http.MethodGet, "/api/leaderboard/weekly?limit=5", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[[]entity.LeaderboardEntry](t, rr)
		require.Len(t, result, 2)
		assert.Equal(t, other, result[0].UserID)
		assert.Equal(t, "gold", result[0].Badge)
		assert.Equal(t, 2, result[1].Rank)
		assert.Equal(t, "14", rr.Header().Get("X-Total-Users"))
		assert.Equal(t, "2", rr.Header().Get("X-User-Rank"))
		assert.Equal(t, "6", rr.Header().Get("X-User-Score"))
	})
	t.Run("unranked caller gets no position headers", func(t *testing.T) {
		env.expectAuth()
		env.leaderboard.EXPECT().Board(gomock.Any(), "words", uid, 0).Return(&entity.Leaderboard{Board: "words"}, nil)
		rr := env.do(t, http.MethodGet, "/api/leaderboard/words", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		assert.Equal(t, "0", rr.Header().Get("X-Total-Users"))
		assert.Empty(t, rr.Header().Get("X-User-Rank"))
	})
	t.Run("unknown board", func(t *testing.T) {
		env.expectAuth()
		env.leaderboard.EXPECT().Board(gomock.Any(), "monthly", uid, 0).Return(nil, errorvalues.ErrUnknownBoard)
		rr := env.do(t, http.MethodGet, "/api/leaderboard/monthly", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("reminder", func(t *testing.T) {
		msg := "Keep your 3-day streak alive!"
		streak := 3
		env.expectAuth()
		env.stats.EXPECT().CheckReminder(gomock.Any(), uid).Return(&entity.Reminder{
			Type:    entity.ReminderMaintainStreak,
			Message: &msg,
			Streak:  &streak,
		}, nil)
		rr := env.do(t, http.MethodGet, "/api/notifications/check-reminders", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[map[string]any](t, rr)
		assert.Equal(t, msg, result["reminder"])
		assert.Equal(t, string(entity.ReminderMaintainStreak), result["type"])
	})
	t.Run("achievements", func(t *testing.T) {
		unlocked := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		env.expectAuth()
		env.achievements.EXPECT().List(gomock.Any(), uid).Return([]entity.AchievementStatus{
			{ID: "first-entry", Title: "First Hoot", UnlockedAt: &unlocked},
			{ID: "entries-10", Title: "Ten Tales"},
		}, nil)
		rr := env.do(t, http.MethodGet, "/api/achievements", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[[]entity.AchievementStatus](t, rr)
		require.Len(t, result, 2)
		assert.True(t, unlocked.Equal(*result[0].UnlockedAt))
		assert.Nil(t, result[1].UnlockedAt)
	})
	t.Run("level stats error", func(t *testing.T) {
		env.expectAuth()
		env.achievements.EXPECT().LevelStats(gomock.Any(), uid).Return(nil, errors.New("mocked error"))
		rr := env.do(t, http.MethodGet, "/api/achievements/stats", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCompetitionsHandlers(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	completeCases := []struct {
		Desc         string
		ExpectedCode int
		Error        error
	}{
		{Desc: "completed", ExpectedCode: http.StatusOK},
		{Desc: "unknown", ExpectedCode: http.StatusNotFound, Error: errorvalues.ErrChallengeNotFound},
		{Desc: "twice", ExpectedCode: http.StatusConflict, Error: errorvalues.ErrChallengeCompleted},
		{Desc: "target not met", ExpectedCode: http.StatusConflict, Error: errorvalues.ErrChallengeNotMet},
		{Desc: "not active", ExpectedCode: http.StatusUnprocessableEntity, Error: errorvalues.ErrChallengeNotActive},
	}
	for _, tc := range completeCases {
		t.Run("challenge "+tc.Desc, func(t *testing.T) {
			env.expectAuth()
			env.challenges.EXPECT().Complete(gomock.Any(), id, uid).Return(tc.Error)
			rr := env.do(t, http.MethodPost, "/api/challenges/"+id.String()+"/complete", nil)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.Error == nil {
				ack := decode[httputil.Ack](t, rr)
				assert.True(t, ack.Success)
			}
		})
	}

	joinCases := []struct {
		Desc         string
		ExpectedCode int
		Error        error
	}{
		{Desc: "joined", ExpectedCode: http.StatusOK},
		{Desc: "unknown", ExpectedCode: http.StatusNotFound, Error: errorvalues.ErrTournamentNotFound},
		{Desc: "twice", ExpectedCode: http.StatusConflict, Error: errorvalues.ErrAlreadyJoined},
		{Desc: "ended", ExpectedCode: http.StatusUnprocessableEntity, Error: errorvalues.ErrTournamentEnded},
	}
	for _, tc := range joinCases {
		t.Run("tournament "+tc.Desc, func(t *testing.T) {
			env.expectAuth()
			env.tournaments.EXPECT().Join(gomock.Any(), id, uid).Return(tc.Error)
			rr := env.do(t, http.MethodPost, "/api/tournaments/"+id.String()+"/join", nil)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	t.Run("lists", func(t *testing.T) {
		env.expectAuth()
		env.challenges.EXPECT().List(gomock.Any(), uid).Return([]*entity.Challenge{{ID: id, Title: "Week of words", Target: 7, Progress: 3}}, nil)
		rr := env.do(t, http.MethodGet, "/api/challenges", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]entity.Challenge](t, rr), 1)

		env.expectAuth()
		env.tournaments.EXPECT().List(gomock.Any(), uid).Return([]*entity.Tournament{{ID: id, Name: "March sprint", Participants: 12}}, nil)
		rr = env.do(t, http.MethodGet, "/api/tournaments", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		tournaments := decode[[]entity.Tournament](t, rr)
		require.Len(t, tournaments, 1)
		assert.Equal(t, 12, tournaments[0].Participants)
	})
	t.Run("tournament leaderboard", func(t *testing.T) {
		env.expectAuth()
		env.tournaments.EXPECT().Leaderboard(gomock.Any(), id, uid, 3).Return(&entity.Leaderboard{Board: "tournament", Entries: []*entity.LeaderboardEntry{}}, nil)
		rr := env.do(t, http.MethodGet, "/api/tournaments/"+id.String()+"/leaderboard?limit=3", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
	t.Run("bad tournament id", func(t *testing.T) {
		env.expectAuth()
		rr := env.do(t, http.MethodPost, "/api/tournaments/123/join", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSubscriptionHandlers(t *testing.T) {
	env := newTestEnv(t)
	state := &entity.SubscriptionState{UserID: uid, Tier: entity.TierFree, PromptsRemaining: 3}
	t.Run("get", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().Get(gomock.Any(), uid).Return(state, nil)
		rr := env.do(t, http.MethodGet, "/api/subscription", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, decode[entity.SubscriptionState](t, rr).PromptsRemaining)
	})
	t.Run("prompt without body", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().GeneratePrompt(gomock.Any(), uid, "").Return(&service.GeneratedPrompt{Prompt: "What surprised you today?", PromptsRemaining: 2}, nil)
		rr := env.do(t, http.MethodPost, "/api/prompts/generate", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2, decode[service.GeneratedPrompt](t, rr).PromptsRemaining)
	})
	t.Run("prompt with mood", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().GeneratePrompt(gomock.Any(), uid, "sad").Return(&service.GeneratedPrompt{Prompt: "What would comfort you?", Mood: "sad"}, nil)
		rr := env.do(t, http.MethodPost, "/api/prompts/generate", api.PromptRequest{Mood: "sad"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("prompts exhausted", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().GeneratePrompt(gomock.Any(), uid, "").Return(nil, errorvalues.ErrNoPromptsLeft)
		rr := env.do(t, http.MethodPost, "/api/prompts/generate", nil)
		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	})
	t.Run("top up", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().TopUp(gomock.Any(), uid, 10).Return(&entity.SubscriptionState{UserID: uid, Tier: entity.TierFree, PromptsRemaining: 13}, nil)
		rr := env.do(t, http.MethodPost, "/api/subscription/top-up", api.TopUpRequest{Amount: 10})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 13, decode[entity.SubscriptionState](t, rr).PromptsRemaining)
	})
	t.Run("negative top up", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().TopUp(gomock.Any(), uid, -1).Return(nil, errorvalues.ErrInvalidTopUp)
		rr := env.do(t, http.MethodPost, "/api/subscription/top-up", api.TopUpRequest{Amount: -1})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("unknown tier", func(t *testing.T) {
		env.expectAuth()
		env.subscriptions.EXPECT().ChangeTier(gomock.Any(), uid, "gold").Return(nil, errorvalues.ErrUnknownTier)
		rr := env.do(t, http.MethodPut, "/api/subscription/tier", api.TierRequest{Tier: "gold"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRateLimit(t *testing.T) {
	serv := api.New(&api.ServicesList{}, api.Options{RateLimitRPS: 0.001, RateLimitBurst: 2})
	call := func(remote string) int {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = remote
		serv.ServeHTTP(rr, req)
		return rr.Code
	}
	assert.Equal(t, http.StatusOK, call("192.0.2.1:1000"))
	assert.Equal(t, http.StatusOK, call("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("192.0.2.1:1002"))
	// Buckets are per address
	assert.Equal(t, http.StatusOK, call("192.0.2.2:1000"))
}

func TestRateLimitForwardedFor(t *testing.T) {
	call := func(serv *api.Server, forwarded string) int {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "192.0.2.1:1000"
		req.Header.Set("X-Forwarded-For", forwarded)
		serv.ServeHTTP(rr, req)
		return rr.Code
	}
	t.Run("spoofed header shares the peer bucket", func(t *testing.T) {
		serv := api.New(&api.ServicesList{}, api.Options{RateLimitRPS: 0.001, RateLimitBurst: 2})
		assert.Equal(t, http.StatusOK, call(serv, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, call(serv, "198.51.100.2"))
		assert.Equal(t, http.StatusTooManyRequests, call(serv, "198.51.100.3"))
	})
	t.Run("trusted proxy limits the forwarded client", func(t *testing.T) {
		serv := api.New(&api.ServicesList{}, api.Options{RateLimitRPS: 0.001, RateLimitBurst: 2, TrustProxy: true})
		assert.Equal(t, http.StatusOK, call(serv, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, call(serv, "198.51.100.1"))
		assert.Equal(t, http.StatusTooManyRequests, call(serv, "198.51.100.1"))
		assert.Equal(t, http.StatusOK, call(serv, "198.51.100.2"))
	})
}

func TestServerMiddleware(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	t.Run("request id header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})
	t.Run("cors preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/entries", nil)
		req.Header.Set("Origin", "https://app.journowl.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		serv.ServeHTTP(rr, req)
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestUsersHandlersIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	cfg := setupUsersTestDB(t)
	conn := repository.Connect(cfg)
	server := api.New(&api.ServicesList{
		UserService: service.NewUserService(repository.NewUsersRepoWithConn(conn), repository.NewTournamentsRepoWithConn(conn), cache.Nop{}),
		JwtService:  jwtservice.New(testSecret),
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	require.NoError(t, err)
	post := func(path string, body []byte) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body)))
		return rr
	}
	var registered string
	t.Run("successfully registered", func(t *testing.T) {
		rr := post("/api/auth/register", body)
		require.Equal(t, http.StatusCreated, rr.Code)
		registered = decode[map[string]string](t, rr)["uid"]
		_, err := uuid.Parse(registered)
		assert.NoError(t, err)
	})
	t.Run("name taken", func(t *testing.T) {
		rr := post("/api/auth/register", body)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("successfully logged in", func(t *testing.T) {
		rr := post("/api/auth/login", body)
		require.Equal(t, http.StatusOK, rr.Code)
		result := decode[map[string]string](t, rr)
		assert.Equal(t, registered, result["uid"])
		assert.NotEmpty(t, result["token"])
	})
	t.Run("wrong password", func(t *testing.T) {
		wrong, err := sonic.ConfigDefault.Marshal(api.LoginRequest{Name: username, Password: password + "12345"})
		require.NoError(t, err)
		rr := post("/api/auth/login", wrong)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("unknown user", func(t *testing.T) {
		wrong, err := sonic.ConfigDefault.Marshal(api.LoginRequest{Name: username + "_nobody", Password: password})
		require.NoError(t, err)
		rr := post("/api/auth/login", wrong)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("journowl"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err := goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
