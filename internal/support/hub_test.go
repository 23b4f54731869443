package support_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	repomocks "github.com/limbo/journowl/internal/repository/mocks"
	"github.com/limbo/journowl/internal/support"
	"github.com/limbo/journowl/pkg/entity"
	jwtservice "github.com/limbo/journowl/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens map[string]uuid.UUID

func (st staticTokens) ParseToken(token string) (*jwtservice.JWTClaims, error) {
	uid, ok := st[token]
	if !ok {
		return nil, errorvalues.ErrInvalidToken
	}
	return &jwtservice.JWTClaims{UserID: uid.String()}, nil
}

func startHub(t *testing.T, repo *repomocks.MockSupportRepositoryI, tokens staticTokens, opts ...support.Option) string {
	srv := httptest.NewServer(support.NewHub(repo, tokens, opts...))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, f entity.SupportFrame) {
	data, err := support.EncodeFrame(f)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func read(t *testing.T, conn *websocket.Conn) entity.SupportFrame {
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	f, err := support.DecodeFrame(data)
	require.NoError(t, err)
	return f
}

func authed(t *testing.T, url, token string) (*websocket.Conn, entity.SupportFrame) {
	conn := dial(t, url)
	send(t, conn, entity.SupportFrame{Type: entity.FrameAuth, Token: token})
	return conn, read(t, conn)
}

func TestHubRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSupportRepositoryI(ctrl)
	url := startHub(t, repo, staticTokens{"good": uuid.New()}, support.WithAuthTimeout(100*time.Millisecond))
	testCases := []struct {
		Desc   string
		First  *entity.SupportFrame
		Reason string
	}{
		{
			Desc:   "silent client",
			Reason: "authentication timeout",
		},
		{
			Desc:   "chat before auth",
			First:  &entity.SupportFrame{Type: entity.FrameChatMessage, Content: "hello?"},
			Reason: "first frame must be auth",
		},
		{
			Desc:   "unknown token",
			First:  &entity.SupportFrame{Type: entity.FrameAuth, Token: "forged"},
			Reason: "invalid token",
		},
	}
	for _, tc := range testCases {
		conn := dial(t, url)
		if tc.First != nil {
			send(t, conn, *tc.First)
		}
		f := read(t, conn)
		assert.Equal(t, entity.FrameError, f.Type, tc.Desc)
		assert.Equal(t, tc.Reason, f.Error, tc.Desc)
		_, _, err := conn.ReadMessage()
		var closeErr *websocket.CloseError
		require.True(t, errors.As(err, &closeErr), tc.Desc)
		assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code, tc.Desc)
	}
}

func TestHubConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSupportRepositoryI(ctrl)
	owl := uuid.New()
	other := uuid.New()
	url := startHub(t, repo, staticTokens{"owl": owl, "other": other})
	earlier := &entity.SupportMessage{ID: uuid.New(), UserID: owl, Sender: entity.SenderAgent, Content: "How can we help?"}
	repo.EXPECT().ListRecent(gomock.Any(), owl, 50).Return([]*entity.SupportMessage{earlier}, nil).Times(2)
	repo.EXPECT().ListRecent(gomock.Any(), other, 50).Return([]*entity.SupportMessage{}, nil)

	phone, ok := authed(t, url, "owl")
	require.Equal(t, entity.FrameAuthOK, ok.Type)
	assert.Equal(t, owl.String(), ok.UserID)
	require.Len(t, ok.History, 1)
	assert.Equal(t, "How can we help?", ok.History[0].Content)
	laptop, ok := authed(t, url, "owl")
	require.Equal(t, entity.FrameAuthOK, ok.Type)
	stranger, ok := authed(t, url, "other")
	require.Equal(t, entity.FrameAuthOK, ok.Type)

	t.Run("message reaches every connection of the conversation", func(t *testing.T) {
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *entity.SupportMessage) (*entity.SupportMessage, error) {
			assert.Equal(t, owl, m.UserID)
			assert.Equal(t, entity.SenderUser, m.Sender)
			saved := *m
			saved.ID = uuid.New()
			saved.CreatedAt = time.Now()
			return &saved, nil
		})
		send(t, phone, entity.SupportFrame{Type: entity.FrameChatMessage, Content: "  my streak vanished  "})
		for _, conn := range []*websocket.Conn{phone, laptop} {
			f := read(t, conn)
			assert.Equal(t, entity.FrameNewMessage, f.Type)
			require.NotNil(t, f.Message)
			assert.Equal(t, "my streak vanished", f.Message.Content)
		}
	})
	t.Run("typing goes to the other connections", func(t *testing.T) {
		send(t, laptop, entity.SupportFrame{Type: entity.FrameTyping})
		f := read(t, phone)
		assert.Equal(t, entity.FrameTyping, f.Type)
		assert.Equal(t, owl.String(), f.UserID)
	})
	t.Run("empty message is refused to the sender", func(t *testing.T) {
		send(t, laptop, entity.SupportFrame{Type: entity.FrameChatMessage, Content: "   "})
		f := read(t, laptop)
		assert.Equal(t, entity.FrameError, f.Type)
		assert.Equal(t, "message is empty", f.Error)
	})
	t.Run("persistence failure", func(t *testing.T) {
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		send(t, laptop, entity.SupportFrame{Type: entity.FrameChatMessage, Content: "anyone?"})
		f := read(t, laptop)
		assert.Equal(t, entity.FrameError, f.Type)
		assert.Equal(t, "failed to persist message", f.Error)
	})
	t.Run("other conversations stay quiet", func(t *testing.T) {
		stranger.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		_, _, err := stranger.ReadMessage()
		require.Error(t, err)
		var closeErr *websocket.CloseError
		assert.False(t, errors.As(err, &closeErr))
	})
}

func TestHubPings(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSupportRepositoryI(ctrl)
	uid := uuid.New()
	url := startHub(t, repo, staticTokens{"owl": uid}, support.WithHeartbeat(50*time.Millisecond, time.Second))
	repo.EXPECT().ListRecent(gomock.Any(), uid, 50).Return(nil, nil)

	conn, ok := authed(t, url, "owl")
	require.Equal(t, entity.FrameAuthOK, ok.Type)
	pinged := make(chan struct{}, 1)
	conn.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})
	go func() {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		conn.ReadMessage()
	}()
	select {
	case <-pinged:
	case <-time.After(time.Second):
		t.Fatal("no ping within a second")
	}
}
