// Package support serves the live support chat. Every user has one
// conversation; all of the user's open connections join the same room and
// see each other's messages.
package support

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/pkg/entity"
	jwtservice "github.com/limbo/journowl/pkg/jwt_service"
	"github.com/limbo/journowl/pkg/logging"
)

const (
	writeWait      = 10 * time.Second
	maxFrameSize   = 64 * 1024
	maxMessageLen  = 4000
	historySize    = 50
	sendBufferSize = 32
	storeTimeout   = 5 * time.Second
)

type TokenParser interface {
	ParseToken(token string) (*jwtservice.JWTClaims, error)
}

type Option func(*Hub)

func WithAuthTimeout(d time.Duration) Option {
	return func(h *Hub) {
		h.authTimeout = d
	}
}

// WithHeartbeat sets how often the server pings and how long it waits for a pong.
func WithHeartbeat(pingPeriod, pongWait time.Duration) Option {
	return func(h *Hub) {
		h.pingPeriod = pingPeriod
		h.pongWait = pongWait
	}
}

type Hub struct {
	repo     repository.SupportRepositoryI
	tokens   TokenParser
	upgrader websocket.Upgrader

	authTimeout time.Duration
	pingPeriod  time.Duration
	pongWait    time.Duration

	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*client]struct{}
}

func NewHub(repo repository.SupportRepositoryI, tokens TokenParser, opts ...Option) *Hub {
	h := &Hub{
		repo:   repo,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS is enforced by the router
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		authTimeout: 10 * time.Second,
		pingPeriod:  30 * time.Second,
		pongWait:    60 * time.Second,
		rooms:       make(map[uuid.UUID]map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type client struct {
	hub    *Hub
	conn   *websocket.Conn
	uid    uuid.UUID
	send   chan []byte
	logger *slog.Logger
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("upgrading to websocket error", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	uid, err := h.authenticate(conn)
	if err != nil {
		logger.Info("support chat auth failed", slog.String("error", err.Error()))
		h.reject(conn, err.Error())
		return
	}
	logger = logger.With(slog.String("uid", uid.String()))
	ctx := logging.WithLogger(r.Context(), logger)

	history, err := h.recent(ctx, uid)
	if err != nil {
		logger.Error("loading support history error", slog.String("error", err.Error()))
		h.reject(conn, "internal error")
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		uid:    uid,
		send:   make(chan []byte, sendBufferSize),
		logger: logger,
	}
	h.join(c)
	defer h.leave(c)
	go c.writePump()

	c.enqueue(entity.SupportFrame{Type: entity.FrameAuthOK, UserID: uid.String(), History: history})
	logger.Info("support chat connected")
	c.readPump(ctx)
	logger.Info("support chat disconnected")
}

// authenticate expects an auth frame as the very first frame within authTimeout.
func (h *Hub) authenticate(conn *websocket.Conn) (uuid.UUID, error) {
	conn.SetReadDeadline(time.Now().Add(h.authTimeout))
	_, data, err := conn.ReadMessage()
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return uuid.Nil, errors.New("authentication timeout")
		}
		return uuid.Nil, errors.New("reading auth frame error")
	}
	frame, err := DecodeFrame(data)
	if err != nil || frame.Type != entity.FrameAuth {
		return uuid.Nil, errors.New("first frame must be auth")
	}
	claims, err := h.tokens.ParseToken(frame.Token)
	if err != nil {
		return uuid.Nil, errors.New("invalid token")
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, errors.New("invalid token")
	}
	return uid, nil
}

// reject writes an error frame and closes with a policy violation.
func (h *Hub) reject(conn *websocket.Conn, reason string) {
	if data, err := EncodeFrame(errorFrame(reason)); err == nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		conn.WriteMessage(websocket.TextMessage, data)
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason),
		time.Now().Add(writeWait))
}

func (h *Hub) recent(ctx context.Context, uid uuid.UUID) ([]*entity.SupportMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return h.repo.ListRecent(ctx, uid, historySize)
}

func (h *Hub) join(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.uid]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[c.uid] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[c.uid]
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.uid)
	}
	close(c.send)
}

// Connections reports how many sockets are open in uid's conversation.
func (h *Hub) Connections(uid uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[uid])
}

// broadcast queues f for every connection of the conversation except skip.
func (h *Hub) broadcast(uid uuid.UUID, f entity.SupportFrame, skip *client) {
	data, err := EncodeFrame(f)
	if err != nil {
		slog.Default().Error("encoding support frame error", slog.String("error", err.Error()))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[uid] {
		if c == skip {
			continue
		}
		select {
		case c.send <- data:
		default:
			c.logger.Warn("support chat send buffer full, frame dropped", slog.String("type", f.Type))
		}
	}
}

func (c *client) enqueue(f entity.SupportFrame) {
	data, err := EncodeFrame(f)
	if err != nil {
		c.logger.Error("encoding support frame error", slog.String("error", err.Error()))
		return
	}
	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if _, ok := c.hub.rooms[c.uid][c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Warn("support chat send buffer full, frame dropped", slog.String("type", f.Type))
	}
}

func (c *client) readPump(ctx context.Context) {
	pongWait := c.hub.pongWait
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("support chat read error", slog.String("error", err.Error()))
			}
			return
		}
		frame, err := DecodeFrame(data)
		if err != nil {
			c.enqueue(errorFrame("malformed frame"))
			continue
		}
		switch frame.Type {
		case entity.FrameChatMessage:
			c.chat(ctx, frame.Content)
		case entity.FrameTyping:
			c.hub.broadcast(c.uid, entity.SupportFrame{Type: entity.FrameTyping, UserID: c.uid.String()}, c)
		case entity.FrameAuth:
			c.enqueue(errorFrame("already authenticated"))
		default:
			c.enqueue(errorFrame("unknown frame type"))
		}
	}
}

func (c *client) chat(ctx context.Context, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		c.enqueue(errorFrame("message is empty"))
		return
	}
	if utf8.RuneCountInString(content) > maxMessageLen {
		c.enqueue(errorFrame("message is too long"))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	saved, err := c.hub.repo.Save(ctx, &entity.SupportMessage{
		UserID:  c.uid,
		Sender:  entity.SenderUser,
		Content: content,
	})
	if err != nil {
		c.logger.Error("saving support message error", slog.String("error", err.Error()))
		c.enqueue(errorFrame("failed to persist message"))
		return
	}
	c.hub.broadcast(c.uid, entity.SupportFrame{Type: entity.FrameNewMessage, Message: saved}, nil)
}

// writePump is the only writer of conn once the client joined its room.
func (c *client) writePump() {
	ticker := time.NewTicker(c.hub.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.conn.Close()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.conn.Close()
				return
			}
		}
	}
}
