// Package supportclient is a reconnecting client for the /ws/support chat.
//
// The connection moves through Disconnected -> Connecting -> Authenticated ->
// Ready and back to Disconnected when it drops. Failed dials and dropped
// connections are redialled with exponential backoff and jitter. After
// MaxRetries redials without a connection that stayed up for MaxInterval,
// Run returns the last error.
package supportclient

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/limbo/journowl/pkg/entity"
)

type State int

const (
	Disconnected State = iota
	Connecting
	Authenticated
	Ready
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Authenticated:
		return "authenticated"
	case Ready:
		return "ready"
	default:
		return "disconnected"
	}
}

var (
	ErrNotReady = errors.New("support connection is not ready")
	ErrRejected = errors.New("support server rejected authentication")
)

type Config struct {
	URL   string
	Token string

	InitialInterval time.Duration
	MaxInterval     time.Duration
	// Redials after the first failed attempt before giving up
	MaxRetries  uint64
	AuthTimeout time.Duration

	OnStateChange func(from, to State)
	OnFrame       func(entity.SupportFrame)

	Dialer *websocket.Dialer
	Logger *slog.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 30 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 10
	}
	if cfg.AuthTimeout <= 0 {
		cfg.AuthTimeout = 10 * time.Second
	}
	if cfg.Dialer == nil {
		cfg.Dialer = websocket.DefaultDialer
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}

type Client struct {
	cfg Config

	mu      sync.Mutex
	state   State
	conn    *websocket.Conn
	lastErr error

	writeMu sync.Mutex
}

func New(cfg Config) *Client {
	cfg.setDefaults()
	return &Client{cfg: cfg}
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err is the error that made the client give up, if any.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Client) setState(to State) {
	c.mu.Lock()
	from := c.state
	c.state = to
	c.mu.Unlock()
	if from != to && c.cfg.OnStateChange != nil {
		c.cfg.OnStateChange(from, to)
	}
}

// backOff is shared by every redial of one Run, so connections that drop
// right after auth spend the same retry budget as failed dials.
func (c *Client) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.InitialInterval
	b.MaxInterval = c.cfg.MaxInterval
	b.RandomizationFactor = 0.5
	b.MaxElapsedTime = 0
	retries := backoff.WithMaxRetries(b, c.cfg.MaxRetries)
	retries.Reset()
	return retries
}

// Run keeps the connection up until ctx is done or reconnecting gives up.
func (c *Client) Run(ctx context.Context) error {
	defer c.setState(Disconnected)
	b := c.backOff()
	for {
		err := c.connect(ctx)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, ErrRejected):
			return c.giveUp(err)
		case err == nil:
			started := time.Now()
			err = c.listen(ctx)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.cfg.Logger.Info("support connection dropped", slog.String("error", err.Error()))
			// Only a connection that stayed up earns a fresh retry budget
			if time.Since(started) >= c.cfg.MaxInterval {
				b.Reset()
			}
		}
		next := b.NextBackOff()
		if next == backoff.Stop {
			return c.giveUp(err)
		}
		c.cfg.Logger.Warn("support connection failed, retrying",
			slog.String("error", err.Error()), slog.Duration("next", next))
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (c *Client) giveUp(err error) error {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
	return err
}

func (c *Client) connect(ctx context.Context) error {
	c.setState(Connecting)
	conn, _, err := c.cfg.Dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		c.setState(Disconnected)
		return err
	}
	frame, err := c.handshake(conn)
	if err != nil {
		conn.Close()
		c.setState(Disconnected)
		return err
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.setState(Authenticated)
	c.deliver(frame)
	c.setState(Ready)
	return nil
}

func (c *Client) handshake(conn *websocket.Conn) (entity.SupportFrame, error) {
	if err := c.write(conn, entity.SupportFrame{Type: entity.FrameAuth, Token: c.cfg.Token}); err != nil {
		return entity.SupportFrame{}, err
	}
	conn.SetReadDeadline(time.Now().Add(c.cfg.AuthTimeout))
	defer conn.SetReadDeadline(time.Time{})
	frame, err := readFrame(conn)
	if err != nil {
		return entity.SupportFrame{}, err
	}
	switch frame.Type {
	case entity.FrameAuthOK:
		return frame, nil
	case entity.FrameError:
		return entity.SupportFrame{}, errors.Join(ErrRejected, errors.New(frame.Error))
	}
	return entity.SupportFrame{}, errors.New("unexpected frame during auth: " + frame.Type)
}

// listen pumps frames to OnFrame until the connection fails or ctx is done.
func (c *Client) listen(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()
	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		conn.Close()
		c.setState(Disconnected)
	}()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var frame entity.SupportFrame
		if err := sonic.Unmarshal(data, &frame); err != nil {
			c.cfg.Logger.Warn("skipping malformed support frame", slog.String("error", err.Error()))
			continue
		}
		c.deliver(frame)
	}
}

func (c *Client) deliver(f entity.SupportFrame) {
	if c.cfg.OnFrame != nil {
		c.cfg.OnFrame(f)
	}
}

func (c *Client) Send(content string) error {
	return c.sendFrame(entity.SupportFrame{Type: entity.FrameChatMessage, Content: content})
}

func (c *Client) Typing() error {
	return c.sendFrame(entity.SupportFrame{Type: entity.FrameTyping})
}

func (c *Client) sendFrame(f entity.SupportFrame) error {
	c.mu.Lock()
	conn, state := c.conn, c.state
	c.mu.Unlock()
	if conn == nil || state != Ready {
		return ErrNotReady
	}
	return c.write(conn, f)
}

func (c *Client) write(conn *websocket.Conn, f entity.SupportFrame) error {
	data, err := sonic.Marshal(f)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func readFrame(conn *websocket.Conn) (entity.SupportFrame, error) {
	var f entity.SupportFrame
	_, data, err := conn.ReadMessage()
	if err != nil {
		return f, err
	}
	err = sonic.Unmarshal(data, &f)
	return f, err
}
