package service

import "time"

type clock struct {
	now func() time.Time
}

type Option func(*clock)

// WithClock replaces time.Now for everything the service derives.
func WithClock(now func() time.Time) Option {
	return func(c *clock) {
		c.now = now
	}
}

func newClock(opts []Option) clock {
	c := clock{now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
