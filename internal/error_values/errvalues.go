package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation failed")

	ErrEntryNotFound = errors.New("journal entry doesn't exist")
	ErrAuthorMissing = errors.New("entry author doesn't exist")
	ErrWrongOwner    = errors.New("resource belongs to another user")

	ErrUnknownBoard = errors.New("unknown leaderboard")

	ErrTournamentNotFound = errors.New("tournament doesn't exist")
	ErrTournamentEnded    = errors.New("tournament already ended")
	ErrAlreadyJoined      = errors.New("already joined the tournament")

	ErrChallengeNotFound  = errors.New("challenge doesn't exist")
	ErrChallengeNotActive = errors.New("challenge is not active")
	ErrChallengeCompleted = errors.New("challenge already completed")
	ErrChallengeNotMet    = errors.New("challenge target not reached yet")

	ErrSubscriptionNotFound = errors.New("subscription doesn't exist")
	ErrNoPromptsLeft        = errors.New("no prompts left in this period")
	ErrPeriodCurrent        = errors.New("subscription period is already current")
	ErrInvalidTopUp         = errors.New("top-up amount must be positive")
	ErrUnknownTier          = errors.New("unknown subscription tier")
)
