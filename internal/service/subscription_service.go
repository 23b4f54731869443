package service

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/pkg/entity"
)

type Allowance struct {
	Prompts      int
	StorageBytes int64
}

var allowances = map[entity.Tier]Allowance{
	entity.TierFree:    {Prompts: 5, StorageBytes: 100 << 20},
	entity.TierPremium: {Prompts: 50, StorageBytes: 1 << 30},
	entity.TierPro:     {Prompts: 500, StorageBytes: 10 << 30},
}

func AllowanceFor(tier entity.Tier) (Allowance, bool) {
	a, ok := allowances[tier]
	return a, ok
}

// PeriodStart is the first day of the month containing t, in UTC.
func PeriodStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

type SubscriptionService struct {
	clock
	repo repository.SubscriptionsRepositoryI
	pick func(n int) int
}

func NewSubscriptionService(subsRepo repository.SubscriptionsRepositoryI, opts ...Option) *SubscriptionService {
	if subsRepo == nil {
		log.Fatal("on subscription service provided nil repo")
	}
	return &SubscriptionService{
		clock: newClock(opts),
		repo:  subsRepo,
		pick:  rand.IntN,
	}
}

// Get returns the state for the current monthly period. A missing state is
// created on the free tier and a stale period is rolled over.
func (ss *SubscriptionService) Get(ctx context.Context, uid uuid.UUID) (*entity.SubscriptionState, error) {
	period := PeriodStart(ss.now())
	state, err := ss.repo.Get(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrSubscriptionNotFound) {
			return nil, errors.New("subscriptions repository error: " + err.Error())
		}
		free := allowances[entity.TierFree]
		state = &entity.SubscriptionState{
			UserID:           uid,
			Tier:             entity.TierFree,
			PromptsRemaining: free.Prompts,
			PeriodStart:      period,
			StorageLimit:     free.StorageBytes,
		}
		if err := ss.repo.Create(ctx, state); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("subscriptions repository error: " + err.Error())
		}
		return state, nil
	}
	if !period.After(PeriodStart(state.PeriodStart)) {
		return state, nil
	}
	rolled, err := ss.repo.RollPeriod(ctx, uid, state.Tier, period, allowances[state.Tier].Prompts)
	if err == nil {
		return rolled, nil
	}
	if !errors.Is(err, errorvalues.ErrPeriodCurrent) {
		return nil, errors.New("subscriptions repository error: " + err.Error())
	}
	// Another request rolled it or changed the tier in between
	state, err = ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("subscriptions repository error: " + err.Error())
	}
	return state, nil
}

func (ss *SubscriptionService) TopUp(ctx context.Context, uid uuid.UUID, n int) (*entity.SubscriptionState, error) {
	if n <= 0 {
		return nil, errorvalues.ErrInvalidTopUp
	}
	state, err := ss.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	balance, err := ss.repo.AddPrompts(ctx, uid, n)
	if err != nil {
		return nil, errors.New("subscriptions repository error: " + err.Error())
	}
	state.PromptsRemaining = balance
	return state, nil
}

func (ss *SubscriptionService) ChangeTier(ctx context.Context, uid uuid.UUID, tier string) (*entity.SubscriptionState, error) {
	allowance, ok := AllowanceFor(entity.Tier(tier))
	if !ok {
		return nil, errorvalues.ErrUnknownTier
	}
	if _, err := ss.Get(ctx, uid); err != nil {
		return nil, err
	}
	state, err := ss.repo.ChangeTier(ctx, uid, entity.Tier(tier), allowance.StorageBytes, allowance.Prompts)
	if err != nil {
		return nil, errors.New("subscriptions repository error: " + err.Error())
	}
	return state, nil
}

func (ss *SubscriptionService) GeneratePrompt(ctx context.Context, uid uuid.UUID, mood string) (*GeneratedPrompt, error) {
	if mood != "" && !entity.Mood(mood).Valid() {
		return nil, errorvalues.ErrValidation
	}
	if _, err := ss.Get(ctx, uid); err != nil {
		return nil, err
	}
	left, err := ss.repo.ConsumePrompt(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoPromptsLeft) {
			return nil, err
		}
		return nil, errors.New("subscriptions repository error: " + err.Error())
	}
	pool := promptsFor(entity.Mood(mood))
	return &GeneratedPrompt{
		Prompt:           pool[ss.pick(len(pool))],
		Mood:             mood,
		PromptsRemaining: left,
	}, nil
}
