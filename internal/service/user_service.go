package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/journowl/internal/cache"
	errorvalues "github.com/limbo/journowl/internal/error_values"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/pkg/entity"
	"github.com/limbo/journowl/pkg/logging"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo            repository.UsersRepositoryI
	tournamentsRepo repository.TournamentsRepositoryI
	cache           cache.Store
}

func NewUserService(usersRepo repository.UsersRepositoryI, tournamentsRepo repository.TournamentsRepositoryI, store cache.Store) *UserService {
	if usersRepo == nil || tournamentsRepo == nil {
		log.Fatal("on user service provided nil repo")
	}
	InitValidator()
	return &UserService{
		repo:            usersRepo,
		tournamentsRepo: tournamentsRepo,
		cache:           orNop(store),
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	err = us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
		Timezone:     tz,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	// participation rows go away with the user
	joined := us.joinedTournaments(ctx, user.ID)
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	cache.Invalidate(ctx, us.cache, EntryMutationKeys(user.ID, joined)...)
	return nil
}

func (us *UserService) SetTimezone(ctx context.Context, id uuid.UUID, timezone string) error {
	if err := validate.Var(timezone, "required,timezone"); err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Timezone = timezone
	err = us.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository updating error: " + err.Error())
	}
	// day boundaries moved, so every streak and window of the user is recomputed
	cache.Invalidate(ctx, us.cache, EntryMutationKeys(id, us.joinedTournaments(ctx, id))...)
	return nil
}

func (us *UserService) joinedTournaments(ctx context.Context, uid uuid.UUID) []uuid.UUID {
	joined, err := us.tournamentsRepo.ListJoinedIDs(ctx, uid)
	if err != nil {
		logging.FromContext(ctx).Warn("listing joined tournaments for invalidation failed", slog.String("error", err.Error()))
	}
	return joined
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
