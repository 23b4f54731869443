// @title JournOwl API
// @description Journaling streaks, leaderboards and achievements
// @version 1.0
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"log/slog"
	"time"

	_ "github.com/limbo/journowl/docs"
	"github.com/limbo/journowl/internal/api"
	"github.com/limbo/journowl/internal/cache"
	"github.com/limbo/journowl/internal/repository"
	"github.com/limbo/journowl/internal/service"
	"github.com/limbo/journowl/internal/support"
	"github.com/limbo/journowl/pkg/config"
	jwtservice "github.com/limbo/journowl/pkg/jwt_service"
	"github.com/limbo/journowl/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logging.Setup(cfg.GetStringOr("LOG_LEVEL", "info"))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.Connect(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	entriesRepo := repository.NewEntriesRepoWithConn(pool)
	achievementsRepo := repository.NewAchievementsRepoWithConn(pool)
	tournamentsRepo := repository.NewTournamentsRepoWithConn(pool)
	challengesRepo := repository.NewChallengesRepoWithConn(pool)
	subscriptionsRepo := repository.NewSubscriptionsRepoWithConn(pool)
	supportRepo := repository.NewSupportRepoWithConn(pool)

	var store cache.Store = cache.Nop{}
	if url := cfg.GetString("REDIS_URL"); url != "" {
		redisCache, err := cache.NewRedisCache(url)
		if err != nil {
			log.Fatal("redis cache error: " + err.Error())
		}
		store = redisCache
		slog.Info("redis cache enabled")
	}
	ttl := cfg.GetDuration("CACHE_TTL", 30*time.Second)

	jwtSvc := jwtservice.New(cfg.GetString("JWT_SECRET"))
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo, tournamentsRepo, store),
		EntriesService: service.NewEntriesService(entriesRepo, tournamentsRepo, store),
		StatsService:   service.NewStatsService(entriesRepo, store, ttl),
		AchievementsService: service.NewAchievementsService(service.AchievementsDeps{
			Entries:      entriesRepo,
			Achievements: achievementsRepo,
			Tournaments:  tournamentsRepo,
			Challenges:   challengesRepo,
		}, store, ttl),
		LeaderboardService:  service.NewLeaderboardService(entriesRepo, store, ttl),
		TournamentsService:  service.NewTournamentsService(tournamentsRepo, entriesRepo, store, ttl),
		ChallengesService:   service.NewChallengesService(challengesRepo, entriesRepo, store),
		SubscriptionService: service.NewSubscriptionService(subscriptionsRepo),
		JwtService:          jwtSvc,
		SupportHub:          support.NewHub(supportRepo, jwtSvc),
	}, api.Options{
		CORSAllowedOrigins: cfg.GetList("CORS_ALLOWED_ORIGINS"),
		RateLimitRPS:       cfg.GetFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     cfg.GetInt("RATE_LIMIT_BURST", 20),
		TrustProxy:         cfg.GetBool("TRUST_PROXY", false),
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
