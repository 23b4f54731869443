package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/limbo/journowl/internal/service"
	"github.com/limbo/journowl/pkg/cleanup"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	entriesService      service.EntriesServiceI
	statsService        service.StatsServiceI
	achievementsService service.AchievementsServiceI
	leaderboardService  service.LeaderboardServiceI
	tournamentsService  service.TournamentsServiceI
	challengesService   service.ChallengesServiceI
	subscriptionService service.SubscriptionServiceI
	jwtService          JWTServiceI
	supportHub          http.Handler
	limiter             *ipLimiter
	corsOrigins         []string
	trustProxy          bool
}

type ServicesList struct {
	UserService         service.UserServiceI
	EntriesService      service.EntriesServiceI
	StatsService        service.StatsServiceI
	AchievementsService service.AchievementsServiceI
	LeaderboardService  service.LeaderboardServiceI
	TournamentsService  service.TournamentsServiceI
	ChallengesService   service.ChallengesServiceI
	SubscriptionService service.SubscriptionServiceI
	JwtService          JWTServiceI
	// Serves /ws/support. Optional
	SupportHub http.Handler
}

type Options struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	// Take the client address from X-Forwarded-For / X-Real-IP. Only safe
	// behind a proxy that overwrites those headers
	TrustProxy bool
}

func New(servicesOptions *ServicesList, opts ...Options) *Server {
	o := Options{RateLimitRPS: 10, RateLimitBurst: 20}
	if len(opts) > 0 {
		o = opts[0]
	}
	if len(o.CORSAllowedOrigins) == 0 {
		o.CORSAllowedOrigins = []string{"*"}
	}
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		entriesService:      servicesOptions.EntriesService,
		statsService:        servicesOptions.StatsService,
		achievementsService: servicesOptions.AchievementsService,
		leaderboardService:  servicesOptions.LeaderboardService,
		tournamentsService:  servicesOptions.TournamentsService,
		challengesService:   servicesOptions.ChallengesService,
		subscriptionService: servicesOptions.SubscriptionService,
		jwtService:          servicesOptions.JwtService,
		supportHub:          servicesOptions.SupportHub,
		limiter:             newIPLimiter(o.RateLimitRPS, o.RateLimitBurst),
		corsOrigins:         o.CORSAllowedOrigins,
		trustProxy:          o.TrustProxy,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) mountEndpoints() {
	if s.trustProxy {
		s.mx.Use(middleware.RealIP)
	}
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{headerTotalUsers, headerUserRank, headerUserScore},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.RateLimitMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if s.supportHub != nil {
		// The socket authenticates with its first frame, not a header
		s.mx.Handle("/ws/support", s.supportHub)
	}

	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Delete("/account", s.DeleteAccount)
			r.Put("/account/timezone", s.SetTimezone)

			r.Post("/entries", s.CreateEntry)
			r.Get("/entries", s.GetEntries)
			r.Get("/entries/{id}", s.GetEntry)
			r.Put("/entries/{id}", s.UpdateEntry)
			r.Delete("/entries/{id}", s.DeleteEntry)

			r.Get("/stats", s.GetStats)
			r.Get("/leaderboard/{board}", s.GetLeaderboard)
			r.Get("/notifications/check-reminders", s.CheckReminders)
			r.Get("/achievements", s.GetAchievements)
			r.Get("/achievements/stats", s.GetLevelStats)

			r.Get("/challenges", s.GetChallenges)
			r.Post("/challenges/{id}/complete", s.CompleteChallenge)
			r.Get("/tournaments", s.GetTournaments)
			r.Post("/tournaments/{id}/join", s.JoinTournament)
			r.Get("/tournaments/{id}/leaderboard", s.GetTournamentLeaderboard)

			r.Get("/subscription", s.GetSubscription)
			r.Post("/subscription/top-up", s.TopUp)
			r.Put("/subscription/tier", s.ChangeTier)
			r.Post("/prompts/generate", s.GeneratePrompt)
		})
	})
}

// Run serves until SIGINT/SIGTERM, then drains requests and runs cleanup jobs.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		cleanup.CleanUp()
		return err
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	cleanup.CleanUp()
	return err
}
