package api

import (
	"net/http"
	"time"

	"codecade/internal/api/handler"
	"codecade/internal/app/service"
	"codecade/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	progressService *service.ProgressService,
	problemService *service.ProblemService,
	planService *service.StudyPlanService,
	leaderboardService *service.LeaderboardService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present and puts claims in context;
	// Authenticator enforces it on protected route groups.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK"}`))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		userHandler := handler.NewUserHandler(userService)
		v1.Route("/user", userHandler.RegisterRoutes)
		v1.Route("/battle", userHandler.RegisterBattleRoutes)

		lessonHandler := handler.NewLessonHandler(progressService, userService)
		v1.Route("/lessons", lessonHandler.RegisterRoutes)

		problemHandler := handler.NewProblemHandler(problemService, progressService, userService)
		v1.Route("/problems", problemHandler.RegisterRoutes)

		studyBotHandler := handler.NewStudyBotHandler(planService)
		v1.Route("/studybot", studyBotHandler.RegisterRoutes)

		leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
		v1.Route("/leaderboard", leaderboardHandler.RegisterRoutes)
	})

	return r
}
