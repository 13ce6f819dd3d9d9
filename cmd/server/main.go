package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecade/internal/api"
	"codecade/internal/app/service"
	"codecade/internal/common/security"
	"codecade/internal/domain/repository"
	"codecade/internal/platform/cache"
	"codecade/internal/platform/config"
	"codecade/internal/platform/database"

	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load Configuration
	config.Load()
	log.Info().Msg("Configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()
	log.Info().Msg("JWT initialized")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	progressRepo := repository.NewPgProgressRepository(database.DB)
	problemRepo := repository.NewPgProblemRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	progressService := service.NewProgressService(userRepo, progressRepo)
	userService := service.NewUserService(userRepo, progressRepo, progressService)
	problemService := service.NewProblemService(problemRepo)
	planService := service.NewStudyPlanService()
	leaderboardService := service.NewLeaderboardService(userRepo, cache.RDB)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, progressService, problemService, planService, leaderboardService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Str("port", config.AppConfig.APIPort).Msg("Could not listen")
		}
	}()
	log.Info().Msg("Server started successfully")

	<-stop // Wait for interrupt signal

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully")
}
