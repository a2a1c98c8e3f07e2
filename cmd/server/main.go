package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"equisports-backend/internal/config"
	"equisports-backend/internal/database"
	"equisports-backend/internal/handlers"
	"equisports-backend/internal/logging"
	"equisports-backend/internal/repository"
	"equisports-backend/internal/router"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func main() {
	// Load .env (ignore error in production, env vars are set directly)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.Logging)

	if !cfg.HasCredentials() {
		slog.Warn("DB_USER/DB_PASS not set, database calls will fail")
	}

	// A failed connection is logged, not fatal: the HTTP listener still starts
	// and data endpoints fail at call time.
	client, err := database.Connect(cfg.MongoURI(), cfg.DBTimeout)
	if err != nil {
		slog.Error("failed to create MongoDB client", "error", err)
	}
	db := database.Database(client, cfg.DBName)

	userRepo := repository.NewUserRepo(db, cfg.UsersCollection)
	equipmentRepo := repository.NewEquipmentRepo(db, cfg.EquipmentCollection)

	if client != nil {
		go checkDatabase(client, userRepo, cfg)
	}

	handler := router.New(router.Handlers{
		Users:     handlers.NewUserHandler(userRepo),
		Equipment: handlers.NewEquipmentHandler(equipmentRepo),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, client)
		}),
	}, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server running", "address", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdown(srv, client)
}

// checkDatabase pings MongoDB while the listener comes up and creates the
// user indexes once the cluster answers.
func checkDatabase(client *mongo.Client, userRepo *repository.UserRepo, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()

	if err := database.Ping(ctx, client); err != nil {
		slog.Error("MongoDB ping failed", "error", err)
		return
	}
	slog.Info("connected to MongoDB", "database", cfg.DBName)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		slog.Warn("failed to create user indexes", "error", err)
	}
}

func shutdown(srv *http.Server, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shut down http server", "error", err)
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to disconnect from MongoDB", "error", err)
		}
	}
	slog.Info("server stopped")
}
