package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"artivisual-app/config"
	"artivisual-app/database"
	routes "artivisual-app/internal/app/http"
	"artivisual-app/internal/catalog"
	logs "artivisual-app/internal/infra/log"
	"artivisual-app/internal/infra/slot"
	"artivisual-app/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	dotenv, err := config.LoadEnv()
	if err != nil {
		slog.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(config.LOG_LEVEL, config.LOG_PRETTY)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(logger)
	if !dotenv {
		logger.Info("No .env file found. Using system environment variables.")
	}

	ctx := context.Background()

	durable, err := openSlot(ctx)
	if err != nil {
		logger.Error("Failed to open durable slot", slog.String("backend", config.SLOT_BACKEND), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Durable slot ready", slog.String("backend", config.SLOT_BACKEND))

	sessions := session.NewStore(ctx, durable, session.MockResolver{AdminEmail: config.ADMIN_EMAIL}, session.Options{
		Delay:  config.AUTH_DELAY,
		Logger: logger.With(slog.String("component", "session")),
	})
	store := catalog.NewStore(nil, catalog.Options{
		Logger: logger.With(slog.String("component", "catalog")),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Sessions:  sessions,
		Catalog:   store,
		JWTSecret: []byte(config.JWT_SECRET),
		Registry:  reg,
	})

	logger.Info("Listening", slog.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.Error("Server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func openSlot(ctx context.Context) (slot.Slot, error) {
	switch config.SLOT_BACKEND {
	case config.SlotPostgres:
		db, err := database.InitDB(config.DB_URL)
		if err != nil {
			return nil, err
		}
		return slot.NewGorm(db), nil
	case config.SlotRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     config.REDIS_ADDR,
			Password: config.REDIS_PASSWORD,
			DB:       config.REDIS_DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return slot.NewRedis(client), nil
	default:
		return slot.NewMemory(), nil
	}
}
