package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediBookNotify/internal/config"
	"mediBookNotify/internal/modules/notifications/application/handler"
	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/infrastructure"
	transport "mediBookNotify/internal/modules/notifications/interface"
	"mediBookNotify/internal/platform/broker"
	"mediBookNotify/internal/shared/auth"
	"mediBookNotify/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB-backed notification store
	mongoClient, err := connectMongo(ctx, cfg.Mongo)
	if err != nil {
		slog.Error("mongo connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	repository := infrastructure.NewMongoNotificationRepository(mongoClient.Database(cfg.Mongo.Database))

	// Redis backplane: one client publishes, a second holds the subscription.
	pubClient, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		slog.Error("redis connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pubClient.Close()
	subClient, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		slog.Error("redis connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer subClient.Close()

	backplane := infrastructure.NewRedisBackplane(pubClient, subClient, cfg.Redis.Channel)
	hub := infrastructure.NewHub(backplane)
	if err := hub.Start(ctx); err != nil {
		slog.Error("hub start failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Dispatcher: one handler per appointment topic.
	dispatchUC := usecase.NewDispatchUseCase(repository, hub)
	registry := infrastructure.NewHandlerRegistry()
	registry.Register(&handler.AppointmentCreatedHandler{Dispatch: dispatchUC})
	registry.Register(&handler.AppointmentApprovedHandler{Dispatch: dispatchUC})
	registry.Register(&handler.AppointmentRejectedHandler{Dispatch: dispatchUC})
	registry.Register(&handler.AppointmentCancelledHandler{Dispatch: dispatchUC})

	if err := broker.Start(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, registry.Topics(), registry.Dispatch); err != nil {
		slog.Error("kafka consumer start failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("event consumers started", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID), slog.Any("topics", registry.Topics()))

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	notificationUC := usecase.NewNotificationUseCase(repository)
	notificationHandler := transport.NewNotificationHandler(notificationUC)

	e.GET("/health", transport.Health)
	e.GET("/ws", transport.NewWebsocketHandler(hub, cfg.Websocket.SendBuffer))
	api := e.Group("/api/notifications", auth.Middleware(validator))
	notificationHandler.Register(api)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()
	e.Close()
}

func connectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
