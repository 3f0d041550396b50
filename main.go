package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"tweeter/internal/config"
	"tweeter/internal/handlers"
	"tweeter/internal/middleware"
	"tweeter/internal/repositories"
	"tweeter/internal/services"
	"tweeter/pkg/jsonstore"
	"tweeter/pkg/rabbitmq"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("parse log level: %v", err)
	}
	logger.SetLevel(level)

	app, cleanup, err := NewApp(cfg, logger)
	if err != nil {
		logger.Fatalf("build app: %v", err)
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Errorf("error during shutdown: %v", err)
	}
	logger.Info("server gracefully stopped")
}

// NewApp wires repositories, services and handlers into a Fiber app. The
// returned cleanup releases database and broker connections.
func NewApp(cfg config.Config, logger *logrus.Logger) (*fiber.App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	userRepo, tweetRepo, closeRepos, err := buildRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepos)

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		publisher = client
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				logger.Warnf("close RabbitMQ client: %v", err)
			}
		})
		logger.WithField("exchange", cfg.RabbitMQExchange).Info("publishing events to RabbitMQ")
	} else {
		logger.Info("RABBITMQ_URL not set, events are disabled")
	}

	userService := services.NewUserService(userRepo, publisher, logger)
	tweetService := services.NewTweetService(tweetRepo, publisher, logger)

	userHandler := handlers.NewUserHandler(userService, logger)
	tweetHandler := handlers.NewTweetHandler(tweetService, logger)

	app := fiber.New(fiber.Config{
		AppName:               "tweeter",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"storage": cfg.StorageDriver,
			"events":  publisher != nil,
		})
	})

	userHandler.RegisterRoutes(app)
	tweetHandler.RegisterRoutes(app)

	return app, cleanup, nil
}

func buildRepositories(cfg config.Config) (repositories.UserRepository, repositories.TweetRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := repositories.OpenGORM(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if err := repositories.AutoMigrate(db); err != nil {
			closeDB()
			return nil, nil, nil, err
		}
		return repositories.NewGORMUserRepository(db), repositories.NewGORMTweetRepository(db), closeDB, nil
	case config.DriverJSON:
		if cfg.StoreInit {
			for _, path := range []string{cfg.UsersFile, cfg.TweetsFile} {
				if err := jsonstore.Init(path); err != nil {
					return nil, nil, nil, err
				}
			}
		}
		return repositories.NewJSONUserRepository(cfg.UsersFile), repositories.NewJSONTweetRepository(cfg.TweetsFile), func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
