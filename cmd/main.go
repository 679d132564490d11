package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "github.com/shenikar/geo_content_engine/docs"
	"github.com/shenikar/geo_content_engine/internal/catalog"
	"github.com/shenikar/geo_content_engine/internal/config"
	v1 "github.com/shenikar/geo_content_engine/internal/handler/http/v1"
	"github.com/shenikar/geo_content_engine/internal/metrics"
	"github.com/shenikar/geo_content_engine/internal/narration"
	"github.com/shenikar/geo_content_engine/internal/presenter"
	"github.com/shenikar/geo_content_engine/internal/repository"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/shenikar/geo_content_engine/internal/stream"
	"github.com/shenikar/geo_content_engine/internal/webhook"
	"github.com/shenikar/geo_content_engine/pkg/logger"
	mqttclient "github.com/shenikar/geo_content_engine/pkg/mqtt"
	"github.com/shenikar/geo_content_engine/pkg/postgres"
	"github.com/shenikar/geo_content_engine/pkg/rabbitmq"
	redisclient "github.com/shenikar/geo_content_engine/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

// @title Geo Content Engine API
// @version 1.0
// @description Location-triggered content engine: place catalog, device position streams and narration control.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Подключение к MQTT брокеру
	mqttClient, err := mqttclient.NewMQTTClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to MQTT broker: %v", err)
	}
	defer mqttClient.Disconnect(250)
	log.Info("Successfully connected to MQTT broker")

	// Подключение к RabbitMQ
	amqpConn, err := rabbitmq.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()
	log.Info("Successfully connected to RabbitMQ")

	m := metrics.New()

	// Инициализация репозиториев
	placeRepo := repository.NewPlaceRepository(dbpool, redisClient)
	visitRepo := repository.NewVisitRepository(dbpool)
	cooldownRepo := repository.NewCooldownRepository(redisClient, cfg.CooldownTTL)

	// Каталог мест
	var source catalog.Source = placeRepo
	if cfg.CatalogSource == config.CatalogSourceFile {
		source = catalog.NewFileSource(cfg.CatalogFile, log)
	}
	places := catalog.NewHolder(source, log)
	places.OnReload(func(c *catalog.Catalog) {
		m.CatalogPlaces.Set(float64(c.Len()))
	})
	if _, err := places.Reload(ctx); err != nil {
		log.WithError(err).Warn("Starting with an empty catalog")
	}

	// Слой показа
	presentations, err := presenter.NewRabbitPresenter(amqpConn, cfg.PresentationExchange, log)
	if err != nil {
		log.Fatalf("Failed to set up presentation exchange: %v", err)
	}

	// Инициализация издателя вебхуков и журнала посещений
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	visits := service.NewVisitLogger(visitRepo, webhookPublisher, log)

	// Инициализация сервисов
	devices := service.NewDeviceService(service.DeviceDeps{
		Catalog:   places,
		Presenter: presentations,
		Visits:    visits,
		Cooldowns: cooldownRepo,
		Audio: func(deviceID string) narration.Audio {
			return narration.NewMQTTAudio(mqttClient, deviceID, cfg.MQTTQoS, cfg.NarrationEnabled, log)
		},
		Metrics: m,
		Logger:  log,
	}, service.DeviceOptionsFromConfig(cfg))
	placeService := service.NewPlaceService(placeRepo, visitRepo, places, log, cfg)

	// Поток позиций из MQTT
	subscriber := stream.NewSubscriber(mqttClient, devices, cfg.MQTTQoS, cfg.MQTTHandlerTimeout, log)
	if err := subscriber.Start(); err != nil {
		log.Fatalf("Failed to subscribe to device topics: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(placeService, devices, log, cfg)
	health := v1.NewHealthChecker(map[string]v1.HealthCheck{
		"postgres": dbpool.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		"mqtt": func(context.Context) error {
			return mqttConnected(mqttClient)
		},
		"rabbitmq": func(context.Context) error {
			if amqpConn.IsClosed() {
				return errors.New("connection closed")
			}
			return nil
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           v1.NewRouter(handler, health, m.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		webhookWorker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		places.Run(gctx, cfg.CatalogReloadInterval)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		if err := subscriber.Stop(); err != nil {
			log.WithError(err).Warn("Failed to unsubscribe from device topics")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server forced to shutdown")
		}
		devices.Close()
		if err := presentations.Close(); err != nil {
			log.WithError(err).Warn("Failed to close presentation channel")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Service stopped with error")
		os.Exit(1)
	}
	log.Info("Server gracefully stopped")
}

func mqttConnected(client pahomqtt.Client) error {
	if !client.IsConnectionOpen() {
		return errors.New("not connected")
	}
	return nil
}
