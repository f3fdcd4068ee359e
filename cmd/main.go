package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/config"
	"github.com/Leganyst/homeservice-platform/internal/db"
	"github.com/Leganyst/homeservice-platform/internal/lifecycle"
	"github.com/Leganyst/homeservice-platform/internal/logging"
	"github.com/Leganyst/homeservice-platform/internal/metrics"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/ops"
	"github.com/Leganyst/homeservice-platform/internal/repository"
	"github.com/Leganyst/homeservice-platform/internal/seed"
	"github.com/Leganyst/homeservice-platform/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config overlay")
	flag.Parse()

	// 1. Конфиг: .env, переменные окружения, YAML поверх.
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New(config.LogConfig{}).Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.Log)

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории и движок жизненного цикла.
	store := repository.NewStore(gormDB)
	m := metrics.New()
	engine := lifecycle.New(store, lifecycle.WithLogger(log), lifecycle.WithMetrics(m))

	// 5. Демо-данные по флагу.
	if cfg.SeedDemo {
		if _, err := seed.Run(context.Background(), store, log); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	// 6. Настраиваем gRPC-сервер.
	srv := service.NewServer(service.Deps{
		Engine:    engine,
		Store:     store,
		Tokens:    auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer),
		Metrics:   m,
		Log:       log,
		RateLimit: cfg.RateLimit,
	})

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPC.Addr, err)
	}

	// 7. Служебный HTTP: /health и /metrics.
	opsServer := &http.Server{
		Addr:              cfg.Ops.Addr,
		Handler:           ops.NewRouter(sqlDB, m.Handler(), log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 8. Запускаем серверы в горутинах.
	go func() {
		log.WithField("addr", cfg.GRPC.Addr).Info("gRPC server listening")
		if err := srv.GRPC.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()
	go func() {
		log.WithField("addr", cfg.Ops.Addr).Info("ops server listening")
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ops serve: %v", err)
		}
	}()

	// 9. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down...")
	srv.Health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv.GRPC.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := opsServer.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("ops server shutdown")
	}
}
