package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	quotasv1 "github.com/wolfeidau/node-quotas/api/quotas/v1"
	"github.com/wolfeidau/node-quotas/internal/adapters/categoryupdatepublisher"
	"github.com/wolfeidau/node-quotas/internal/adapters/redissubscriber"
	"github.com/wolfeidau/node-quotas/internal/app"
	"github.com/wolfeidau/node-quotas/internal/config"
	grpcserver "github.com/wolfeidau/node-quotas/internal/delivery/grpc"
	"github.com/wolfeidau/node-quotas/internal/delivery/grpc/interceptors"
	httpserver "github.com/wolfeidau/node-quotas/internal/delivery/http"
	"github.com/wolfeidau/node-quotas/internal/factory"
	"github.com/wolfeidau/node-quotas/internal/logger"
	"github.com/wolfeidau/node-quotas/internal/metrics"
	"github.com/wolfeidau/node-quotas/internal/ports"
	"github.com/wolfeidau/node-quotas/internal/storage/memory"
	"github.com/wolfeidau/node-quotas/internal/storage/postgresdb"
	"github.com/wolfeidau/node-quotas/internal/storage/redisdb"
	"github.com/wolfeidau/node-quotas/internal/version"
)

const shutdownTimeout = 5 * time.Second

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "/etc/quotas/config.yaml", "Path to configuration file")
}

func main() {
	flag.Parse()

	if flag.Arg(0) == "version" {
		version.PrintVersion()
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "quotas exited with error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var (
		counters     ports.CounterStore
		categoryRepo ports.CategoryRepo
		subscriber   *redissubscriber.CategoryUpdatesSubscriber
		subRdb       *redis.Client
		logg         *logger.Logger
	)

	// --------- Логгер ---------
	if cfg.Logger.File != "" {
		f, err := os.OpenFile(cfg.Logger.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			// логгер не инициализирован, пишем в stderr
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logg = logger.NewWithWriter(f, &cfg.Logger)
		defer f.Close()
	} else {
		logg = logger.New(&cfg.Logger)
	}
	logg.Info("logger initialized", "level", cfg.Logger.Level, "workmode", cfg.Database.Workmode)

	m := metrics.New()

	// --------- Хранилища ---------
	localWorkmode := cfg.Database.Workmode != config.WorkmodeExternal
	if localWorkmode {
		counters = memory.NewCountersDB()
		categoryRepo = memory.NewCategoriesDB()
	} else {
		rdb, err := factory.NewClientCounters(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis counters store: %w", err)
		}
		countersRepo := redisdb.NewCountersRepo(rdb)
		defer countersRepo.Close()
		counters = countersRepo

		categoryDB, err := postgresdb.NewCategoryDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize PostgreSQL category repository: %w", err)
		}
		defer categoryDB.Close()
		categoryRepo = categoryDB

		subRdb, err = factory.NewClientSubscriber(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis subscriber client: %w", err)
		}
		defer subRdb.Close()
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------- Сервисы ---------
	quotaSvc := app.NewQuotaService(counters, categoryRepo, cfg.Quotas, logg, m)
	if err := quotaSvc.Init(rootCtx); err != nil {
		return fmt.Errorf("quota service init: %w", err)
	}

	var publisher ports.CategoryUpdatesPublisher
	channel := cfg.Database.Redis.Subscriber.CategoriesChannel
	if localWorkmode {
		publisher = categoryupdatepublisher.NewLocalCategoryUpdatesPublisher(quotaSvc)
	} else {
		publisher = categoryupdatepublisher.NewRedisCategoryUpdatesPublisher(subRdb, channel)
		subscriber = redissubscriber.NewCategoryUpdatesSubscriber(subRdb, quotaSvc, channel, logg)
	}
	categorySvc := app.NewCategoryService(categoryRepo, publisher)

	// -------- gRPC-сервер --------
	addr := net.JoinHostPort(cfg.Server.Address, fmt.Sprint(cfg.Server.Port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRequestIDInterceptor(),
			interceptors.UnaryLoggingInterceptor(logg),
			interceptors.UnaryMetricsInterceptor(m),
		),
	)
	quotasv1.RegisterQuotasServer(grpcSrv, grpcserver.NewServer(quotaSvc, categorySvc))

	// -------- HTTP: метрики и healthz --------
	httpAddr := net.JoinHostPort(cfg.HTTP.Address, fmt.Sprint(cfg.HTTP.Port))
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           httpserver.NewRouter(m.Handler(), quotaSvc, logg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(rootCtx)

	// graceful shutdown по отмене контекста (сигнал или падение другой горутины)
	g.Go(func() error {
		<-ctx.Done()

		logg.Info("shutting down servers...")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shCtx); err != nil {
			logg.Error("http server shutdown", "error", err)
		}

		done := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			logg.Info("gRPC server stopped gracefully")
		case <-time.After(shutdownTimeout):
			logg.Info("gRPC server force stop")
			grpcSrv.Stop()
		}

		return ctx.Err()
	})

	if subscriber != nil {
		g.Go(func() error {
			logg.Info("starting categories updates subscriber", "channel", channel)
			return subscriber.Start(ctx)
		})
	}

	g.Go(func() error {
		logg.Info("gRPC server listening", "addr", addr)
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		logg.Info("http server listening", "addr", httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("error from goroutines", "error", err)
		return err
	}

	logg.Info("application stopped gracefully")
	return nil
}
