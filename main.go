package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/grubhouse/internal/config"
	"example.com/grubhouse/internal/infra/idgen"
	"example.com/grubhouse/internal/infra/persistence/memory"
	httpapi "example.com/grubhouse/internal/interface/http"
	"example.com/grubhouse/internal/lib/logger"
	dishuc "example.com/grubhouse/internal/usecase/dish"
	orderuc "example.com/grubhouse/internal/usecase/order"
)

func main() {
	cfg, err := config.Load(getenv("CONFIG_PATH", ""))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.New(cfg.Logger.Level)
	logg.Info("starting grubhouse", slog.String("addr", cfg.HTTPServer.Addr))

	ids := idgen.NewUUID()
	dishRepo := memory.NewDishRepository(ids)
	orderRepo := memory.NewOrderRepository(ids)

	if cfg.Seed.Path != "" {
		dishes, orders, err := memory.LoadSeed(cfg.Seed.Path)
		if err != nil {
			// The service can run with empty stores.
			logg.Warn("seed load failed", slog.String("error", err.Error()))
		} else {
			dishRepo.Load(dishes)
			orderRepo.Load(orders)
			logg.Info("seeded stores",
				slog.Int("dishes", len(dishes)),
				slog.Int("orders", len(orders)))
		}
	}

	api := httpapi.NewAPI(httpapi.Dependencies{
		DishService:      dishuc.NewService(dishRepo),
		OrderService:     orderuc.NewService(orderRepo),
		MetricsNamespace: cfg.Metrics.Namespace,
	})

	srv := httpapi.NewServer(cfg.HTTPServer.Addr, api.Router(), time.Duration(cfg.HTTPServer.Timeout))

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("http server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logg.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("shutdown failed", slog.String("error", err.Error()))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
