package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/padelclub/padelengine/internal/cache/mem"
	"github.com/padelclub/padelengine/internal/config"
	"github.com/padelclub/padelengine/internal/logger"
	"github.com/padelclub/padelengine/internal/migrate"
	"github.com/padelclub/padelengine/internal/service"
	"github.com/padelclub/padelengine/internal/storage"
	"github.com/padelclub/padelengine/internal/storage/sqlite"
	"github.com/padelclub/padelengine/internal/web"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := storage.New(cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate.Up(db); err != nil {
		return err
	}

	store := sqlite.New(db)
	engine := service.New(log, store, store, store, mem.New())
	server := web.New(engine, cfg.Server, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(server.Serve)
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	log.WithField("addr", cfg.Server.Host).Info("server started")
	return eg.Wait()
}
