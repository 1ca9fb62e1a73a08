package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/idgen/simple"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/migration"
	"github.com/avstrong/hotel/internal/storage/memory"
	"github.com/avstrong/hotel/internal/transport/console"
)

func Run(l *logger.Logger, conf config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	storage := memory.New(memory.Config{L: l})

	if conf.SeedDemoData {
		if err := migration.Up(ctx, l, storage); err != nil {
			return fmt.Errorf("up demo migration: %w", err)
		}

		l.LogInfo("Demo migration has been applied")
	}

	idGen := simple.New()
	hotelManager := hotel.New(l, storage, idGen)

	session := console.New(console.Conf{
		L:         l,
		In:        os.Stdin,
		Out:       os.Stdout,
		HotelName: conf.HotelName,
		ReportDir: conf.ReportDir,
		Now:       nil,
	}, hotelManager)

	l.LogInfo("Application is running as %v...", conf.HotelName)

	done := make(chan error, 1)

	go func() {
		done <- session.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("run console session: %w", err)
		}
	case <-ctx.Done():
		l.LogInfo("Received shutdown signal")
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
