package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	echoweb "github.com/trezcool/masterly/apps/web/echo"
	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	emailsvc "github.com/trezcool/masterly/services/email"
	logsvc "github.com/trezcool/masterly/services/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.LoadConfig(".")
	if err != nil {
		return err
	}

	zl, err := logsvc.NewZapLogger(conf)
	if err != nil {
		return err
	}
	logger := logsvc.NewRollbarLogger(zl, conf)
	defer logger.Close()

	mailSvc := emailsvc.NewService(core.NewEmailRenderer(assets.EmailTemplates(), conf), logger, conf)

	opts, err := echoweb.NewOptions(conf, logger, mailSvc)
	if err != nil {
		return err
	}

	// =========================================================================
	// Start Web Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	opts.SignalShutdown = stop

	server := echoweb.NewServer(opts)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(server.Start)

	// =========================================================================
	// Shutdown

	grp.Go(func() error {
		<-ctx.Done()
		logger.Info("Start shutdown...")

		// give outstanding requests a deadline for completion
		sctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Stop(sctx); err != nil {
			logger.Error("could not stop server gracefully", err)
			return err
		}
		return opts.DB.Close()
	})

	return grp.Wait()
}
