package main

import (
	"log"
	"os"

	echoweb "github.com/trezcool/masterly/apps/web/echo"
	"github.com/trezcool/masterly/assets"
	"github.com/trezcool/masterly/core"
	emailsvc "github.com/trezcool/masterly/services/email"
	logsvc "github.com/trezcool/masterly/services/logger"
)

func main() {
	logger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.LoadConfig(".")
	errAndDie(logger, err)

	zl, err := logsvc.NewZapLogger(conf)
	errAndDie(logger, err)
	appLogger := logsvc.NewRollbarLogger(zl, conf)
	defer appLogger.Close()

	mailSvc := emailsvc.NewConsoleService(core.NewEmailRenderer(assets.EmailTemplates(), conf), appLogger, conf)
	opts, err := echoweb.NewOptions(conf, appLogger, mailSvc)
	errAndDie(logger, err)
	defer func() { _ = opts.DB.Close() }()

	// start CLI
	cli := commandLine{
		opts:   opts,
		routes: echoweb.NewServer(opts).Routes,
		out:    os.Stdout,
		outFd:  int(os.Stdout.Fd()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %s\n", err)
		}
		_ = opts.DB.Close()
		appLogger.Close()
		os.Exit(1)
	}
}

func errAndDie(logger *log.Logger, err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
