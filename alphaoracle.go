package main

import (
	stdContext "context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alphaoracle/alphaoracle/external/slack"
	"github.com/alphaoracle/alphaoracle/metrics/server"
	"github.com/alphaoracle/alphaoracle/migration"
	"github.com/alphaoracle/alphaoracle/orareg"
	"github.com/alphaoracle/alphaoracle/rest"
	"github.com/alphaoracle/alphaoracle/utils"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/alphaoracle/alphaoracle/utils/env"
	"github.com/alphaoracle/alphaoracle/utils/initializer"
	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/alphaoracle/alphaoracle/workers/ingest"
	"github.com/robfig/cron"
	"go.uber.org/zap/zapcore"
)

var (
	cronWg sync.WaitGroup
	c      *cron.Cron
)

func shutdown() {
	// stop crons so no new ones start
	if c != nil {
		c.Stop()
	}

	// wait for existing crons to finish
	cronWg.Wait()

	timeout := time.Second
	ctx, cancel := stdContext.WithTimeout(stdContext.Background(), timeout)
	defer cancel()

	if err := rest.Shutdown(ctx); err != nil {
		log.Error("rest shutdown failed", "error", err)
	}
}

func init() {
	// register env defaults
	initializer.Initialize()

	flag.Parse()

	// log errors to slack
	log.Logger().AddCallback(
		"alphaoracle_slack_errors",
		zapcore.ErrorLevel,
		func(i interface{}) {
			msg := slack.NewServerError()
			msg.SetBody(i)
			slack.Notify(msg)
		},
	)

	// set deployment level on logger
	log.Logger().SetDeploymentLevel(env.GetVar("ORACLE_MODE"))
}

func main() {
	if err := migration.Migration(db.DB()).Migrate(); err != nil {
		log.Fatal("database migration failed", "error", err)
	}
	defer db.DB().Close()

	go func() {
		if err := server.Serve(); err != nil && err != http.ErrServerClosed {
			log.Error("stopped metrics server", "error", err)
		}
	}()

	if ingest.LiveMode() {
		c = cron.New()

		schedule := env.GetVar("INGEST_SCHEDULE")

		log.Info("starting ingestion scheduler", "schedule", schedule)

		c.AddFunc(schedule, func() {
			cronWg.Add(1)
			defer cronWg.Done()
			ingest.Work()
		})

		c.Start()

		// pull a fresh snapshot right away rather than waiting for
		// the first scheduled run
		go ingest.Work()
	} else {
		log.Info("running in demo mode - scheduled ingestion disabled")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		log.Info("shutdown signal received")
		shutdown()
	}()

	log.Info("alpha oracle is live",
		"mode", env.GetVar("ORACLE_MODE"),
		"port", env.GetVar("ORACLE_PORT"),
		"version", utils.Version,
		"sha", utils.Sha1hash)

	if err := rest.Start(env.GetVar("ORACLE_PORT"), orareg.Services); err != nil {
		if !strings.Contains(err.Error(), "Server closed") {
			log.Fatal("rest server unexpectedly exited", "error", err)
		}
	}

	log.Info("graceful shutdown complete")
}
