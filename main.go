package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"

	"devsync/app/runlock"
	"devsync/global"
	"devsync/initialize"
)

func main() {
	configPath := flag.String("config", "", "Path to yaml config file (env vars apply either way)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		global.Logger.Fatal().Err(err).Msg("synchronization failed")
	}
}

func run(configPath string) error {
	app, err := initialize.Build(configPath)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()

	if lock := runlock.New(app.Cfg.Redis.Addr, uuid.NewString(), time.Duration(app.Cfg.Redis.LockTTL)*time.Second); lock != nil {
		if err := lock.Acquire(ctx); err != nil {
			return err
		}
		defer lock.Release(ctx)
	}

	summary, err := app.Sync.Run(ctx)
	if err != nil {
		return err
	}
	if summary.Skipped {
		return nil
	}
	return app.Reporter.Render(os.Stdout)
}
