package initialize

import (
	"fmt"

	"gorm.io/gorm"

	"devsync/app/db"
	"devsync/app/headspin"
	"devsync/app/models"
	"devsync/app/report"
	"devsync/app/services"
	"devsync/config"
	"devsync/global"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Client   *headspin.Client
	Sync     *services.SyncService
	Reporter *report.Reporter
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	global.Logger.Info().Str("db_type", cfg.DB.Type).Msg("connecting to database")
	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.DeviceInventory{}, &models.AVBoxMapping{}, &models.DeviceLedger{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	client := headspin.NewClient(cfg.API)
	syncSvc := services.NewSyncService(gdb, client, global.Logger)
	reporter := report.NewReporter(gdb, cfg.Report.Limit)

	return &App{Cfg: cfg, DB: gdb, Client: client, Sync: syncSvc, Reporter: reporter}, nil
}

// Close releases the database handle; safe on every exit path.
func (a *App) Close() {
	if a.DB == nil {
		return
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
