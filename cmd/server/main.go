package main

import (
	"os"

	"farmdesk/config"
	"farmdesk/database"
	"farmdesk/internal/server"
	"farmdesk/pkg/logging"
	uploadSvcImp "farmdesk/pkg/upload/serviceImp"
)

func main() {
	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.Config{}).Fatalf("config: %v", err)
	}
	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Infof("[cfg] %s", cfg)

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}

	// 3) Presigned uploads (disabled without a bucket)
	presigner, err := uploadSvcImp.NewS3(cfg.S3)
	if err != nil {
		log.WithError(err).Fatal("s3 presigner")
	}
	if !cfg.S3.Enabled() {
		log.Warn("S3_BUCKET/S3_ACCESS_KEY/S3_SECRET_KEY unset; /upload-url will return 503")
	}

	// 4) Echo
	e := server.New(server.Options{
		DB:             db,
		Presigner:      presigner,
		UploadsEnabled: cfg.S3.Enabled(),
		Log:            log.WithField("component", "http"),
		Metrics:        cfg.MetricsEnabled,
	})

	// 5) Start
	log.Infof("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
