package main

import (
	"context"
	"log"
	"os"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/pipeline"
	"MarketBoard/internal/publisher"
	"MarketBoard/internal/recorder"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketBoard starting...")

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] AWS credentials missing: %v", err)
	}

	// Init fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	// Init publisher
	uploader := publisher.NewS3Uploader(cfg.AWS.Bucket, cfg.AWS.Region, cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey)
	pub := publisher.NewPublisher(uploader)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runner := pipeline.NewRunner(col, pub, rec, cfg.Report.Period)
	if err := runner.Run(context.Background(), cfg.TickerGroups()); err != nil {
		log.Fatalf("[FATAL] pipeline run: %v", err)
	}

	log.Println("[INFO] all groups processed")
}
