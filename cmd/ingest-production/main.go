/*
Pakai contoh:

	go run ./cmd/ingest-production -csv data/prod_daily.csv
	go run ./cmd/ingest-production -csv data/prod_daily.csv -dsn "root:secret@tcp(127.0.0.1:3306)/mcp" -dry-run

Kolom CSV wajib: date (YYYY-MM-DD), well_id, oil_vol, water_vol (boleh kosong = NULL).
Baris di-upsert ke prod_allocation_daily (kunci: date + well_id).
*/

// cmd/ingest-production/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/ingest"
	mysqlrepo "nodal-oilgas/internal/repositories/mysql"
	"nodal-oilgas/internal/util"
	"nodal-oilgas/pkg/db"
)

var (
	csvPath = flag.String("csv", "", "CSV path (wajib)")
	dsn     = flag.String("dsn", "", "MySQL DSN (default dari DB_DSN / MYSQL_*)")
	dryRun  = flag.Bool("dry-run", false, "validasi CSV saja tanpa menulis ke DB")
)

func main() {
	flag.Parse()
	cfg := config.Load()
	log := util.NewLogger("text", cfg.LogLevel)

	if *csvPath == "" {
		log.Error("-csv is required")
		os.Exit(2)
	}
	f, err := os.Open(*csvPath)
	if err != nil {
		log.Error("open csv", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := ingest.ReadProductionCSV(f)
	if err != nil {
		log.Error("parse csv", "file", *csvPath, "error", err)
		os.Exit(1)
	}
	log.Info("[ok] parsed", "file", *csvPath, "rows", len(rows))
	if *dryRun {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := db.Options{
		DSN:          cfg.MySQL.DSN,
		Host:         cfg.MySQL.Host,
		Port:         cfg.MySQL.Port,
		Name:         cfg.MySQL.DB,
		User:         cfg.MySQL.User,
		Password:     cfg.MySQL.Password,
		PingAttempts: 3,
		PingInterval: time.Second,
	}
	if *dsn != "" {
		opts.DSN = *dsn
	}
	conn, err := db.Open(ctx, opts, log)
	if err != nil {
		log.Error("connect mysql", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	start := time.Now()
	n, err := (&mysqlrepo.ProductionRepo{DB: conn}).UpsertDaily(ctx, rows)
	if err != nil {
		log.Error("upsert", "sent", n, "error", err)
		os.Exit(1)
	}
	log.Info("[ok] upserted", "rows", n, "dur", time.Since(start).Round(time.Millisecond))
}
