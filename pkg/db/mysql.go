// pkg/db/mysql.go
// Helper koneksi MySQL (menggunakan database/sql)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Options struct {
	// DSN, bila diisi, menimpa Host/Port/Name/User/Password.
	DSN      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string

	MaxOpen int
	MaxIdle int

	// retry ping agar tahan saat container DB baru up
	PingAttempts int
	PingInterval time.Duration
}

// DSN membangun DSN go-sql-driver dengan parseTime=true (kolom DATE -> time.Time).
func (o Options) dsn() (string, error) {
	if o.DSN != "" {
		cfg, err := mysql.ParseDSN(o.DSN)
		if err != nil {
			return "", fmt.Errorf("parse db dsn: %w", err)
		}
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	}
	cfg := mysql.NewConfig()
	cfg.User = o.User
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, o.Port)
	cfg.DBName = o.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// Open membuka pool MySQL lalu ping dengan retry. Pool ditutup bila ping akhirnya gagal.
func Open(ctx context.Context, o Options, log *slog.Logger) (*sql.DB, error) {
	if log == nil {
		log = slog.Default()
	}
	dsn, err := o.dsn()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if o.MaxOpen > 0 {
		db.SetMaxOpenConns(o.MaxOpen)
	}
	if o.MaxIdle > 0 {
		db.SetMaxIdleConns(o.MaxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	attempts := max(o.PingAttempts, 1)
	interval := o.PingInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}

	var pingErr error
	for i := 1; i <= attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr = db.PingContext(pctx)
		cancel()
		if pingErr == nil {
			return db, nil
		}
		log.Warn("ping mysql failed", "try", i, "of", attempts, "error", pingErr)
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("mysql not ready after %d tries: %w", attempts, pingErr)
}
