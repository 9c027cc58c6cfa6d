// repositories/mysql/production_repo.go
// Repo untuk data produksi harian (alokasi minyak & air per sumur)
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ProductionRepo struct{ DB *sql.DB }

type ProdRow struct {
	ProdDate time.Time
	WellID   string
	OilVol   sql.NullFloat64
	WaterVol sql.NullFloat64
}

type ProdFilter struct {
	WellID    string
	ExactWell bool // true: well_id = ?, false: LIKE %well_id%
	Start  *time.Time // inclusive
	End    *time.Time // exclusive
	Limit  int
	Offset int
}

const (
	defaultLimit = 200
	maxLimit     = 1000
	insertBatch  = 500
)

// Skema:
//   prod_allocation_daily(date DATE, well_id VARCHAR(64), oil_vol DOUBLE, water_vol DOUBLE,
//                         PRIMARY KEY (date, well_id))
func buildListQuery(f ProdFilter) (string, []any) {
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := `
		SELECT date, well_id, oil_vol, water_vol
		FROM prod_allocation_daily
		WHERE 1=1`
	args := []any{}

	switch {
	case f.WellID == "":
	case f.ExactWell:
		q += ` AND well_id = ?`
		args = append(args, f.WellID)
	default:
		q += ` AND well_id LIKE ?`
		args = append(args, "%"+f.WellID+"%")
	}
	if f.Start != nil {
		q += ` AND date >= ?`
		args = append(args, f.Start.Format(time.DateOnly))
	}
	if f.End != nil {
		q += ` AND date < ?`
		args = append(args, f.End.Format(time.DateOnly))
	}

	q += ` ORDER BY date DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)
	return q, args
}

func (r *ProductionRepo) ListDaily(ctx context.Context, f ProdFilter) ([]ProdRow, error) {
	q, args := buildListQuery(f)
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query production daily: %w", err)
	}
	defer rows.Close()

	var out []ProdRow
	for rows.Next() {
		var rrow ProdRow
		if err := rows.Scan(&rrow.ProdDate, &rrow.WellID, &rrow.OilVol, &rrow.WaterVol); err != nil {
			return nil, err
		}
		out = append(out, rrow)
	}
	return out, rows.Err()
}

func buildUpsert(n int) string {
	return "INSERT INTO prod_allocation_daily(date, well_id, oil_vol, water_vol) VALUES " + tuples(n, 4) +
		" ON DUPLICATE KEY UPDATE oil_vol=VALUES(oil_vol), water_vol=VALUES(water_vol)"
}

// UpsertDaily menulis baris dalam batch di dalam satu transaksi; mengembalikan jumlah baris dikirim.
func (r *ProductionRepo) UpsertDaily(ctx context.Context, in []ProdRow) (int, error) {
	if len(in) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}

	sent := 0
	for start := 0; start < len(in); start += insertBatch {
		end := min(start+insertBatch, len(in))
		chunk := in[start:end]
		args := make([]any, 0, len(chunk)*4)
		for _, row := range chunk {
			args = append(args, row.ProdDate.Format(time.DateOnly), row.WellID, row.OilVol, row.WaterVol)
		}
		if _, err := tx.ExecContext(ctx, buildUpsert(len(chunk)), args...); err != nil {
			_ = tx.Rollback()
			return sent, fmt.Errorf("upsert production rows %d-%d: %w", start, end, err)
		}
		sent += len(chunk)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert: %w", err)
	}
	return sent, nil
}
