// internal/ingest/production_csv.go
// Parser CSV ekspor alokasi produksi harian: date, well_id, oil_vol, water_vol.

package ingest

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	mysqlrepo "nodal-oilgas/internal/repositories/mysql"
	"nodal-oilgas/internal/util"
)

var productionColumns = []string{"date", "well_id", "oil_vol", "water_vol"}

func headerIndex(h []string) map[string]int {
	m := map[string]int{}
	for i, c := range h {
		c = strings.TrimSpace(strings.ToLower(c))
		c = strings.TrimPrefix(c, "\ufeff")
		m[c] = i
	}
	return m
}

func ensureColumns(idx map[string]int, need []string) error {
	for _, c := range need {
		if _, ok := idx[c]; !ok {
			return util.BadInput(fmt.Sprintf("missing column %q in CSV header", c))
		}
	}
	return nil
}

func parseVolume(s string) (sql.NullFloat64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	if v < 0 {
		return sql.NullFloat64{}, fmt.Errorf("negative volume %g", v)
	}
	return sql.NullFloat64{Float64: v, Valid: true}, nil
}

// ReadProductionCSV membaca seluruh CSV; error pertama dilaporkan dengan nomor baris.
func ReadProductionCSV(r io.Reader) ([]mysqlrepo.ProdRow, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, util.BadInput("empty CSV")
		}
		return nil, util.BadInput(fmt.Sprintf("read CSV header: %v", err))
	}
	idx := headerIndex(head)
	if err := ensureColumns(idx, productionColumns); err != nil {
		return nil, err
	}

	var out []mysqlrepo.ProdRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, util.BadInput(fmt.Sprintf("line %d: %v", line, err))
		}
		get := func(col string) string {
			if i := idx[col]; i < len(rec) {
				return rec[i]
			}
			return ""
		}

		d, err := time.Parse(time.DateOnly, strings.TrimSpace(get("date")))
		if err != nil {
			return nil, util.BadInput(fmt.Sprintf("line %d: bad date %q", line, get("date")))
		}
		well := strings.TrimSpace(get("well_id"))
		if well == "" {
			return nil, util.BadInput(fmt.Sprintf("line %d: empty well_id", line))
		}
		oil, err := parseVolume(get("oil_vol"))
		if err != nil {
			return nil, util.BadInput(fmt.Sprintf("line %d: oil_vol: %v", line, err))
		}
		water, err := parseVolume(get("water_vol"))
		if err != nil {
			return nil, util.BadInput(fmt.Sprintf("line %d: water_vol: %v", line, err))
		}
		out = append(out, mysqlrepo.ProdRow{ProdDate: d, WellID: well, OilVol: oil, WaterVol: water})
	}
	return out, nil
}
