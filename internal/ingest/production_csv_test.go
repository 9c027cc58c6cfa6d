package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodal-oilgas/internal/ingest"
	"nodal-oilgas/internal/util"
)

func TestReadProductionCSV(t *testing.T) {
	in := "\ufeffDate,Well_ID,oil_vol,water_vol\n" +
		"2025-09-01,W-01,120.5,880\n" +
		"2025-09-02, W-01 ,,900\n"

	rows, err := ingest.ReadProductionCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-09-01", rows[0].ProdDate.Format("2006-01-02"))
	assert.Equal(t, "W-01", rows[0].WellID)
	assert.True(t, rows[0].OilVol.Valid)
	assert.Equal(t, 120.5, rows[0].OilVol.Float64)

	assert.False(t, rows[1].OilVol.Valid)
	assert.Equal(t, 900.0, rows[1].WaterVol.Float64)
}

func TestReadProductionCSVErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "date,well_id,oil_vol\n2025-09-01,W,1\n",
		"bad date":       "date,well_id,oil_vol,water_vol\n09/01/2025,W,1,2\n",
		"bad number":     "date,well_id,oil_vol,water_vol\n2025-09-01,W,abc,2\n",
		"negative":       "date,well_id,oil_vol,water_vol\n2025-09-01,W,1,-2\n",
		"no well":        "date,well_id,oil_vol,water_vol\n2025-09-01,,1,2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.ReadProductionCSV(strings.NewReader(in))
			require.Error(t, err)
			assert.Equal(t, util.CodeBadInput, util.CodeOf(err))
		})
	}
}
