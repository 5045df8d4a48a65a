package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resale/backend/internal/domain/shipping"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRateTableDefaults(t *testing.T) {
	table, err := LoadRateTable("")
	require.NoError(t, err)

	zones := table.Zones()
	assert.Len(t, zones, 4)

	// Every zone must at least offer EMS and Surface
	for _, zone := range zones {
		methods := table.MethodsForZone(zone)
		assert.Contains(t, methods, shipping.MethodEMS)
		assert.Contains(t, methods, shipping.MethodSurface)
	}

	// ePacket does not serve zone 4
	assert.NotContains(t, table.MethodsForZone(4), shipping.MethodEPacket)
}

func TestLoadRateTableFromCSV(t *testing.T) {
	path := writeFile(t, "rates.csv", `method,zone,weight_min_g,weight_max_g,cost_jpy,delivery_days
EMS,1,0,500,1400,3-6
EMS,1,501,2000,2000,3-6
EMS,1,2001,,4400,3-6
`)

	table, err := LoadRateTable(path)
	require.NoError(t, err)
	assert.Equal(t, []shipping.Zone{1}, table.Zones())
	assert.Equal(t, []shipping.Method{shipping.MethodEMS}, table.MethodsForZone(1))
}

func TestLoadRateTableErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRateTable(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeFile(t, "rates.csv", "method,zone,weight_min_g\nEMS,1,0\n")
		_, err := LoadRateTable(path)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("unknown method", func(t *testing.T) {
		path := writeFile(t, "rates.csv", `method,zone,weight_min_g,weight_max_g,cost_jpy,delivery_days
Pigeon,1,0,500,1400,3-6
`)
		_, err := LoadRateTable(path)
		assert.Error(t, err)
	})

	t.Run("bad cost", func(t *testing.T) {
		path := writeFile(t, "rates.csv", `method,zone,weight_min_g,weight_max_g,cost_jpy,delivery_days
EMS,1,0,500,abc,3-6
`)
		_, err := LoadRateTable(path)
		assert.Error(t, err)
	})
}

func TestLoadZoneMapDefaults(t *testing.T) {
	m, err := LoadZoneMap("", 0)
	require.NoError(t, err)

	zone, err := m.Zone("US")
	require.NoError(t, err)
	assert.Equal(t, shipping.Zone(1), zone)

	zone, err = m.Zone("gb")
	require.NoError(t, err)
	assert.Equal(t, shipping.Zone(3), zone)

	// Strict by default
	_, err = m.Zone("XX")
	assert.Error(t, err)
}

func TestLoadZoneMapDefaultZone(t *testing.T) {
	m, err := LoadZoneMap("", 4)
	require.NoError(t, err)

	zone, err := m.Zone("XX")
	require.NoError(t, err)
	assert.Equal(t, shipping.Zone(4), zone)
}

func TestLoadZoneMapFromCSV(t *testing.T) {
	path := writeFile(t, "zones.csv", `country_code,country_name,zone
us,United States,1
AU,Australia,2
`)

	m, err := LoadZoneMap(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())

	country, err := m.Country("US")
	require.NoError(t, err)
	assert.Equal(t, "United States", country.Name)
	assert.Equal(t, shipping.Zone(1), country.Zone)
}

func TestLoadFeeScheduleDefaults(t *testing.T) {
	s, err := LoadFeeSchedule("")
	require.NoError(t, err)

	assert.Equal(t, "0.1275", s.FeeRate("unknown category").String())
	assert.Equal(t, "0.0875", s.FeeRate("electronics").String())
	assert.Equal(t, "0.04", s.FeeRate("motors_vehicles").String())
}

func TestLoadFeeScheduleFromCSV(t *testing.T) {
	path := writeFile(t, "fees.csv", `category,rate
default,0.10
Books,0.08
`)

	s, err := LoadFeeSchedule(path)
	require.NoError(t, err)
	assert.Equal(t, "0.08", s.FeeRate("books").String())
	assert.Equal(t, "0.1", s.FeeRate("anything").String())
}

func TestLoadFeeScheduleMissingDefault(t *testing.T) {
	path := writeFile(t, "fees.csv", "category,rate\nbooks,0.08\n")
	_, err := LoadFeeSchedule(path)
	assert.Error(t, err)
}
