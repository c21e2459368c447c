package risk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "contium/pkg/domain-errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadReferenceTable(t *testing.T) {
	t.Run("loads bands", func(t *testing.T) {
		path := writeFile(t, `
bands:
  "8471.30": {product: Laptops, min: 400, max: 900, avg: 650}
  "0901.21": {product: Coffee, min: 2, max: 10, avg: 5}
`)
		table, err := LoadReferenceTable(path)
		require.NoError(t, err)

		band, ok := table.Lookup("0901.21")
		require.True(t, ok)
		assert.Equal(t, 5.0, band.Avg)
		assert.Len(t, table.Entries(), 2)
		assert.Equal(t, "0901.21", table.Entries()[0].HSCode)
	})

	t.Run("rejects zero average", func(t *testing.T) {
		path := writeFile(t, `
bands:
  "8471.30": {min: 0, max: 0, avg: 0}
`)
		_, err := LoadReferenceTable(path)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects average outside band", func(t *testing.T) {
		path := writeFile(t, `
bands:
  "8471.30": {min: 500, max: 600, avg: 700}
`)
		_, err := LoadReferenceTable(path)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := LoadReferenceTable(writeFile(t, "bands: {}\n"))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReferenceTable(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	band, ok := table.Lookup("8517.12")
	require.True(t, ok)
	assert.Equal(t, PriceBand{Product: "Smartphones", Min: 200, Max: 1200, Avg: 700}, band)

	_, ok = table.Lookup("0000.00")
	assert.False(t, ok)
	assert.Len(t, table.Entries(), 5)
}
