package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8501", cfg.Listen)
	assert.Equal(t, "Dirección", cfg.Finder.AddressColumn)
	assert.Equal(t, 6, cfg.Visits.DefaultColumns)

	d, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitdash.yaml")
	content := `
listen: ":9000"
http_timeout: 5s
logging:
  level: debug
visits:
  path: /data/visitas.xlsx.gz
  default_columns: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/data/visitas.xlsx.gz", cfg.Visits.Path)
	assert.Equal(t, 4, cfg.Visits.DefaultColumns)
	// untouched fields keep their defaults
	assert.Equal(t, "comercial", cfg.Visits.SalespersonColumn)
	assert.Equal(t, DefaultFinderURL, cfg.Finder.URL)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("listen: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("http_timeout: soon\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "http_timeout")

	level := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(level, []byte("logging:\n  level: loud\n"), 0o644))
	_, err = Load(level)
	assert.ErrorContains(t, err, "logging.level")
}
