package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/visitdash/internal/config"
)

func TestCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "finder", "visits"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("visits:\n  path: ventas.xlsx\n"), 0644))

	configPath, logLevel = path, "debug"
	t.Cleanup(func() { configPath, logLevel = "", "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ventas.xlsx", visitsSource(cfg).String())

	logLevel = "loud"
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestSources(t *testing.T) {
	cfg := config.Default()
	assert.True(t, finderSource(cfg).IsRemote())

	cfg.Finder.URL = ""
	cfg.Finder.Path = "regiones.xlsx"
	assert.Equal(t, "regiones.xlsx", finderSource(cfg).String())

	schema, finderSchema := schemas(cfg)
	assert.Equal(t, "comercial", schema.Salesperson)
	assert.Equal(t, 6, schema.DefaultColumns)
	assert.Equal(t, "Dirección", finderSchema.Address)
}
