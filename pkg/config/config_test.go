package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
profiles:
  outcar:
    terminate_on_match: true
    postprocess: float
    patterns:
      free_energy: 'free  energy   TOTEN\s*=\s*(\S+)'
    tables:
      forces:
        header: 'TOTAL-FORCE \(eV/Angst\)\n-+\n'
        row: '\s*(\S+)\s+(\S+)\s+(\S+)\n'
        footer: '-+\n'
        postprocess: float
        last_only: true
plot:
  palette: dark2
  stack: true
  yshift: 0.5
fetch:
  timeout: 10s
  requests_per_second: 2
`

func TestInit(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(testConfig), 0644))

	require.NoError(t, Init(cfgFile))
	require.NotNil(t, Config)

	profile, ok := Config.Profiles["outcar"]
	require.True(t, ok)
	assert.True(t, profile.TerminateOnMatch)
	assert.Equal(t, "float", profile.Postprocess)
	assert.Equal(t, `free  energy   TOTEN\s*=\s*(\S+)`, profile.Patterns["free_energy"])

	table, ok := profile.Tables["forces"]
	require.True(t, ok)
	assert.True(t, table.LastOnly)
	assert.Equal(t, "float", table.Postprocess)
	assert.NotEmpty(t, table.Header)
	assert.NotEmpty(t, table.Row)
	assert.NotEmpty(t, table.Footer)

	assert.Equal(t, "dark2", Config.Plot.Palette)
	assert.True(t, Config.Plot.Stack)
	assert.Equal(t, 0.5, Config.Plot.YShift)

	assert.Equal(t, 10*time.Second, Config.Fetch.Timeout)
	assert.Equal(t, 2, Config.Fetch.RequestsPerSecond)
}

func TestInit_MissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
