package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "PROBE_TIMEOUT", "OPEN_BROWSER", "PRESENTATION", "LOG_LEVEL", "MMDB_CITY_PATH", "MMDB_ASN_PATH"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout)
	assert.True(t, cfg.OpenBrowser)
	assert.Equal(t, PresentationStyled, cfg.Presentation)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000/", cfg.BrowserURL())
}

func TestLoadReadsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("PROBE_TIMEOUT", "3s")
	t.Setenv("OPEN_BROWSER", "false")
	t.Setenv("PRESENTATION", "PLAIN")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MMDB_ASN_PATH", "/tmp/asn.mmdb")

	cfg := Load()
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "http://127.0.0.1:8080/", cfg.BrowserURL())
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout)
	assert.False(t, cfg.OpenBrowser)
	assert.Equal(t, PresentationPlain, cfg.Presentation)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/asn.mmdb", cfg.ASNDBPath)
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "99999")
	t.Setenv("PROBE_TIMEOUT", "soon")
	t.Setenv("OPEN_BROWSER", "maybe")
	t.Setenv("PRESENTATION", "fancy")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout)
	assert.True(t, cfg.OpenBrowser)
	assert.Equal(t, PresentationStyled, cfg.Presentation)
}

func TestLoadDotEnvReportsMissingFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLogLevelReadsValueSeededFromDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	assert.Equal(t, "info", LogLevel())

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=Warn\nPORT=4000\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "warn", LogLevel())
	// Values already in the environment win over the file.
	assert.Equal(t, "", os.Getenv("PORT"))
}
