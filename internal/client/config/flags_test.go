package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags_ShortForms(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "http://dash.example:9000", "-t", "30", "status"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFlags(cfg))

	assert.Equal(t, "http://dash.example:9000", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ".", cfg.DownloadDir, "unset flags keep defaults")
}

func Test_parseFlags_LongForms(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{
		"testbin",
		"--server", "http://example.org:9999",
		"--timeout", "99",
		"--downloads=/tmp/exports",
		"--session", "alt-session.json",
		"status",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFlags(cfg))

	assert.Equal(t, "http://example.org:9999", cfg.ServerBaseURL)
	assert.Equal(t, 99*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/exports", cfg.DownloadDir)
	assert.Equal(t, "alt-session.json", cfg.SessionFile)
}

func TestLoadConfig_LongFlagsReachTheConfig(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "--server", "http://example.org:9999", "--timeout", "99", "status"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://example.org:9999", cfg.ServerBaseURL)
	assert.Equal(t, 99*time.Second, cfg.RequestTimeout)
}

func Test_parseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "edit", "--id", "7", "--text", "hello", "-a", "http://dash.example:9000"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFlags(cfg))

	assert.Equal(t, "http://dash.example:9000", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
