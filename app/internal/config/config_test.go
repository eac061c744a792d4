package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, "pt-BR", cfg.Filter.Locale)
	require.Equal(t, 300*time.Millisecond, cfg.Filter.Debounce)
	require.Equal(t, 720*time.Hour, cfg.Share.TTL)
	require.Empty(t, cfg.Catalog.URL)
	require.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: "9090"
filter:
  locale: en-US
  debounce: 150ms
log:
  level: debug
`), 0o644))
	t.Setenv("APP_PORT", "7070")
	t.Setenv("FILTER_DEBOUNCE", "1s")
	t.Setenv("CATALOG_URL", "https://catalog.example.com/api")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.HTTP.Port)
	require.Equal(t, "en-US", cfg.Filter.Locale)
	require.Equal(t, time.Second, cfg.Filter.Debounce)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "https://catalog.example.com/api", cfg.Catalog.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "bad duration", env: map[string]string{"FILTER_DEBOUNCE": "soon"}},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "short secret", env: map[string]string{"SHARE_SECRET": "abc"}},
		{name: "port not numeric", env: map[string]string{"APP_PORT": "http"}},
		{name: "catalog url", env: map[string]string{"CATALOG_URL": "not a url"}},
		{name: "broken yaml", file: "http: [port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))
			}
			cfg, err := Load(path)
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
