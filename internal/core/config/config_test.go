package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-user-table/internal/core/config"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, c.Table.PageSize)
	assert.Equal(t, "sample", c.Source.Kind)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, "users:list", c.Source.CacheKey)
}

func TestLoad_FileAndEnv(t *testing.T) {
	p := writeYAML(t, `
table:
  pageSize: 10
source:
  kind: http
  url: http://upstream/api/v1/users/list
log:
  level: warn
`)
	t.Setenv("APP_LOG_LEVEL", "error")

	c, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Table.PageSize)
	assert.Equal(t, "http", c.Source.Kind)
	assert.Equal(t, "http://upstream/api/v1/users/list", c.Source.URL)
	assert.Equal(t, "error", c.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Zero page size", body: "table:\n  pageSize: 0\n"},
		{name: "Unknown source", body: "source:\n  kind: ftp\n"},
		{name: "HTTP without url", body: "source:\n  kind: http\n"},
		{name: "Broken yaml", body: "table: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeYAML(t, tt.body))
			assert.Error(t, err)
		})
	}
}
