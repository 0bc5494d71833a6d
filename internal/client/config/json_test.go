package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"server_endpoint_addr": "clip.example:9000",
		"request_timeout":      "2500ms",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"server_endpoint_addr": "only.addr:1",
	})

	t.Run("loads all fields", func(t *testing.T) {
		os.Args = []string{"gophclip", "-config", full, "fetch", "1234"}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "clip.example:9000", cfg.ServerEndpointAddr)
		assert.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		os.Args = []string{"gophclip", "-c", partial}

		cfg := &Config{RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "only.addr:1", cfg.ServerEndpointAddr)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"gophclip"}

		cfg := &Config{ServerEndpointAddr: "defaults:1234"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.ServerEndpointAddr)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"gophclip", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
