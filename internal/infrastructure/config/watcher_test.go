package config

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloadsAndNotifies(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[database]\npath = \"/tmp/a.sqlite\"\n")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var (
		mu     sync.Mutex
		routes []RouteConfig
	)
	mgr.OnConfigChange(func(cfg *Config) {
		mu.Lock()
		defer mu.Unlock()
		routes = cfg.Routes
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	updated := "[database]\npath = \"/tmp/a.sqlite\"\n\n[[routes]]\npattern = \"fave://home\"\nbuilder = \"page\"\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(routes) == 1 && routes[0].Pattern == "fave://home"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Len(t, mgr.Get().Routes, 1)
}
