package route

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Table(t *testing.T) {
	reg := NewRegistry().Register("Page", nopFactory).Register("webview", nopFactory)

	table, err := reg.Table([]Spec{
		{Pattern: "fave://item/{id}", Builder: "page", Title: "Item"},
		{Pattern: "https://example.com/{p}", Builder: "WEBVIEW"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Item", table.Entries()[0].Name)
	assert.Equal(t, "https://example.com/{p}", table.Entries()[1].Name)
	assert.Equal(t, []string{"page", "webview"}, reg.Names())
}

func TestRegistry_UnknownBuilder(t *testing.T) {
	reg := NewRegistry().Register("page", nopFactory)

	_, err := reg.Table([]Spec{{Pattern: "fave://x", Builder: "missing"}})
	require.ErrorIs(t, err, ErrUnknownBuilder)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "resolve", cfgErr.Op)
	assert.Contains(t, err.Error(), "known: page")
}

func TestSwappable_StoreReplacesTable(t *testing.T) {
	first, err := NewTable(Entry{Name: "a", Pattern: "fave://a", Factory: nopFactory})
	require.NoError(t, err)
	second, err := NewTable(Entry{Name: "b", Pattern: "fave://b", Factory: nopFactory})
	require.NoError(t, err)

	s := NewSwappable(first)
	target, _ := url.Parse("fave://b")

	_, ok := s.Match(target)
	assert.False(t, ok)

	s.Store(second)
	m, ok := s.Match(target)
	require.True(t, ok)
	assert.Equal(t, "b", m.Entry.Name)
	assert.Same(t, second, s.Load())
}

func TestSwappable_NilTable(t *testing.T) {
	s := NewSwappable(nil)
	target, _ := url.Parse("fave://b")
	_, ok := s.Match(target)
	assert.False(t, ok)
}
