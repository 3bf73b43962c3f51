package route

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/riblet/internal/domain/rib"
)

func nopFactory(Match) rib.Builder {
	var b rib.BuilderFunc
	b = func() *rib.Riblet { return rib.New(b) }
	return b
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestTable_ExactDeepLink(t *testing.T) {
	table, err := NewTable(Entry{Name: "item", Pattern: "fave://item/42", Factory: nopFactory})
	require.NoError(t, err)

	m, ok := table.Match(mustURL(t, "fave://item/42"))
	require.True(t, ok)
	assert.Equal(t, "item", m.Entry.Name)
	assert.Equal(t, "fave://item/42", m.Canonical)

	_, ok = table.Match(mustURL(t, "fave://item/43"))
	assert.False(t, ok)
	_, ok = table.Match(mustURL(t, "https://item/42"))
	assert.False(t, ok)
}

func TestTable_VariablesAndQueryParams(t *testing.T) {
	table, err := NewTable(
		Entry{Name: "item", Pattern: "fave://item/{id:[0-9]+}", Factory: nopFactory},
		Entry{Name: "deal", Pattern: "https://{city}.example.com/deals/{slug}", Factory: nopFactory},
	)
	require.NoError(t, err)

	m, ok := table.Match(mustURL(t, "fave://item/42?source=push"))
	require.True(t, ok)
	assert.Equal(t, "item", m.Entry.Name)
	assert.Equal(t, Params{"id": "42", "source": "push"}, m.Params)

	_, ok = table.Match(mustURL(t, "fave://item/abc"))
	assert.False(t, ok)

	m, ok = table.Match(mustURL(t, "https://kl.example.com/deals/spa-day"))
	require.True(t, ok)
	assert.Equal(t, "deal", m.Entry.Name)
	assert.Equal(t, "kl", m.Params["city"])
	assert.Equal(t, "spa-day", m.Params["slug"])
}

func TestTable_QueryPattern(t *testing.T) {
	table, err := NewTable(Entry{Name: "search", Pattern: "fave://search?q={q}", Factory: nopFactory})
	require.NoError(t, err)

	m, ok := table.Match(mustURL(t, "fave://search?q=massage"))
	require.True(t, ok)
	assert.Equal(t, "massage", m.Params["q"])

	_, ok = table.Match(mustURL(t, "fave://search"))
	assert.False(t, ok)
}

func TestTable_FirstMatchWins(t *testing.T) {
	table, err := NewTable(
		Entry{Name: "specific", Pattern: "fave://item/1", Factory: nopFactory},
		Entry{Name: "generic", Pattern: "fave://item/{id}", Factory: nopFactory},
	)
	require.NoError(t, err)

	m, ok := table.Match(mustURL(t, "fave://item/1"))
	require.True(t, ok)
	assert.Equal(t, "specific", m.Entry.Name)

	m, ok = table.Match(mustURL(t, "fave://item/2"))
	require.True(t, ok)
	assert.Equal(t, "generic", m.Entry.Name)
}

func TestTable_EmptyPathMatchesRoot(t *testing.T) {
	table, err := NewTable(Entry{Name: "home", Pattern: "fave://home", Factory: nopFactory})
	require.NoError(t, err)

	_, ok := table.Match(mustURL(t, "fave://home"))
	assert.True(t, ok)
	_, ok = table.Match(mustURL(t, "fave://home/"))
	assert.True(t, ok)
}

func TestTable_HostPatternLowercased(t *testing.T) {
	table, err := NewTable(Entry{Pattern: "https://Example.com/{Path}", Factory: nopFactory})
	require.NoError(t, err)

	m, ok := table.Match(mustURL(t, "https://example.com/a"))
	require.True(t, ok)
	assert.Equal(t, "a", m.Params["Path"])
	assert.Equal(t, "https://Example.com/{Path}", m.Entry.Name)
}

func TestTable_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{name: "nil factory", entry: Entry{Pattern: "fave://x"}, want: ErrNilFactory},
		{name: "no scheme", entry: Entry{Pattern: "item/42", Factory: nopFactory}, want: ErrInvalidPattern},
		{name: "opaque", entry: Entry{Pattern: "mailto:a@b.c", Factory: nopFactory}, want: ErrInvalidPattern},
		{name: "unbalanced var", entry: Entry{Pattern: "fave://item/{id", Factory: nopFactory}, want: ErrInvalidPattern},
		{name: "empty query key", entry: Entry{Pattern: "fave://s?=x", Factory: nopFactory}, want: ErrInvalidPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entry)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table
	_, ok := table.Match(mustURL(t, "fave://item/1"))
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Entries())
}

func TestTable_EntriesInOrder(t *testing.T) {
	table, err := NewTable(
		Entry{Name: "a", Pattern: "fave://a", Factory: nopFactory},
		Entry{Name: "b", Pattern: "fave://b", Factory: nopFactory},
	)
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, "b", entries[1].Name)
}
