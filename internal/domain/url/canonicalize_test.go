package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/riblet/internal/domain/entity"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  CanonicalizeOptions
		want  string
	}{
		{
			name:  "strips utm from deep link",
			input: "fave://item/42?utm_source=x",
			want:  "fave://item/42",
		},
		{
			name:  "lowercases scheme and host",
			input: "HTTPS://Example.COM/Path",
			want:  "https://example.com/Path",
		},
		{
			name:  "keeps non tracking params",
			input: "https://example.com/a?utm_campaign=c&id=7&fbclid=zz",
			want:  "https://example.com/a?id=7",
		},
		{
			name:  "untouched query keeps order",
			input: "https://example.com/a?b=2&a=1",
			want:  "https://example.com/a?b=2&a=1",
		},
		{
			name:  "keeps fragment",
			input: "https://example.com/a?gclid=1#top",
			want:  "https://example.com/a#top",
		},
		{
			name:  "extra tracking params",
			input: "https://example.com/?ref=abc&q=go",
			opts:  CanonicalizeOptions{ExtraTrackingParams: []string{"REF"}},
			want:  "https://example.com/?q=go",
		},
		{
			name:  "tracking key case insensitive",
			input: "fave://deal/1?UTM_Medium=email",
			want:  "fave://deal/1",
		},
		{
			name:  "trims whitespace",
			input: "  fave://item/1  ",
			want:  "fave://item/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	once, err := Canonicalize("HTTPS://Example.com/x?utm_source=a&z=1", CanonicalizeOptions{})
	require.NoError(t, err)
	twice, err := Canonicalize(once, CanonicalizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestCanonicalize_Errors(t *testing.T) {
	_, err := Canonicalize("   ", CanonicalizeOptions{})
	assert.ErrorIs(t, err, ErrEmptyTarget)

	_, err = Canonicalize("http://[::1", CanonicalizeOptions{})
	assert.ErrorIs(t, err, ErrMalformedTarget)

	_, err = Canonicalize("example.com/no-scheme", CanonicalizeOptions{})
	assert.ErrorIs(t, err, ErrMalformedTarget)
}

func TestIsTrackingParam(t *testing.T) {
	assert.True(t, IsTrackingParam("utm_source"))
	assert.True(t, IsTrackingParam(" FBCLID "))
	assert.False(t, IsTrackingParam("id"))
	assert.False(t, IsTrackingParam(""))
}

func TestSchemes_Classify(t *testing.T) {
	s := DefaultSchemes()
	tests := []struct {
		input string
		want  entity.TargetClass
	}{
		{"fave://item/42", entity.ClassInternal},
		{"https://example.com", entity.ClassWeb},
		{"http://example.com", entity.ClassWeb},
		{"mailto:a@b.c", entity.ClassOther},
		{"about:blank", entity.ClassOther},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, u, err := CanonicalizeURL(tt.input, CanonicalizeOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Classify(u))
		})
	}

	assert.Equal(t, entity.ClassOther, s.Classify(nil))
}
