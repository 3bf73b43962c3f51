package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrEmptyTarget is returned for blank navigation targets.
	ErrEmptyTarget = errors.New("empty target")

	// ErrMalformedTarget is returned for targets that cannot be parsed as an absolute URI.
	ErrMalformedTarget = errors.New("malformed target")
)

// trackingParams are exact (lowercase) query keys treated as tracking noise.
// Any key starting with "utm_" is also stripped.
var trackingParams = map[string]struct{}{
	"fbclid":  {},
	"gclid":   {},
	"msclkid": {},
	"dclid":   {},
	"yclid":   {},
	"mc_cid":  {},
	"mc_eid":  {},
	"_hsenc":  {},
	"_hsmi":   {},
	"igshid":  {},
}

// CanonicalizeOptions tunes Canonicalize.
type CanonicalizeOptions struct {
	// ExtraTrackingParams are additional query keys to strip, matched case-insensitively.
	ExtraTrackingParams []string
}

// IsTrackingParam reports whether key is a known tracking query parameter.
func IsTrackingParam(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return false
	}
	if strings.HasPrefix(key, "utm_") {
		return true
	}
	_, ok := trackingParams[key]
	return ok
}

// Canonicalize returns the canonical string form of raw.
// See CanonicalizeURL.
func Canonicalize(raw string, opts CanonicalizeOptions) (string, error) {
	s, _, err := CanonicalizeURL(raw, opts)
	return s, err
}

// CanonicalizeURL lowercases the scheme and host and strips tracking query
// parameters. Path, fragment and the order of untouched queries are kept.
// It has no side effects and never guesses a scheme: raw must be absolute.
func CanonicalizeURL(raw string, opts CanonicalizeOptions) (string, *url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil, ErrEmptyTarget
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrMalformedTarget, err)
	}
	if parsed.Scheme == "" {
		return "", nil, fmt.Errorf("%w: missing scheme in %q", ErrMalformedTarget, raw)
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)

	if parsed.RawQuery != "" {
		stripQuery(parsed, opts.ExtraTrackingParams)
	}

	return parsed.String(), parsed, nil
}

func stripQuery(parsed *url.URL, extra []string) {
	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		// Leave undecodable queries untouched rather than dropping data.
		return
	}

	stripped := false
	for key := range query {
		if IsTrackingParam(key) || containsFold(extra, key) {
			query.Del(key)
			stripped = true
		}
	}
	if stripped {
		parsed.RawQuery = query.Encode()
		parsed.ForceQuery = false
	}
}

func containsFold(list []string, key string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), key) {
			return true
		}
	}
	return false
}
