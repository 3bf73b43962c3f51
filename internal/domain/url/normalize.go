// Package url provides URI canonicalization and classification for routing.
package url

import (
	"net/url"
	"strings"
)

// Normalize turns user input into an absolute URI where it plausibly is one.
// Inputs with a scheme are returned unchanged, bare domains get https://,
// localhost gets http://. Anything else is returned as is.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if HasScheme(input) {
		return input
	}

	if input == "localhost" || strings.HasPrefix(input, "localhost:") || strings.HasPrefix(input, "localhost/") {
		return "http://" + input
	}

	if LooksLikeURL(input) {
		return "https://" + input
	}

	return input
}

// HasScheme reports whether input starts with "scheme:" followed by "//",
// or is one of the opaque forms about: and mailto:.
func HasScheme(input string) bool {
	if strings.HasPrefix(input, "about:") || strings.HasPrefix(input, "mailto:") {
		return true
	}
	idx := strings.Index(input, "://")
	if idx <= 0 {
		return false
	}
	for i, r := range input[:idx] {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && !(r >= '0' && r <= '9') && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if HasScheme(input) {
		return true
	}

	// Contains a dot and no spaces = likely a URL
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain extracts the host from a URL string, without a "www." prefix.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
