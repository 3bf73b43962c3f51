package logging

// TruncateURL shortens u to at most maxLen runes for log output.
func TruncateURL(u string, maxLen int) string {
	if maxLen <= 3 {
		return u
	}
	runes := []rune(u)
	if len(runes) <= maxLen {
		return u
	}
	return string(runes[:maxLen-3]) + "..."
}
