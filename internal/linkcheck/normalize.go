package linkcheck

import "strings"

// Normalize reduces a raw URL to the key verdicts are stored under: a leading
// "http://" and then a leading "https://" are removed, and everything from the
// first "/" on is dropped. The host is not validated or lower-cased.
func Normalize(rawURL string) string {
	s := strings.TrimPrefix(rawURL, "http://")
	s = strings.TrimPrefix(s, "https://")
	host, _, _ := strings.Cut(s, "/")

	return host
}
