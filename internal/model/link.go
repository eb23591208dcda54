package model

import (
	"fmt"
	"net/url"
	"strings"
)

// URL schemes accepted for favorite links
const (
	SchemeHTTP  = "http://"
	SchemeHTTPS = "https://"
)

// NormalizeLinkURL reduces a URL to its duplicate-detection form: the scheme
// is dropped, the host is lowercased, and a single trailing slash is removed,
// so "https://Foo.com/" and "foo.com" collide.
func NormalizeLinkURL(raw string) string {
	s := strings.TrimSpace(raw)

	lower := strings.ToLower(s)
	for _, scheme := range []string{SchemeHTTPS, SchemeHTTP} {
		if strings.HasPrefix(lower, scheme) {
			s = s[len(scheme):]
			break
		}
	}
	s = strings.TrimSuffix(s, "/")

	// Host comparison is case-insensitive; path and query case is preserved
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		return strings.ToLower(s[:i]) + s[i:]
	}
	return strings.ToLower(s)
}

// ValidateLinkURL checks that a URL can be stored as a favorite link. A bare
// host without scheme is accepted ("foo.com"); values url.Parse rejects, or
// without a plausible host, are not.
func ValidateLinkURL(raw string) error {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fmt.Errorf("URL must not be empty")
	}
	if strings.ContainsAny(s, " \t\n\r") {
		return fmt.Errorf("URL must not contain whitespace")
	}

	parsed, err := url.Parse(ensureScheme(s))
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	host := parsed.Hostname()
	if !strings.Contains(host, ".") && !strings.EqualFold(host, "localhost") {
		return fmt.Errorf("URL host %q looks incomplete", host)
	}
	return nil
}

// LinkTarget returns the openable form of a stored link URL, prefixing https
// when the user saved a bare host
func LinkTarget(raw string) (*url.URL, error) {
	return url.Parse(ensureScheme(strings.TrimSpace(raw)))
}

func ensureScheme(s string) string {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, SchemeHTTP) || strings.HasPrefix(lower, SchemeHTTPS) {
		return s
	}
	return SchemeHTTPS + s
}
