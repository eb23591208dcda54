package model

import "testing"

func TestNormalizeLinkURL(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"https://foo.com", "foo.com"},
		{"http://foo.com", "foo.com"},
		{"foo.com", "foo.com"},
		{"foo.com/", "foo.com"},
		{"https://foo.com/", "foo.com"},
		{"HTTPS://Foo.COM", "foo.com"},
		{"  https://foo.com  ", "foo.com"},
		{"https://Foo.com/Docs/Page", "foo.com/Docs/Page"},
		{"foo.com/a/b?Q=1", "foo.com/a/b?Q=1"},
		{"https://foo.com#Top", "foo.com#Top"},
	}

	for _, test := range tests {
		result := NormalizeLinkURL(test.raw)
		if result != test.expected {
			t.Errorf("NormalizeLinkURL(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

// The same page saved with and without a scheme must collide on its key, so
// duplicate detection treats them as one link.
func TestNormalizeLinkURL_SchemeInsensitive(t *testing.T) {
	variants := []string{
		"foo.com",
		"foo.com/",
		"http://foo.com",
		"https://foo.com",
		"https://foo.com/",
		"HTTPS://FOO.COM",
	}

	want := NormalizeLinkURL(variants[0])
	for _, v := range variants {
		if got := NormalizeLinkURL(v); got != want {
			t.Errorf("NormalizeLinkURL(%q) = %q, expected %q to match all variants", v, got, want)
		}
	}
}

func TestValidateLinkURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"foo.com", false},
		{"https://foo.com", false},
		{"http://foo.com/path?a=1", false},
		{"localhost", false},
		{"http://localhost:8080", false},
		{"sub.domain.example.org", false},
		{"", true},
		{"   ", true},
		{"foo", true},
		{"not a url.com", true},
		{"https://", true},
	}

	for _, test := range tests {
		err := ValidateLinkURL(test.raw)
		if (err != nil) != test.wantErr {
			t.Errorf("ValidateLinkURL(%q) error = %v, expected error: %v", test.raw, err, test.wantErr)
		}
	}
}

func TestLinkTarget(t *testing.T) {
	tests := []struct {
		raw            string
		expectedScheme string
		expectedHost   string
	}{
		{"foo.com", "https", "foo.com"},
		{"http://foo.com", "http", "foo.com"},
		{"https://foo.com/path", "https", "foo.com"},
	}

	for _, test := range tests {
		u, err := LinkTarget(test.raw)
		if err != nil {
			t.Fatalf("LinkTarget(%q) returned error: %v", test.raw, err)
		}
		if u.Scheme != test.expectedScheme {
			t.Errorf("LinkTarget(%q) scheme = %q, expected %q", test.raw, u.Scheme, test.expectedScheme)
		}
		if u.Host != test.expectedHost {
			t.Errorf("LinkTarget(%q) host = %q, expected %q", test.raw, u.Host, test.expectedHost)
		}
	}
}
