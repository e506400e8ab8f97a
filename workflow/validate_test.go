package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "https with www", input: "https://www.example.com", valid: true},
		{name: "http bare domain", input: "http://example.com", valid: true},
		{name: "www with hyphen path and query", input: "www.a-b.co/path?x=1", valid: true},
		{name: "upper case scheme", input: "HTTPS://EXAMPLE.COM", valid: true},
		{name: "subdomains", input: "https://docs.go.dev", valid: true},
		{name: "port", input: "http://example.com:8080", valid: true},
		{name: "port and path", input: "https://example.com:443/a/b", valid: true},
		{name: "five letter tld", input: "www.example.store", valid: true},
		{name: "ftp scheme", input: "ftp://example.com", valid: false},
		{name: "no scheme or www", input: "example", valid: false},
		{name: "bare domain without prefix", input: "example.com", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "single letter tld", input: "https://example.c", valid: false},
		{name: "six letter tld", input: "https://example.abcdef", valid: false},
		{name: "numeric tld", input: "http://10.0.0.1", valid: false},
		{name: "no tld", input: "http://localhost:8080", valid: false},
		{name: "leading space", input: " https://example.com", valid: false},
		{name: "space in host", input: "https://exa mple.com", valid: false},
		{name: "leading hyphen label", input: "https://-example.com", valid: false},
		{name: "double dot", input: "https://example..com", valid: false},
		{name: "port too long", input: "http://example.com:123456", valid: false},
		{name: "trailing newline", input: "https://example.com\n", valid: false},
		{name: "query without slash", input: "https://example.com?x=1", valid: false},
		{name: "long s in host", input: "https://ſite.com", valid: false},
		{name: "long s in tld", input: "www.example.coſ", valid: false},
		{name: "kelvin sign in host", input: "https://\u212Aey.com", valid: false},
		{name: "mixed case www", input: "wWw.example.com", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Empty(t, res.Message)
			} else {
				assert.Equal(t, InvalidURLMessage, res.Message)
			}
		})
	}
}
