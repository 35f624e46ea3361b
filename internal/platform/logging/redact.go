package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// credentialHeaders are lowercase HTTP header names whose values are never
// written to the log. The request logger and the masq field filter both read
// this list.
var credentialHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
	"x-hook-secret",
}

// secretFields are attribute keys redacted wherever they appear, including
// inside groups. Config dumps use these names.
var secretFields = []string{"password", "secret", "token", "database_url", "notifier_secret"}

var (
	bearerPattern      = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtPattern         = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	inlineKeyPattern   = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	urlUserinfoPattern = regexp.MustCompile(`[a-z][a-z0-9+\-.]*://[^/\s:@]+:[^@\s]+@`)
)

// IsCredentialHeader reports whether the named HTTP header carries a
// credential. Matching is case-insensitive.
func IsCredentialHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range credentialHeaders {
		if h == name {
			return true
		}
	}
	return false
}

// replaceAttr builds the slog ReplaceAttr hook. Keys are matched by exact name
// or prefix, and string values are scanned for bearer tokens, JWTs, inline API
// keys and URL passwords.
func replaceAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(credentialHeaders)+len(secretFields)+6)
	for _, name := range credentialHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineKeyPattern),
		masq.WithRegex(urlUserinfoPattern),
	)
	return masq.New(opts...)
}
