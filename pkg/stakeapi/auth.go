package stakeapi

import (
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Tokens are obtained manually from a logged-in browser session; this
// package only carries them, it never acquires them.

// expiryMargin treats a token as expired slightly before its actual
// deadline so in-flight requests do not race the cutoff.
const expiryMargin = 5 * time.Minute

var (
	accessTokenRe     = regexp.MustCompile(`^[a-zA-Z0-9]{32,64}$`)
	curlAccessTokenRe = regexp.MustCompile(`(?i)-H\s+["']x-access-token:\s*([^"']+)["']`)
	curlSessionRe     = regexp.MustCompile(`session=([^;"' ]+)`)
)

// Credential holds the access token and optional session cookie used to
// authenticate requests.
type Credential struct {
	AccessToken   string
	SessionCookie string

	expiresAt time.Time
	clock     func() time.Time
}

// SetExpiry marks the access token as valid for ttl from now.
func (c *Credential) SetExpiry(ttl time.Duration) {
	c.expiresAt = c.now().Add(ttl)
}

// Expired reports whether the token is past (or within expiryMargin of) its
// known deadline. Tokens without a recorded deadline are assumed valid.
func (c *Credential) Expired() bool {
	if c == nil || c.expiresAt.IsZero() {
		return false
	}
	return !c.now().Before(c.expiresAt.Add(-expiryMargin))
}

// apply attaches the credential to an outgoing request.
func (c *Credential) apply(req *http.Request) {
	if c == nil {
		return
	}
	if c.AccessToken != "" {
		req.Header.Set("X-Access-Token", c.AccessToken)
	}
	if c.SessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.SessionCookie})
	}
}

func (c *Credential) now() time.Time {
	if c != nil && c.clock != nil {
		return c.clock()
	}
	return time.Now().UTC()
}

// ValidAccessToken reports whether the value looks like a platform access
// token (32-64 alphanumerics).
func ValidAccessToken(token string) bool {
	return accessTokenRe.MatchString(strings.TrimSpace(token))
}

// TokenFromCurl extracts the x-access-token header value from a curl
// command copied out of the browser's network inspector. Returns "" when
// the command carries none.
func TokenFromCurl(curl string) string {
	m := curlAccessTokenRe.FindStringSubmatch(curl)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// SessionCookieFromCurl extracts the session cookie value from a curl
// command, or "" when absent.
func SessionCookieFromCurl(curl string) string {
	m := curlSessionRe.FindStringSubmatch(curl)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
