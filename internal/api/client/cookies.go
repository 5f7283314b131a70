package client

import (
	"net/url"
	"strings"
)

// ParseCookie looks name up in a Cookie header style string ("a=1; b=2") and
// returns its percent-decoded value. The first match wins.
func ParseCookie(header, name string) (string, bool) {
	if header == "" || name == "" {
		return "", false
	}
	prefix := name + "="
	for part := range strings.SplitSeq(header, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, prefix) {
			return decodeCookieValue(part[len(prefix):]), true
		}
	}
	return "", false
}

// decodeCookieValue percent-decodes v, keeping it verbatim when it is not
// valid percent encoding.
func decodeCookieValue(v string) string {
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return decoded
}

// CookieHeader renders the jar's cookies for the storefront as a Cookie
// header, in the form WithCookies accepts.
func (c *Client) CookieHeader() string {
	cookies := c.jar.Cookies(c.baseURL)
	parts := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		parts = append(parts, ck.Name+"="+ck.Value)
	}
	return strings.Join(parts, "; ")
}
