// Package cookies implements an ordered cookie jar: parsing of
// Set-Cookie attribute strings, recency-based merging, and rendering of
// Cookie request header lines.
package cookies

import "time"

// Cookie is a single cookie record. Name is never empty for a record
// held by a Jar. An empty Domain or Path matches any domain or path.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  time.Time // zero means session cookie, no expiry
	Secure   bool
	HttpOnly bool
}

// IsSession returns true if this is a session cookie (no expiration).
func (c *Cookie) IsSession() bool {
	return c.Expires.IsZero()
}

// IsExpired returns true if the cookie has expired.
func (c *Cookie) IsExpired() bool {
	return c.expiredAt(time.Now())
}

func (c *Cookie) expiredAt(now time.Time) bool {
	if c.Expires.IsZero() {
		return false // Session cookie, never expires
	}
	return c.Expires.Before(now)
}

// expiresAfter reports whether expiry a is strictly later than b.
// A zero expiry ranks after every concrete one, so session cookies win
// any recency comparison.
func expiresAfter(a, b time.Time) bool {
	if a.IsZero() {
		return !b.IsZero()
	}
	if b.IsZero() {
		return false
	}
	return a.After(b)
}
