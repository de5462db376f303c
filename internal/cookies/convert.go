package cookies

import (
	"net/http"
	"net/url"
	"time"
)

// ToHTTPCookie converts the record to a standard http.Cookie.
func (c *Cookie) ToHTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		Expires:  c.Expires,
	}
}

// FromHTTPCookie creates a record from an http.Cookie received for u.
// An omitted domain falls back to the request host, an omitted path to
// "/". Max-Age wins over Expires when both are set; a negative Max-Age
// yields a record that is already expired.
func FromHTTPCookie(u *url.URL, hc *http.Cookie) Cookie {
	domain := hc.Domain
	if domain == "" && u != nil {
		domain = u.Hostname()
	}

	path := hc.Path
	if path == "" {
		path = "/"
	}

	expires := hc.Expires
	if hc.MaxAge > 0 {
		expires = time.Now().Add(time.Duration(hc.MaxAge) * time.Second)
	} else if hc.MaxAge < 0 {
		expires = time.Unix(0, 0)
	}

	return Cookie{
		Name:     hc.Name,
		Value:    hc.Value,
		Domain:   domain,
		Path:     path,
		Secure:   hc.Secure,
		HttpOnly: hc.HttpOnly,
		Expires:  expires,
	}
}
