package cookies

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// HTTPJar adapts a Jar to the http.CookieJar interface so it can sit on
// an http.Client. Domain and path matching against request URLs is
// delegated wholesale to net/http/cookiejar; the backing Jar records
// every cookie the transport sets, so it can be rendered, merged or
// persisted later.
type HTTPJar struct {
	mu      sync.RWMutex
	matcher *cookiejar.Jar
	records *Jar
}

// NewHTTPJar creates an HTTPJar seeded with the jar's current records.
func NewHTTPJar(records *Jar) (*HTTPJar, error) {
	matcher, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, err
	}

	hj := &HTTPJar{
		matcher: matcher,
		records: records,
	}
	hj.seed()
	return hj, nil
}

// seed loads non-expired records into the matcher, grouped by domain.
// Records without a domain take the jar's default domain; records with
// neither are skipped, there is no URL to anchor them to.
func (hj *HTTPJar) seed() {
	byDomain := make(map[string][]*http.Cookie)
	for _, c := range hj.records.All() {
		if c.IsExpired() {
			continue
		}
		domain := c.Domain
		if domain == "" {
			domain = hj.records.DefaultDomain()
		}
		if domain == "" {
			continue
		}
		host := strings.TrimPrefix(domain, ".")
		byDomain[host] = append(byDomain[host], c.ToHTTPCookie())
	}

	for host, domainCookies := range byDomain {
		u := &url.URL{
			Scheme: "https",
			Host:   host,
			Path:   "/",
		}
		hj.matcher.SetCookies(u, domainCookies)
	}
}

// SetCookies implements http.CookieJar.
func (hj *HTTPJar) SetCookies(u *url.URL, cs []*http.Cookie) {
	hj.mu.Lock()
	defer hj.mu.Unlock()

	hj.matcher.SetCookies(u, cs)
	for _, hc := range cs {
		hj.records.Add(FromHTTPCookie(u, hc))
	}
}

// Cookies implements http.CookieJar.
func (hj *HTTPJar) Cookies(u *url.URL) []*http.Cookie {
	hj.mu.RLock()
	defer hj.mu.RUnlock()

	return hj.matcher.Cookies(u)
}

// Records returns the backing jar.
func (hj *HTTPJar) Records() *Jar {
	hj.mu.RLock()
	defer hj.mu.RUnlock()

	return hj.records
}
