package cookies

import "slices"

// Jar is an ordered collection of cookie records plus a default domain.
// Insertion order is preserved and lookups return the first match.
//
// A Jar is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves. HTTPJar wraps a Jar with
// a mutex for use as an http.CookieJar.
type Jar struct {
	records       []Cookie
	defaultDomain string
}

// NewJar returns an empty jar.
func NewJar() *Jar {
	return &Jar{}
}

// SetDefaultDomain sets the domain substituted when a parsed Set-Cookie
// string carries an empty domain attribute.
func (j *Jar) SetDefaultDomain(domain string) {
	j.defaultDomain = domain
}

// DefaultDomain returns the configured default domain.
func (j *Jar) DefaultDomain() string {
	return j.defaultDomain
}

// Add appends a record. No deduplication happens on insert; duplicates
// are resolved by Merge.
func (j *Jar) Add(c Cookie) {
	j.records = append(j.records, c)
}

// Set appends a record carrying only a name and value.
func (j *Jar) Set(name, value string) {
	j.records = append(j.records, Cookie{Name: name, Value: value})
}

// Parse parses a Set-Cookie style attribute string and appends the
// resulting records, applying the jar's default domain. The jar is left
// unchanged when parsing fails.
func (j *Jar) Parse(raw string) error {
	parsed, err := parseSetCookie(raw, j.defaultDomain)
	if err != nil {
		return err
	}
	j.records = append(j.records, parsed...)
	return nil
}

// FindByName returns the first record with the given name.
func (j *Jar) FindByName(name string) (Cookie, bool) {
	for _, c := range j.records {
		if c.Name == name {
			return c, true
		}
	}
	return Cookie{}, false
}

// Find returns the first record matching name, domain and path exactly.
func (j *Jar) Find(name, domain, path string) (Cookie, bool) {
	for _, c := range j.records {
		if c.Name == name && c.Domain == domain && c.Path == path {
			return c, true
		}
	}
	return Cookie{}, false
}

// Value returns the value of the first record with the given name and a
// non-empty value, or "" when there is none.
func (j *Jar) Value(name string) string {
	for _, c := range j.records {
		if c.Name == name && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

// RemoveAll removes every record with the given name.
func (j *Jar) RemoveAll(name string) {
	kept := j.records[:0]
	for _, c := range j.records {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	j.records = kept
}

// Len returns the number of records.
func (j *Jar) Len() int {
	return len(j.records)
}

// Clear removes all records. The default domain is kept.
func (j *Jar) Clear() {
	j.records = j.records[:0]
}

// Grow reserves capacity for n additional records.
func (j *Jar) Grow(n int) {
	j.records = slices.Grow(j.records, n)
}

// All returns a copy of the records in insertion order.
func (j *Jar) All() []Cookie {
	return slices.Clone(j.records)
}
