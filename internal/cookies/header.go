package cookies

import (
	"strings"
	"time"
)

// HeaderLine renders the outgoing Cookie request header value. The jar
// is self-merged first to drop duplicates, then records with an empty
// value, secure records when isHTTPS is false, and expired records are
// skipped. Survivors are joined as "name=value; name=value" in merged
// order. No domain or path matching against a request target happens
// here.
func (j *Jar) HeaderLine(isHTTPS bool) string {
	return j.headerLineAt(isHTTPS, time.Now())
}

func (j *Jar) headerLineAt(isHTTPS bool, now time.Time) string {
	if j.Len() == 0 {
		return ""
	}
	merged := Merge(j, j)

	var b strings.Builder
	for _, c := range merged.records {
		if c.Value == "" {
			continue
		}
		if c.Secure && !isHTTPS {
			continue
		}
		if c.expiredAt(now) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(c.Name)
		b.WriteByte('=')
		b.WriteString(c.Value)
	}
	return b.String()
}
