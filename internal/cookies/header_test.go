package cookies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeaderLine(t *testing.T) {
	t.Run("renders a single session cookie", func(t *testing.T) {
		jar := NewJar()
		jar.Set("session", "abc123")

		assert.Equal(t, "session=abc123", jar.HeaderLine(false))
	})

	t.Run("joins cookies with a semicolon and space", func(t *testing.T) {
		jar := NewJar()
		jar.Set("a", "1")
		jar.Set("b", "2")

		line := jar.HeaderLine(false)
		assert.Contains(t, line, "a=1")
		assert.Contains(t, line, "b=2")
		assert.Contains(t, line, "; ")
	})

	t.Run("skips empty values", func(t *testing.T) {
		jar := NewJar()
		jar.Set("empty", "")
		jar.Set("full", "v")

		assert.Equal(t, "full=v", jar.HeaderLine(false))
	})

	t.Run("secure cookies only render over https", func(t *testing.T) {
		jar := NewJar()
		jar.Add(Cookie{Name: "token", Value: "secret", Secure: true})

		assert.Equal(t, "", jar.HeaderLine(false))
		assert.Equal(t, "token=secret", jar.HeaderLine(true))
	})

	t.Run("expired cookies are skipped", func(t *testing.T) {
		now := time.Now()
		jar := NewJar()
		jar.Add(Cookie{Name: "stale", Value: "x", Expires: now.Add(-time.Hour)})
		jar.Add(Cookie{Name: "fresh", Value: "y", Expires: now.Add(time.Hour)})
		jar.Add(Cookie{Name: "forever", Value: "z"})

		line := jar.headerLineAt(false, now)
		assert.NotContains(t, line, "stale")
		assert.Contains(t, line, "fresh=y")
		assert.Contains(t, line, "forever=z")
	})

	t.Run("a cookie expiring exactly now still renders", func(t *testing.T) {
		now := time.Now()
		jar := NewJar()
		jar.Add(Cookie{Name: "edge", Value: "v", Expires: now})

		assert.Equal(t, "edge=v", jar.headerLineAt(false, now))
	})

	t.Run("duplicates collapse through self merge", func(t *testing.T) {
		jar := NewJar()
		jar.Set("a", "1")
		jar.Set("a", "1")

		assert.Equal(t, "a=1", jar.HeaderLine(false))
	})

	t.Run("empty jar renders the empty string", func(t *testing.T) {
		assert.Equal(t, "", NewJar().HeaderLine(true))
	})
}
