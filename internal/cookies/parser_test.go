package cookies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetCookie(t *testing.T) {
	t.Run("splits shared attributes over multiple records", func(t *testing.T) {
		records, err := parseSetCookie("a=1; b=2; domain=d; path=p", "")
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "a", records[0].Name)
		assert.Equal(t, "1", records[0].Value)
		assert.Equal(t, "b", records[1].Name)
		assert.Equal(t, "2", records[1].Value)
		for _, c := range records {
			assert.Equal(t, "d", c.Domain)
			assert.Equal(t, "p", c.Path)
		}
	})

	t.Run("parses a full Set-Cookie line", func(t *testing.T) {
		records, err := parseSetCookie("gsid=none; path=/; domain=.example.com; httponly", "")
		require.NoError(t, err)
		require.Len(t, records, 1)

		c := records[0]
		assert.Equal(t, "gsid", c.Name)
		assert.Equal(t, "none", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, ".example.com", c.Domain)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.True(t, c.IsSession())
	})

	t.Run("parses expires into a timestamp", func(t *testing.T) {
		records, err := parseSetCookie("sid=x; expires=Sun, 22-Sep-2013 14:27:43 GMT", "")
		require.NoError(t, err)
		require.Len(t, records, 1)

		want := time.Date(2013, 9, 22, 14, 27, 43, 0, time.UTC)
		assert.True(t, records[0].Expires.Equal(want))
	})

	t.Run("secure flag applies to every record", func(t *testing.T) {
		records, err := parseSetCookie("a=1; secure; b=2", "")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].Secure)
		assert.True(t, records[1].Secure)
	})

	t.Run("flag names are case insensitive", func(t *testing.T) {
		records, err := parseSetCookie("sid=x; Secure; HttpOnly", "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Secure)
		assert.True(t, records[0].HttpOnly)
	})

	t.Run("trailing flag without semicolon is flushed", func(t *testing.T) {
		records, err := parseSetCookie("sid=x; secure", "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Secure)
	})

	t.Run("control character in a name fails the whole parse", func(t *testing.T) {
		records, err := parseSetCookie("a\x01b=1", "")
		assert.ErrorIs(t, err, ErrParse)
		assert.Nil(t, records)
	})

	t.Run("control character in a value fails the whole parse", func(t *testing.T) {
		records, err := parseSetCookie("a=1\x02; b=2", "")
		assert.ErrorIs(t, err, ErrParse)
		assert.Nil(t, records)
	})

	t.Run("bare name that is not a flag fails the whole parse", func(t *testing.T) {
		records, err := parseSetCookie("a=1; garbage; b=2", "")
		assert.ErrorIs(t, err, ErrParse)
		assert.Nil(t, records)
	})

	t.Run("unparseable expires date is an error, not a panic", func(t *testing.T) {
		records, err := parseSetCookie("sid=x; expires=banana", "")
		assert.ErrorIs(t, err, ErrExpiresDate)
		assert.Nil(t, records)
	})

	t.Run("quoted values lose their quotes", func(t *testing.T) {
		records, err := parseSetCookie(`a="quoted"; b=2`, "")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "quoted", records[0].Value)
		assert.Equal(t, "2", records[1].Value)
	})

	t.Run("later value for the same name wins", func(t *testing.T) {
		records, err := parseSetCookie("a=1; a=2", "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "2", records[0].Value)
	})

	t.Run("empty fragments are skipped", func(t *testing.T) {
		records, err := parseSetCookie("a=1;; b=2", "")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("malformed name fragment is dropped silently", func(t *testing.T) {
		// The slash resets the fragment; "cd" starts a fresh name.
		records, err := parseSetCookie("ab/cd=1", "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "cd", records[0].Name)
	})

	t.Run("empty domain attribute takes the default domain", func(t *testing.T) {
		records, err := parseSetCookie("a=1; domain=; b=2", "example.com")
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, c := range records {
			assert.Equal(t, "example.com", c.Domain)
		}
	})

	t.Run("missing domain attribute leaves the domain empty", func(t *testing.T) {
		records, err := parseSetCookie("a=1", "example.com")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "", records[0].Domain)
	})

	t.Run("values keep spaces, commas and equals-free colons", func(t *testing.T) {
		records, err := parseSetCookie("msg=hello, world: ok", "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "hello, world: ok", records[0].Value)
	})

	t.Run("empty input yields no records and no error", func(t *testing.T) {
		records, err := parseSetCookie("", "")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
