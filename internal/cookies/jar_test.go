package cookies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJar_FindByName(t *testing.T) {
	t.Run("returns the first inserted record among shared names", func(t *testing.T) {
		jar := NewJar()
		jar.Add(Cookie{Name: "sid", Value: "first", Domain: "a.com"})
		jar.Add(Cookie{Name: "sid", Value: "second", Domain: "b.com"})

		c, ok := jar.FindByName("sid")
		require.True(t, ok)
		assert.Equal(t, "first", c.Value)
	})

	t.Run("reports a miss", func(t *testing.T) {
		_, ok := NewJar().FindByName("nope")
		assert.False(t, ok)
	})
}

func TestJar_Find(t *testing.T) {
	jar := NewJar()
	jar.Add(Cookie{Name: "sid", Value: "a", Domain: "a.com", Path: "/"})
	jar.Add(Cookie{Name: "sid", Value: "b", Domain: "b.com", Path: "/x"})

	t.Run("requires an exact full-key match", func(t *testing.T) {
		c, ok := jar.Find("sid", "b.com", "/x")
		require.True(t, ok)
		assert.Equal(t, "b", c.Value)

		_, ok = jar.Find("sid", "b.com", "/")
		assert.False(t, ok)
	})
}

func TestJar_Value(t *testing.T) {
	t.Run("skips records with empty values", func(t *testing.T) {
		jar := NewJar()
		jar.Set("sid", "")
		jar.Set("sid", "real")

		assert.Equal(t, "real", jar.Value("sid"))
	})

	t.Run("returns empty for unknown names", func(t *testing.T) {
		assert.Equal(t, "", NewJar().Value("nope"))
	})
}

func TestJar_RemoveAll(t *testing.T) {
	t.Run("removes every record with the name", func(t *testing.T) {
		jar := NewJar()
		jar.Add(Cookie{Name: "sid", Value: "1", Domain: "a.com"})
		jar.Add(Cookie{Name: "keep", Value: "2"})
		jar.Add(Cookie{Name: "sid", Value: "3", Domain: "b.com"})

		jar.RemoveAll("sid")

		assert.Equal(t, 1, jar.Len())
		_, ok := jar.FindByName("sid")
		assert.False(t, ok)
		_, ok = jar.FindByName("keep")
		assert.True(t, ok)
	})

	t.Run("is a no-op for unknown names", func(t *testing.T) {
		jar := NewJar()
		jar.Set("a", "1")
		jar.RemoveAll("b")
		assert.Equal(t, 1, jar.Len())
	})
}

func TestJar_Bookkeeping(t *testing.T) {
	t.Run("Len and Clear", func(t *testing.T) {
		jar := NewJar()
		jar.Set("a", "1")
		jar.Set("b", "2")
		assert.Equal(t, 2, jar.Len())

		jar.Clear()
		assert.Equal(t, 0, jar.Len())
	})

	t.Run("Clear keeps the default domain", func(t *testing.T) {
		jar := NewJar()
		jar.SetDefaultDomain("example.com")
		jar.Set("a", "1")
		jar.Clear()
		assert.Equal(t, "example.com", jar.DefaultDomain())
	})

	t.Run("Grow does not change the contents", func(t *testing.T) {
		jar := NewJar()
		jar.Set("a", "1")
		jar.Grow(64)
		assert.Equal(t, 1, jar.Len())
		assert.Equal(t, "1", jar.Value("a"))
	})

	t.Run("All returns an independent copy", func(t *testing.T) {
		jar := NewJar()
		jar.Set("a", "1")

		records := jar.All()
		records[0].Value = "mutated"

		assert.Equal(t, "1", jar.Value("a"))
	})
}

func TestJar_Parse(t *testing.T) {
	t.Run("appends parsed records with the default domain", func(t *testing.T) {
		jar := NewJar()
		jar.SetDefaultDomain("example.com")

		err := jar.Parse("a=1; b=2; domain=")
		require.NoError(t, err)
		assert.Equal(t, 2, jar.Len())

		c, _ := jar.FindByName("a")
		assert.Equal(t, "example.com", c.Domain)
	})

	t.Run("a parse error leaves the jar unchanged", func(t *testing.T) {
		jar := NewJar()
		jar.Set("before", "1")

		err := jar.Parse("a=1; nonsense-flag; b=2")
		assert.ErrorIs(t, err, ErrParse)
		assert.Equal(t, 1, jar.Len())
	})

	t.Run("parsing accumulates across calls", func(t *testing.T) {
		jar := NewJar()
		require.NoError(t, jar.Parse("a=1"))
		require.NoError(t, jar.Parse("a=2"))

		// No dedup on insert; the first record still wins lookups.
		assert.Equal(t, 2, jar.Len())
		c, _ := jar.FindByName("a")
		assert.Equal(t, "1", c.Value)
	})
}
