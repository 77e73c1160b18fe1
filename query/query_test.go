package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webroute/query"
)

func TestScalarParsers(t *testing.T) {
	t.Parallel()

	t.Run("text_never_fails", func(t *testing.T) {
		t.Parallel()

		v, ok := query.Text("hello")
		assert.True(t, ok)
		assert.Equal(t, "hello", v)

		v, ok = query.Text("")
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("integer", func(t *testing.T) {
		t.Parallel()

		v, ok := query.Integer("42")
		require.True(t, ok)
		assert.Equal(t, int64(42), v)

		v, ok = query.Integer(" -7 ")
		require.True(t, ok)
		assert.Equal(t, int64(-7), v)

		_, ok = query.Integer("4a")
		assert.False(t, ok)

		_, ok = query.Integer("")
		assert.False(t, ok)
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()

		v, ok := query.Float("2.5")
		require.True(t, ok)
		assert.InDelta(t, 2.5, v, 1e-9)

		_, ok = query.Float("two point five")
		assert.False(t, ok)
	})

	t.Run("boolean", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"yes", "1", "true", "TRUE", " Yes "} {
			v, ok := query.Boolean(s)
			require.True(t, ok, s)
			assert.True(t, v, s)
		}
		for _, s := range []string{"no", "0", "false", "False"} {
			v, ok := query.Boolean(s)
			require.True(t, ok, s)
			assert.False(t, v, s)
		}
		_, ok := query.Boolean("maybe")
		assert.False(t, ok)
	})

	t.Run("delimited", func(t *testing.T) {
		t.Parallel()

		parse := query.Delimited(query.Integer, ",")

		v, ok := parse("1,2,3")
		require.True(t, ok)
		assert.Equal(t, []int64{1, 2, 3}, v)

		// Unparseable pieces are dropped, the rest survive.
		v, ok = parse("1,x,3")
		require.True(t, ok)
		assert.Equal(t, []int64{1, 3}, v)

		v, ok = parse("")
		require.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("timestamp_seconds", func(t *testing.T) {
		t.Parallel()

		v, ok := query.Timestamp("1234567890")
		require.True(t, ok)
		assert.Equal(t, time.Date(2009, 2, 13, 23, 31, 30, 0, time.UTC), v)

		_, ok = query.Timestamp("not-a-number")
		assert.False(t, ok)
	})

	t.Run("timestamp_milliseconds", func(t *testing.T) {
		t.Parallel()

		v, ok := query.TimestampMs("1234567890500")
		require.True(t, ok)
		assert.Equal(t, time.Date(2009, 2, 13, 23, 31, 30, 500000000, time.UTC), v)
	})
}

func TestCharsetHelpers(t *testing.T) {
	t.Parallel()

	t.Run("content_charset_defaults_to_utf8", func(t *testing.T) {
		t.Parallel()

		h := make(map[string][]string)
		assert.Equal(t, "utf-8", query.ContentCharset(h))

		h["Content-Type"] = []string{"application/json"}
		assert.Equal(t, "utf-8", query.ContentCharset(h))
	})

	t.Run("content_charset_reads_parameter", func(t *testing.T) {
		t.Parallel()

		h := map[string][]string{"Content-Type": {"text/plain; charset=ISO-8859-1"}}
		assert.Equal(t, "ISO-8859-1", query.ContentCharset(h))
	})

	t.Run("content_charset_survives_malformed_header", func(t *testing.T) {
		t.Parallel()

		h := map[string][]string{"Content-Type": {";;;"}}
		assert.Equal(t, "utf-8", query.ContentCharset(h))
	})

	t.Run("text_in_decodes_latin1", func(t *testing.T) {
		t.Parallel()

		v, ok := query.TextIn("iso-8859-1")("caf\xe9")
		require.True(t, ok)
		assert.Equal(t, "café", v)
	})

	t.Run("text_in_passes_utf8_through", func(t *testing.T) {
		t.Parallel()

		v, ok := query.TextIn("utf-8")("café")
		require.True(t, ok)
		assert.Equal(t, "café", v)
	})

	t.Run("text_in_rejects_unknown_charset", func(t *testing.T) {
		t.Parallel()

		_, ok := query.TextIn("no-such-charset")("x")
		assert.False(t, ok)
	})
}
