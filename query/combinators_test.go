package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webroute/query"
)

func TestOne(t *testing.T) {
	t.Parallel()

	parse := query.One(query.Integer)

	t.Run("takes_first_value", func(t *testing.T) {
		t.Parallel()

		v, ok := parse([]string{"42", "43"})
		require.True(t, ok)
		assert.Equal(t, int64(42), v)
	})

	t.Run("absent_argument_yields_nothing", func(t *testing.T) {
		t.Parallel()

		_, ok := parse(nil)
		assert.False(t, ok)
	})

	t.Run("unparseable_value_yields_nothing", func(t *testing.T) {
		t.Parallel()

		_, ok := parse([]string{"nope"})
		assert.False(t, ok)
	})
}

func TestMany(t *testing.T) {
	t.Parallel()

	parse := query.Many(query.Boolean)

	t.Run("maps_all_values", func(t *testing.T) {
		t.Parallel()

		v, ok := parse([]string{"yes", "no", "1"})
		require.True(t, ok)
		assert.Equal(t, []bool{true, false, true}, v)
	})

	t.Run("drops_unparseable_values", func(t *testing.T) {
		t.Parallel()

		v, ok := parse([]string{"yes", "maybe"})
		require.True(t, ok)
		assert.Equal(t, []bool{true}, v)
	})

	t.Run("absent_argument_yields_empty_list", func(t *testing.T) {
		t.Parallel()

		v, ok := parse(nil)
		require.True(t, ok)
		assert.Equal(t, []bool{}, v)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	args := url.Values{
		"page": {"3"},
		"tags": {"go", "web"},
		"bad":  {"not-an-int"},
	}

	parsed := query.Parse(args, map[string]query.Parser{
		"page":    query.One(query.Integer),
		"tags":    query.Many(query.Text),
		"bad":     query.One(query.Integer),
		"missing": query.One(query.Text),
	})

	assert.Equal(t, int64(3), parsed["page"])
	assert.Equal(t, []string{"go", "web"}, parsed["tags"])
	assert.Nil(t, parsed["bad"])
	assert.Nil(t, parsed["missing"])
	assert.Len(t, parsed, 4)
}
