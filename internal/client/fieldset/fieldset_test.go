package fieldset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsCoverEveryFieldExactlyOnce(t *testing.T) {
	seen := make(map[string]int)
	for _, g := range Groups() {
		for _, key := range g.Keys {
			seen[key]++
			_, ok := Lookup(key)
			assert.True(t, ok, "grouped key %q missing from catalogue", key)
		}
	}
	for _, f := range Fields() {
		assert.Equal(t, 1, seen[f.Key], "field %q", f.Key)
	}
}

func TestGroupOrderIsStable(t *testing.T) {
	var titles []string
	for _, g := range Groups() {
		titles = append(titles, g.Title)
	}
	assert.Equal(t, []string{"Core", "Messages", "Features", "Backup"}, titles)
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("locale")
	require.True(t, ok)
	assert.Equal(t, "Locale", f.Label)
	assert.Equal(t, "de or en", f.Placeholder)

	_, ok = Lookup("no_such_key")
	assert.False(t, ok)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	g := Groups()
	g[0].Keys[0] = "mutated"
	assert.Equal(t, "guild_id", Groups()[0].Keys[0])

	fs := Fields()
	fs[0].Key = "mutated"
	assert.Equal(t, "guild_id", Fields()[0].Key)
}
