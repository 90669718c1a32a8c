package sfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownKeysRoundTrip(t *testing.T) {
	keys := KnownKeys()
	require.Len(t, keys, 41)

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		name := k.String()
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate catalogue name %s", name)
		seen[name] = true

		assert.True(t, k.Known())
		assert.Equal(t, k, ParseKey(name))
		assert.Equal(t, name, k.ID().String())
		assert.Equal(t, len(name)+1, k.Len())
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in    string
		id    KeyID
		known bool
	}{
		{"TITLE", KeyTitle, true},
		{"TITLE_ID", KeyTitleID, true},
		{"PARENTAL_LEVEL_x", KeyParentalLevelX, true},
		{"ACCOUNTID", KeyAccountIDCompact, true},
		{"title", KeyUnknown, false},
		{"TITLE_03", KeyUnknown, false},
		{"", KeyUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k := ParseKey(tt.in)
			assert.Equal(t, tt.id, k.ID())
			assert.Equal(t, tt.known, k.Known())
			assert.Equal(t, tt.in, k.String())
		})
	}
}

func TestKeyEquality(t *testing.T) {
	assert.Equal(t, KeyTitle.Key(), ParseKey("TITLE"))
	assert.NotEqual(t, KeyTitle.Key(), ParseKey("TITLE_00"))
	assert.Equal(t, ParseKey("TITLE_00"), ParseKey("TITLE_00"))
	assert.NotEqual(t, ParseKey("FOO"), ParseKey("BAR"))

	m := map[Key]int{ParseKey("TITLE"): 1, ParseKey("CUSTOM"): 2}
	assert.Equal(t, 1, m[KeyTitle.Key()])
	assert.Equal(t, 2, m[ParseKey("CUSTOM")])
}

func TestKeyIDOutOfRange(t *testing.T) {
	assert.Equal(t, "", numKeyIDs.String())
	assert.Equal(t, Key{}, numKeyIDs.Key())
	assert.Equal(t, "", KeyUnknown.String())
}
