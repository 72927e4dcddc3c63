package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, EditDistance("", ""))
	assert.Equal(t, 3, EditDistance("", "abc"))
	assert.Equal(t, 3, EditDistance("abc", ""))
	assert.Equal(t, 0, EditDistance("anime", "anime"))
	assert.Equal(t, 3, EditDistance("kitten", "sitting"))
	assert.Equal(t, 2, EditDistance("naruto", "naruot")) // transposition counts as two single edits
}

func TestNormalize(t *testing.T) {
	t.Run("CaseAndPunctuation", func(t *testing.T) {
		assert.Equal(t, "steinsgate", Normalize("Steins;Gate"))
		assert.Equal(t, "rezero starting life in another world", Normalize("Re:ZERO -Starting Life in Another World-"))
	})

	t.Run("WhitespaceCollapse", func(t *testing.T) {
		assert.Equal(t, "one piece", Normalize("  One    Piece  "))
	})

	t.Run("Diacritics", func(t *testing.T) {
		assert.Equal(t, "pokemon", Normalize("Pokémon"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   "))
		assert.Equal(t, "", Normalize("!!!"))
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, s := range []string{
			"Attack on Titan",
			"Re:ZERO -Starting Life in Another World-",
			"Pokémon",
			"  spaced   out  ",
			"",
		} {
			once := Normalize(s)
			assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
		}
	})
}

func TestScore(t *testing.T) {
	t.Run("IdenticalIsExactlyOne", func(t *testing.T) {
		for _, s := range []string{"a", "Attack on Titan", "Pokémon"} {
			assert.Equal(t, 1.0, Score(s, s))
		}
	})

	t.Run("EquivalentModuloNormalization", func(t *testing.T) {
		assert.Equal(t, 1.0, Score("Attack on Titan", "attack ON titan!"))
	})

	t.Run("Symmetry", func(t *testing.T) {
		pairs := [][2]string{
			{"Attack on Titan", "Attack on Titan Season 2"},
			{"Naruto", "Boruto"},
			{"", "something"},
			{"One Piece", "one piece"},
		}
		for _, p := range pairs {
			assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]))
		}
	})

	t.Run("Range", func(t *testing.T) {
		pairs := [][2]string{
			{"a", "completely different title"},
			{"Attack on Titan", "Attack on Titan Season 2"},
			{"x", "y"},
			{"", ""},
			{"!!!", "???"},
		}
		for _, p := range pairs {
			s := Score(p[0], p[1])
			assert.True(t, s >= 0 && s <= 1, "score %v out of range for %q vs %q", s, p[0], p[1])
		}
	})

	t.Run("EmptyInputIsZero", func(t *testing.T) {
		assert.Equal(t, 0.0, Score("", ""))
		assert.Equal(t, 0.0, Score("", "anything"))
		assert.Equal(t, 0.0, Score("anything", ""))
	})

	t.Run("SeasonSuffixLowersScore", func(t *testing.T) {
		s := Score("Attack on Titan", "Attack on Titan Season 2")
		assert.Less(t, s, 1.0)
		assert.Greater(t, s, 0.5)
	})
}
