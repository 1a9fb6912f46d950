package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltrie/trie"
)

func TestMapLetter(t *testing.T) {
	cases := []struct {
		ch   byte
		idx  int
		isOK bool
	}{
		{'A', 0, true},
		{'Z', 25, true},
		{'a', 26, true},
		{'z', 51, true},
		{'m', 38, true},
		{'@', 0, false},
		{'[', 0, false},
		{'`', 0, false},
		{'{', 0, false},
		{trie.RootLetter, 0, false},
		{0, 0, false},
		{0xC3, 0, false},
	}
	for _, tc := range cases {
		idx, ok := trie.MapLetter(tc.ch)
		assert.Equal(t, tc.isOK, ok, "MapLetter(%q) ok", tc.ch)
		if tc.isOK {
			assert.Equal(t, tc.idx, idx, "MapLetter(%q)", tc.ch)
		}
	}
}

func TestLetter_InvertsMapLetter(t *testing.T) {
	for i := 0; i < trie.AlphabetSize; i++ {
		ch := trie.Letter(i)
		idx, ok := trie.MapLetter(ch)
		assert.True(t, ok, "Letter(%d) = %q", i, ch)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, byte(0), trie.Letter(-1))
	assert.Equal(t, byte(0), trie.Letter(trie.AlphabetSize))
}

func TestValidateWord(t *testing.T) {
	assert.NoError(t, trie.ValidateWord("HelloWorld"))
	assert.True(t, trie.IsValidWord("x"))

	for _, w := range []string{"", " ", "ab c", "abc\n", "naïve", "a-b", "42"} {
		assert.ErrorIs(t, trie.ValidateWord(w), trie.ErrInvalidWord, "ValidateWord(%q)", w)
		assert.False(t, trie.IsValidWord(w), "IsValidWord(%q)", w)
	}
	assert.ErrorContains(t, trie.ValidateWord("ab-c"), "offset 2")
}
