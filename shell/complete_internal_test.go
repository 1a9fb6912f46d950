package shell

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrie/trie"
)

func newTestShell(t *testing.T, words ...string) *Shell {
	t.Helper()
	tr, err := trie.New()
	require.NoError(t, err)
	for _, w := range words {
		_, err = tr.Insert(w)
		require.NoError(t, err)
	}

	return New(tr, io.Discard)
}

func TestCompleteLine(t *testing.T) {
	s := newTestShell(t, "apple", "applet", "apply", "banana")

	cases := []struct {
		name      string
		line      string
		pos       int
		wantLine  string
		wantPos   int
		wantCands []string
		wantOK    bool
	}{
		{"UniqueWord", "ban", 3, "banana", 6, []string{"banana"}, true},
		{"ExtendToCommonPrefix", "ap", 2, "appl", 4, []string{"apple", "applet", "apply"}, true},
		{"Ambiguous", "appl", 4, "", 0, []string{"apple", "applet", "apply"}, false},
		{"ArgumentOfCommand", ".check ban", 10, ".check banana", 13, []string{"banana"}, true},
		{"CursorMidLine", "ban tail", 3, "banana tail", 6, []string{"banana"}, true},
		{"CommandWithArg", ".pu", 3, ".put ", 5, []string{".put"}, true},
		{"CommandNoArg", ".qu", 3, ".quit", 5, []string{".quit"}, true},
		{"AmbiguousCommand", ".p", 2, "", 0, []string{".print", ".put"}, false},
		{"NoMatch", "zzz", 3, "", 0, nil, false},
		{"InvalidToken", "a1", 2, "", 0, nil, false},
		{"Empty", "", 0, "", 0, nil, false},
		{"AfterSpace", ".put ", 5, "", 0, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line, pos, cands, ok := s.completeLine(tc.line, tc.pos)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantCands, cands)
			if tc.wantOK {
				assert.Equal(t, tc.wantLine, line)
				assert.Equal(t, tc.wantPos, pos)
			}
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "ab", commonPrefix([]string{"abc", "abd", "ab"}))
	assert.Equal(t, "", commonPrefix([]string{"x", "y"}))
	assert.Equal(t, "solo", commonPrefix([]string{"solo"}))
}
