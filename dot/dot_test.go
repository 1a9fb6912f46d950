package dot_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrie/dot"
	"github.com/katalvlaran/lvltrie/trie"
)

func build(t *testing.T, words ...string) *trie.Trie {
	t.Helper()
	tr, err := trie.New()
	require.NoError(t, err)
	for _, w := range words {
		_, err = tr.Insert(w)
		require.NoError(t, err)
	}

	return tr
}

func TestWrite(t *testing.T) {
	tr := build(t, "ab", "a")

	var sb strings.Builder
	require.NoError(t, dot.Write(&sb, tr))

	want := `digraph {
  "n0" [label=".";fillcolor=red;style=filled;fontcolor=white]
  "n1" [label="a";fillcolor=green;style=filled;fontcolor=white]
  "n0" -> "n1"
  "n2" [label="b";fillcolor=green;style=filled;fontcolor=white]
  "n1" -> "n2"
}
`
	assert.Equal(t, want, sb.String())
}

func TestWrite_InnerNodesAreBlack(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, dot.Write(&sb, build(t, "xy")))
	assert.Contains(t, sb.String(), `"n1" [label="x";fillcolor=black;`)
	assert.Contains(t, sb.String(), `"n2" [label="y";fillcolor=green;`)
}

func TestWrite_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, dot.Write(&sb, build(t)))
	assert.Equal(t, "digraph {\n  \"n0\" [label=\".\";fillcolor=red;style=filled;fontcolor=white]\n}\n", sb.String())
}

func TestWrite_Limit(t *testing.T) {
	tr := build(t, "a", "b", "c")

	err := dot.Write(&strings.Builder{}, tr, dot.WithLimit(2))
	assert.ErrorIs(t, err, dot.ErrTooLarge)

	assert.NoError(t, dot.Write(&strings.Builder{}, tr, dot.WithLimit(3)))
	assert.NoError(t, dot.Write(&strings.Builder{}, tr, dot.WithLimit(0)), "0 disables the limit")

	assert.ErrorIs(t, dot.Write(&strings.Builder{}, nil), dot.ErrNilTrie)
}

func TestCommand(t *testing.T) {
	assert.Equal(t,
		[]string{"dot", "-Tsvg", "g.dot", "-o", "g.svg"},
		dot.Command("g.dot", "g.svg"))
	assert.Equal(t,
		[]string{"/opt/gv/dot", "-Tpng", "g.dot", "-o", "g.png"},
		dot.Command("g.dot", "g.png", dot.WithBinary("/opt/gv/dot"), dot.WithFormat("png")))
}

func TestRender_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	err := dot.Render(context.Background(), filepath.Join(dir, "g.dot"), filepath.Join(dir, "g.svg"),
		dot.WithBinary(filepath.Join(dir, "no-such-layout-tool")))
	assert.ErrorIs(t, err, dot.ErrRender)
}

func TestGenerate(t *testing.T) {
	bin, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no `true` binary available")
	}
	base := filepath.Join(t.TempDir(), "graph")

	dotPath, outPath, err := dot.Generate(context.Background(), build(t, "hi"), base, dot.WithBinary(bin))
	require.NoError(t, err)
	assert.Equal(t, base+".dot", dotPath)
	assert.Equal(t, base+".svg", outPath)

	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph {\n"))
}

func TestGenerate_RenderFailureKeepsDotFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph")
	dotPath, outPath, err := dot.Generate(context.Background(), build(t, "hi"), base,
		dot.WithBinary(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, dot.ErrRender)
	assert.Equal(t, base+".dot", dotPath)
	assert.Empty(t, outPath)
	assert.FileExists(t, dotPath)
}
