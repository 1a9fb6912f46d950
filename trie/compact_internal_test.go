package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slot returns the child of n for letter ch, failing on an invalid letter.
func slot(t *testing.T, n *node, ch byte) *node {
	t.Helper()
	idx, ok := MapLetter(ch)
	require.True(t, ok, "MapLetter(%q)", ch)

	return n.children[idx]
}

// path follows word from the root and returns every node on the way.
func path(t *testing.T, tr *Trie, word string) []*node {
	t.Helper()
	nodes := make([]*node, 0, len(word))
	cur := tr.root
	for i := 0; i < len(word); i++ {
		cur = slot(t, cur, word[i])
		require.NotNil(t, cur, "missing node for %q at offset %d", word, i)
		nodes = append(nodes, cur)
	}

	return nodes
}

func TestInsert_Layout(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	for _, w := range []string{"ab", "abc", "db", "cab", "abcd", "abz", "a"} {
		_, err = tr.Insert(w)
		require.NoError(t, err)
	}

	assert.Equal(t, RootLetter, tr.root.letter)
	assert.False(t, tr.root.terminal)

	for _, w := range []string{"abcd", "abz", "db", "cab"} {
		nodes := path(t, tr, w)
		letters := make([]byte, len(nodes))
		for i, n := range nodes {
			letters[i] = n.letter
		}
		assert.Equal(t, w, string(letters))
		assert.True(t, nodes[len(nodes)-1].terminal, "%q ends on a terminal node", w)
	}

	assert.Same(t, path(t, tr, "ab")[1], path(t, tr, "abz")[1], "shared prefixes share nodes")
	assert.False(t, path(t, tr, "cab")[1].terminal)
}

// TestRebuild_Sequence deletes with a threshold of 1 so every deletion runs
// a compaction pass, and checks which nodes survive each step.
func TestRebuild_Sequence(t *testing.T) {
	tr, err := New(WithDeleteThreshold(1))
	require.NoError(t, err)
	for _, w := range []string{"ab", "abc", "db", "cab", "abcd", "abz", "a"} {
		_, err = tr.Insert(w)
		require.NoError(t, err)
	}
	del := func(w string) {
		t.Helper()
		ok, err := tr.Delete(w)
		require.NoError(t, err)
		require.True(t, ok, "Delete(%q)", w)
	}

	// b under a survives: abc and abcd still live below it.
	del("ab")
	b := path(t, tr, "ab")[1]
	assert.False(t, b.terminal)
	assert.NotNil(t, slot(t, b, 'c'))
	assert.Equal(t, 10, tr.nodes)

	del("abcd")
	del("abc")
	assert.Nil(t, slot(t, b, 'c'), "dead c/d chain is pruned")
	assert.NotNil(t, slot(t, b, 'z'))
	assert.Equal(t, 8, tr.nodes)

	del("abz")
	a := slot(t, tr.root, 'a')
	require.NotNil(t, a, "a is still live")
	assert.Nil(t, slot(t, a, 'b'))

	del("a")
	assert.Nil(t, slot(t, tr.root, 'a'))

	del("cab")
	del("db")
	for i, c := range tr.root.children {
		assert.Nil(t, c, "root slot %d", i)
	}
	assert.Equal(t, 0, tr.nodes)
	assert.Equal(t, 0, tr.size)
	assert.Equal(t, 0, tr.pending)
}

func TestClassify(t *testing.T) {
	// a(terminal) → b → c, nothing below terminal except a itself.
	a := newNode('a')
	a.terminal = true
	b := newNode('b')
	c := newNode('c')
	a.children[27] = b
	b.children[28] = c

	v, released := classify(a)
	assert.Equal(t, kept, v)
	assert.Equal(t, 2, released)
	assert.Nil(t, a.children[27])

	lone := newNode('q')
	v, released = classify(lone)
	assert.Equal(t, orphan, v)
	assert.Equal(t, 1, released)
}
