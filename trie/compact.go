package trie

// verdict is the outcome of classifying one subtree during compaction.
type verdict int

const (
	kept   verdict = iota // subtree holds at least one terminal node
	orphan                // subtree holds no terminal node and was released
)

// Rebuild runs a compaction pass immediately, regardless of how many
// deletions are pending, and returns the number of nodes pruned.
func (t *Trie) Rebuild() int {
	return t.rebuild()
}

// rebuild prunes every maximal subtree that contains no terminal node.
//
// Implementation:
//   - Stage 1: Classify each top-level child of the root in postorder.
//   - Stage 2: Clear the root slot of every child classified orphan.
//   - Stage 3: Adjust the node count, reset pending deletions, fire OnRebuild.
//
// The root itself is never released. Any node on a path to a terminal node
// is classified kept, even when it is not terminal itself.
//
// Complexity: Time O(N), Space O(L_max) recursion.
func (t *Trie) rebuild() int {
	pruned := 0
	var (
		i int
		c *node
	)
	for i, c = range t.root.children {
		if c == nil {
			continue
		}
		v, released := classify(c)
		pruned += released
		if v == orphan {
			t.root.children[i] = nil
		}
	}

	t.nodes -= pruned
	t.pending = 0
	if t.onRebuild != nil {
		t.onRebuild(RebuildStats{Pruned: pruned, Remaining: t.nodes})
	}

	return pruned
}

// classify reports whether the subtree rooted at n survives and how many of
// its nodes were released.
//
// Children are classified first. Each orphan child has its slot cleared,
// which drops the last reference to that subtree. A node left with no
// children and no terminal flag is itself an orphan; a childless
// non-terminal leaf is the base case of that rule.
func classify(n *node) (verdict, int) {
	released := 0
	alive := false
	for i, c := range n.children {
		if c == nil {
			continue
		}
		v, r := classify(c)
		released += r
		if v == orphan {
			n.children[i] = nil
			continue
		}
		alive = true
	}

	if !n.terminal && !alive {
		return orphan, released + 1
	}

	return kept, released
}
