// File: trie.go
// Role: Trie lifecycle, insertion, lookup and lazy deletion.
//
// Determinism:
//   - Every operation is synchronous and depends only on the current tree shape.
//
// Concurrency:
//   - None. Callers serialize access to a Trie.
package trie

import "fmt"

// Trie is a prefix tree over [A-Za-z].
//
// root carries RootLetter, is never terminal and is never pruned.
// size counts live words and always equals the number of terminal nodes.
// pending counts successful deletions since the last compaction pass.
// nodes counts every non-root node currently attached to the tree.
type Trie struct {
	root    *node
	size    int
	pending int
	nodes   int

	// Configuration
	threshold int                // deletions per compaction pass
	maxNodes  int                // node budget, 0 = unlimited
	onRebuild func(RebuildStats) // optional compaction hook
}

// New creates an empty Trie holding only its root.
//
// Implementation:
//   - Stage 1: Apply options over DefaultOptions().
//   - Stage 2: Surface the first recorded option error (ErrOptionViolation).
//   - Stage 3: Allocate the root with RootLetter.
//
// Errors:
//   - ErrOptionViolation: an Option carried an invalid value.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(opts ...Option) (*Trie, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Trie{
		root:      newNode(RootLetter),
		threshold: o.DeleteThreshold,
		maxNodes:  o.MaxNodes,
		onRebuild: o.OnRebuild,
	}, nil
}

// Clear releases every node below the root and resets all counters.
// The Trie stays usable and keeps its configuration.
//
// Complexity: O(1); the detached tree is reclaimed by the garbage collector.
func (t *Trie) Clear() {
	t.root = newNode(RootLetter)
	t.size = 0
	t.pending = 0
	t.nodes = 0
}

// Size returns the number of live words.
func (t *Trie) Size() int { return t.size }

// PendingDeletions returns the number of successful deletions since the
// last compaction pass.
func (t *Trie) PendingDeletions() int { return t.pending }

// NodeCount returns the number of nodes attached below the root, including
// dead nodes still waiting for compaction.
func (t *Trie) NodeCount() int { return t.nodes }

// DeleteThreshold returns the configured number of deletions per compaction pass.
func (t *Trie) DeleteThreshold() int { return t.threshold }

// Insert stores word and reports whether it became live by this call.
//
// Implementation:
//   - Stage 1: Validate word (ErrInvalidWord); nothing is touched on failure.
//   - Stage 2: Walk from the root one slot per letter, creating missing nodes.
//   - Stage 3: Mark the last node terminal and count the word once.
//
// Behavior highlights:
//   - Idempotent size: inserting a live word again returns (false, nil) and
//     leaves Size unchanged.
//   - A node budget hit midway returns ErrNodeLimit. Nodes created before the
//     failure stay attached; they are not terminal and the next compaction
//     pass reclaims them.
//
// Errors:
//   - ErrInvalidWord: empty word or non-letter byte.
//   - ErrNodeLimit: WithMaxNodes budget exhausted.
//
// Complexity:
//   - Time O(L), Space O(L) new nodes in the worst case.
func (t *Trie) Insert(word string) (bool, error) {
	if err := ValidateWord(word); err != nil {
		return false, err
	}

	cur := t.root
	var idx int
	for i := 0; i < len(word); i++ {
		idx, _ = MapLetter(word[i])
		next := cur.children[idx]
		if next == nil {
			if t.maxNodes > 0 && t.nodes >= t.maxNodes {
				return false, fmt.Errorf("%w: %d nodes in use while inserting %q", ErrNodeLimit, t.nodes, word)
			}
			next = newNode(word[i])
			cur.children[idx] = next
			t.nodes++
		}
		cur = next
	}

	if cur.terminal {
		return false, nil
	}
	cur.terminal = true
	t.size++

	return true, nil
}

// Check reports whether word is live. Invalid words report false.
//
// Complexity: O(L); read-only.
func (t *Trie) Check(word string) bool {
	if !IsValidWord(word) {
		return false
	}
	n := t.root.descend(word)

	return n != nil && n.terminal
}

// Delete removes word if it is live and reports whether it was.
//
// Implementation:
//   - Stage 1: Validate word (ErrInvalidWord).
//   - Stage 2: Resolve the final node with the same walk as Check.
//   - Stage 3: Missing or non-terminal node → (false, nil), no state change.
//   - Stage 4: Clear the terminal flag, decrement size, count the deletion.
//   - Stage 5: Run a compaction pass once pending deletions reach the threshold.
//
// Behavior highlights:
//   - Lazy: nodes are never detached here, only by the compaction pass.
//
// Errors:
//   - ErrInvalidWord: empty word or non-letter byte.
//
// Complexity:
//   - Time O(L) amortized; O(N) on the call that triggers compaction.
func (t *Trie) Delete(word string) (bool, error) {
	if err := ValidateWord(word); err != nil {
		return false, err
	}

	n := t.root.descend(word)
	if n == nil || !n.terminal {
		return false, nil
	}

	n.terminal = false
	t.size--
	t.pending++
	if t.pending >= t.threshold {
		t.rebuild()
	}

	return true, nil
}
