// Package trie implements a prefix tree over the fixed 52-letter alphabet
// [A-Za-z] with lazy deletion and threshold-driven compaction.
//
// What:
//
//   - Every node owns a fixed array of 52 child slots. The slot for a letter
//     is chosen by MapLetter: 'A'..'Z' map to 0..25, 'a'..'z' map to 26..51.
//     The structure is therefore a radix tree of constant fan-out, not a map.
//   - Insert walks (and creates on demand) one node per letter and marks the
//     last one terminal.
//   - Delete is lazy: it only clears the terminal flag. Dead nodes stay in
//     place until the number of pending deletions reaches the configured
//     threshold, at which point a postorder compaction pass prunes every
//     maximal subtree that holds no terminal node.
//   - Words, Completions and Export share one depth-first walk that visits
//     children in slot order (uppercase block, then lowercase block), so the
//     output order is deterministic for a given tree shape.
//
// Why:
//
//   - Deletion-heavy workloads pay the pruning cost once per threshold
//     instead of on every call.
//   - Constant fan-out keeps lookups to one array index per letter.
//
// Key Types & Constants:
//
//   - Trie: the tree plus its live-word count and pending-deletion counter
//   - Edge: one parent→child record produced by Export
//   - RebuildStats: what a compaction pass reclaimed
//   - AlphabetSize = 52, RootLetter = '.', DefaultDeleteThreshold = 50
//
// Complexity:
//
//   - Insert / Check / Delete:  Time O(L) for a word of length L
//   - Compaction:               Time O(N) for N nodes, Memory O(L_max) stack
//   - Words / Completions:      Time O(N) over the visited subtree
//
// Errors:
//
//   - ErrInvalidWord      empty word or a byte outside [A-Za-z]
//   - ErrNodeLimit        WithMaxNodes budget exhausted during Insert
//   - ErrOptionViolation  bad Option passed to New
//
// Concurrency:
//
// A Trie is not safe for concurrent use. Hosts that share one instance across
// goroutines must serialize access themselves (for example one sync.RWMutex
// per Trie, taking the write lock for Insert, Delete, Rebuild and Clear).
//
// Example:
//
//	t, _ := trie.New(trie.WithDeleteThreshold(1))
//	_, _ = t.Insert("abc")
//	_, _ = t.Insert("abz")
//	seq, _ := t.Completions("ab")
//	for w := range seq {
//		fmt.Println(w) // abc, abz
//	}
package trie
