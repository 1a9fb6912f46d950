// Package wordlist moves words between line-oriented text and a trie.Trie.
//
// Load reads one word per line and inserts each valid word. Lines that are
// not valid words (empty, punctuation, digits, non-ASCII letters) are skipped
// and counted; they never abort the load. Save writes the trie's words back
// out one per line in slot order, producing a file Load can read again.
//
// Errors:
//
//   - ErrNilTrie    nil *trie.Trie passed to Load or Save
//   - trie.ErrNodeLimit from Insert aborts Load and is returned wrapped
//   - I/O errors from the underlying reader or writer, wrapped
package wordlist
