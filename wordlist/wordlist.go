package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvltrie/trie"
)

// ErrNilTrie is returned when a nil trie is passed to Load or Save.
var ErrNilTrie = errors.New("wordlist: trie is nil")

// Report summarizes one Load call.
type Report struct {
	Lines      int // lines read
	Added      int // words that became live
	Duplicates int // valid words that were already live
	Invalid    int // lines skipped as invalid words
}

// Option configures Load.
type Option func(*options)

type options struct {
	onInvalid func(line int, word string)
	onAdded   func(word string)
}

// WithOnInvalid installs a hook called for every skipped line.
// line is 1-based.
func WithOnInvalid(fn func(line int, word string)) Option {
	return func(o *options) { o.onInvalid = fn }
}

// WithOnAdded installs a hook called for every word that became live.
func WithOnAdded(fn func(word string)) Option {
	return func(o *options) { o.onAdded = fn }
}

// Load inserts every line of r into t.
//
// Implementation:
//   - Stage 1: Scan r line by line; strip a trailing carriage return.
//   - Stage 2: Insert the line; invalid words are counted and reported
//     through WithOnInvalid, never returned.
//   - Stage 3: Stop on trie.ErrNodeLimit or a read error and return the
//     partial Report with the error.
//
// Complexity:
//   - Time O(total bytes), Space O(longest line).
func Load(r io.Reader, t *trie.Trie, opts ...Option) (Report, error) {
	var rep Report
	if t == nil {
		return rep, ErrNilTrie
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rep.Lines++
		word := strings.TrimSuffix(sc.Text(), "\r")

		added, err := t.Insert(word)
		switch {
		case errors.Is(err, trie.ErrInvalidWord):
			rep.Invalid++
			if o.onInvalid != nil {
				o.onInvalid(rep.Lines, word)
			}
		case err != nil:
			return rep, fmt.Errorf("wordlist: line %d: %w", rep.Lines, err)
		case added:
			rep.Added++
			if o.onAdded != nil {
				o.onAdded(word)
			}
		default:
			rep.Duplicates++
		}
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("wordlist: read after line %d: %w", rep.Lines, err)
	}

	return rep, nil
}

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string, t *trie.Trie, opts ...Option) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	return Load(f, t, opts...)
}

// Save writes every live word of t to w, one per line, in slot order.
// It returns the number of words written.
func Save(w io.Writer, t *trie.Trie) (int, error) {
	if t == nil {
		return 0, ErrNilTrie
	}

	bw := bufio.NewWriter(w)
	n := 0
	for word := range t.Words() {
		if _, err := bw.WriteString(word); err != nil {
			return n, fmt.Errorf("wordlist: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("wordlist: write: %w", err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("wordlist: flush: %w", err)
	}

	return n, nil
}

// SaveFile creates (or truncates) path and calls Save.
func SaveFile(path string, t *trie.Trie) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("wordlist: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wordlist: close: %w", cerr)
		}
	}()

	return Save(f, t)
}
