// File: types.go
// Role: sentinel errors, options and the exported record types shared by
// the trie engine.
package trie

import (
	"errors"
	"fmt"
)

const (
	// AlphabetSize is the fan-out of every node: 26 uppercase + 26 lowercase letters.
	AlphabetSize = 52

	// RootLetter is the sentinel letter carried by the root node. It is not a
	// member of the alphabet, so it can never collide with a stored letter.
	RootLetter byte = '.'

	// DefaultDeleteThreshold is the number of successful deletions that arms
	// a compaction pass when no WithDeleteThreshold option is given.
	DefaultDeleteThreshold = 50
)

// Sentinel errors for trie operations.
var (
	// ErrInvalidWord indicates an empty word or one containing a byte outside [A-Za-z].
	ErrInvalidWord = errors.New("trie: invalid word")

	// ErrNodeLimit indicates that Insert needed a new node but the budget set
	// by WithMaxNodes was already spent.
	ErrNodeLimit = errors.New("trie: node limit reached")

	// ErrOptionViolation is returned by New when an Option carries an invalid value.
	ErrOptionViolation = errors.New("trie: invalid option supplied")
)

// Option configures a Trie at construction time.
// Invalid values are recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables applied by New.
type Options struct {
	// DeleteThreshold is the number of successful deletions after which a
	// compaction pass runs. Must be >= 1.
	DeleteThreshold int

	// MaxNodes caps the number of non-root nodes. 0 means unlimited.
	MaxNodes int

	// OnRebuild, if non-nil, is called after every compaction pass.
	OnRebuild func(RebuildStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - DeleteThreshold = DefaultDeleteThreshold
//   - no node budget
//   - no rebuild hook
func DefaultOptions() Options {
	return Options{
		DeleteThreshold: DefaultDeleteThreshold,
		MaxNodes:        0,
		OnRebuild:       nil,
		err:             nil,
	}
}

// WithDeleteThreshold sets how many successful deletions trigger compaction.
//
//	n < 1: invalid option → ErrOptionViolation
func WithDeleteThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: delete threshold must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.DeleteThreshold = n
	}
}

// WithMaxNodes caps the number of nodes the Trie may hold (root excluded).
// A value of 0 disables the cap.
//
//	n < 0: invalid option → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: node limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithOnRebuild installs fn as a hook that runs after each compaction pass.
// The trie never logs on its own; hosts observe rebuilds through this hook.
func WithOnRebuild(fn func(RebuildStats)) Option {
	return func(o *Options) {
		o.OnRebuild = fn
	}
}

// RebuildStats reports the outcome of one compaction pass.
type RebuildStats struct {
	// Pruned is the number of nodes released by the pass.
	Pruned int

	// Remaining is the number of non-root nodes left in the tree.
	Remaining int
}

// Edge is one parent→child link emitted by Export.
//
// IDs are transient: the root is always 0 and every other node is numbered in
// visit order, starting from 1, afresh on each Export call.
type Edge struct {
	Parent   int  // ID of the parent node (0 for the root)
	Child    int  // ID of the child node
	Letter   byte // letter carried by the child
	Terminal bool // child ends a live word
}

// VisitFunc is called by Walk for every node below the root.
// path is the word spelled from the root to the node; terminal reports
// whether that word is live. Returning false stops the walk.
type VisitFunc func(path string, terminal bool) bool
