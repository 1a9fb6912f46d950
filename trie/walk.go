// File: walk.go
// Role: the shared depth-first traversal and its consumers
// (Walk, Words, Completions, Export).
//
// Determinism:
//   - Siblings are visited in slot order: 'A'..'Z' then 'a'..'z'.
//
// Restartability:
//   - Every sequence re-reads the tree when ranged over, so each range is a
//     fresh traversal of the current state. The tree must not be mutated
//     while a range over it is in progress.
package trie

import "iter"

// walk visits n and then its subtree in preorder by slot index, appending
// each node's letter to path on the way down. visit receives the path
// spelled so far (valid only for the duration of the call) and the node.
// walk returns false as soon as visit does.
func walk(n *node, path []byte, visit func(path []byte, n *node) bool) bool {
	path = append(path, n.letter)
	if !visit(path, n) {
		return false
	}
	for _, c := range n.children {
		if c != nil && !walk(c, path, visit) {
			return false
		}
	}

	return true
}

// walkRoot runs walk over every top-level child of the root with an empty
// seed, so the root's sentinel letter never appears in a path.
func (t *Trie) walkRoot(visit func(path []byte, n *node) bool) {
	path := make([]byte, 0, 16)
	for _, c := range t.root.children {
		if c != nil && !walk(c, path, visit) {
			return
		}
	}
}

// Walk calls fn for every node below the root in preorder by slot index.
// Returning false from fn stops the walk.
//
// Complexity: O(N) plus one string allocation per visited node.
func (t *Trie) Walk(fn VisitFunc) {
	t.walkRoot(func(path []byte, n *node) bool {
		return fn(string(path), n.terminal)
	})
}

// Words returns every live word in slot order.
//
// Example:
//
//	for w := range t.Words() {
//		fmt.Println(w)
//	}
func (t *Trie) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.walkRoot(func(path []byte, n *node) bool {
			if n.terminal {
				return yield(string(path))
			}
			return true
		})
	}
}

// Completions returns every live word that starts with prefix, the prefix
// itself included when it is live. Each word is yielded exactly once.
//
// Implementation:
//   - Stage 1: Validate prefix (ErrInvalidWord).
//   - Stage 2: On each range, resolve the node at the end of prefix; a
//     missing node yields nothing.
//   - Stage 3: Walk that node's subtree seeded with prefix minus its last
//     letter, which the walk appends back from the node itself.
//
// Errors:
//   - ErrInvalidWord: empty prefix or non-letter byte.
//
// Complexity:
//   - Time O(L + S) for a subtree of S nodes.
func (t *Trie) Completions(prefix string) (iter.Seq[string], error) {
	if err := ValidateWord(prefix); err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		n := t.root.descend(prefix)
		if n == nil {
			return
		}
		seed := make([]byte, len(prefix)-1, len(prefix)+8)
		copy(seed, prefix)
		walk(n, seed, func(path []byte, n *node) bool {
			if n.terminal {
				return yield(string(path))
			}
			return true
		})
	}, nil
}

// Export returns the structure of the tree as parent→child edges in
// preorder by slot index. Each child is emitted before its own subtree.
//
// IDs are assigned per range: the root is 0 and nodes are numbered 1, 2, …
// in emission order. They carry no meaning outside that range.
func (t *Trie) Export() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		next := 0
		var visit func(n *node, id int) bool
		visit = func(n *node, id int) bool {
			for _, c := range n.children {
				if c == nil {
					continue
				}
				next++
				cid := next
				if !yield(Edge{Parent: id, Child: cid, Letter: c.letter, Terminal: c.terminal}) {
					return false
				}
				if !visit(c, cid) {
					return false
				}
			}
			return true
		}
		visit(t.root, 0)
	}
}
