package trie

// node is a single trie vertex.
//
// children is indexed by MapLetter of the child's letter. Each non-nil slot
// is owned exclusively by this node: no node is ever reachable from two
// parents, so dropping a slot releases the whole subtree below it.
type node struct {
	letter   byte
	children [AlphabetSize]*node
	terminal bool
}

// newNode allocates a node carrying letter with every slot empty.
func newNode(letter byte) *node {
	return &node{letter: letter}
}

// descend follows word from n one slot per letter and returns the node
// reached after the last letter, or nil as soon as a slot is empty.
// word must already be validated.
func (n *node) descend(word string) *node {
	cur := n
	for i := 0; i < len(word) && cur != nil; i++ {
		idx, _ := MapLetter(word[i])
		cur = cur.children[idx]
	}

	return cur
}
