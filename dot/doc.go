// Package dot renders the structure of a trie.Trie as a Graphviz digraph and
// hands it to the external layout tool for rasterizing.
//
// Node styling follows one rule per node kind:
//
//	root      label ".", filled red
//	inner     filled black
//	terminal  filled green
//
// Node names are "n<ID>" using the transient IDs from trie.Export, so two
// exports of the same tree shape produce byte-identical text.
//
// Rendering large tries produces unreadable images, so Write refuses tries
// holding more than Limit words (DefaultLimit unless overridden).
package dot
