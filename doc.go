// Package lvltrie is an in-memory prefix tree for ASCII letter words with
// fast completion, lazy deletion and a small interactive shell around it.
//
// 🚀 What is lvltrie?
//
//	A compact toolkit that brings together:
//		• Core trie: insert, check, delete, complete over a 52-letter alphabet
//		• Lazy deletion with threshold-triggered compaction of dead branches
//		• Word list loading and saving, one word per line
//		• Graphviz export of the tree shape, rendered by the dot tool
//		• A line-oriented shell with Tab completion on real terminals
//
// Under the hood, everything is organized under these subpackages:
//
//	trie/         the prefix tree, its traversals and compaction
//	wordlist/     bulk load and save of plain-text word lists
//	dot/          DOT export and graphviz invocation
//	config/       settings from flags, environment, .env and config files
//	shell/        command dispatch and the interactive loop
//	cmd/lvltrie/  the CLI binary
//
// Quick example:
//
//	t, _ := trie.New()
//	t.Insert("car")
//	t.Insert("cart")
//	seq, _ := t.Completions("ca")
//	for w := range seq {
//		fmt.Println(w) // car, cart
//	}
//
// See the subpackage docs for options, errors and complexity notes.
package lvltrie
