// Package shell is the interactive command layer over a trie.Trie.
//
// A line holds one command and at most one argument, split with POSIX shell
// quoting rules:
//
//	.load FILE       insert every valid word of FILE
//	.put WORD        insert WORD
//	.delete WORD     delete WORD
//	.check WORD      print WORD if it is live
//	.print           print every live word
//	.generate NAME   write NAME.dot and render NAME.svg
//	.save FILE       write every live word to FILE
//	.stats           print counters
//	.rebuild         run a compaction pass now
//	.help            list commands
//	.quit            leave the shell
//	PREFIX           print every live word starting with PREFIX
//
// Run drives the shell from any line-oriented reader. RunTerminal drives it
// from a raw-mode terminal with line editing and Tab completion of both
// command names and stored words.
package shell
