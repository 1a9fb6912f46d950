package trie_test

import (
	"testing"

	"github.com/katalvlaran/lvltrie/trie"
)

// benchWords builds n distinct words of up to five letters by spelling i in base 52.
func benchWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		buf := make([]byte, 0, 5)
		for v := i + 1; v > 0; v /= trie.AlphabetSize {
			buf = append(buf, trie.Letter(v%trie.AlphabetSize))
		}
		words[i] = string(buf)
	}

	return words
}

// BenchmarkInsert_10000 measures inserting 10,000 short words into a fresh trie.
func BenchmarkInsert_10000(b *testing.B) {
	words := benchWords(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, _ := trie.New()
		for _, w := range words {
			_, _ = t.Insert(w)
		}
	}
}

// BenchmarkCheck_10000 measures lookups against a prebuilt trie.
func BenchmarkCheck_10000(b *testing.B) {
	words := benchWords(10000)
	t, _ := trie.New()
	for _, w := range words {
		_, _ = t.Insert(w)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Check(words[i%len(words)])
	}
}

// BenchmarkDeleteRebuild measures deleting every word with the default
// threshold, which amortizes compaction over 50 deletions.
func BenchmarkDeleteRebuild(b *testing.B) {
	words := benchWords(5000)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t, _ := trie.New()
		for _, w := range words {
			_, _ = t.Insert(w)
		}
		b.StartTimer()
		for _, w := range words {
			_, _ = t.Delete(w)
		}
	}
}

// BenchmarkWords measures a full enumeration.
func BenchmarkWords(b *testing.B) {
	t, _ := trie.New()
	for _, w := range benchWords(10000) {
		_, _ = t.Insert(w)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range t.Words() {
		}
	}
}
