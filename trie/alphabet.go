package trie

import "fmt"

// Bounds of the two letter blocks. Uppercase occupies slots [0,26),
// lowercase occupies slots [26,52).
const (
	upperBlock = 0
	lowerBlock = 26
)

// MapLetter maps a single byte to its slot index in [0, AlphabetSize).
//
// 'A'..'Z' map to 0..25 and 'a'..'z' map to 26..51. Any other byte, including
// RootLetter and every byte of a multi-byte UTF-8 sequence, reports ok=false.
//
// Complexity: O(1).
func MapLetter(ch byte) (idx int, ok bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return upperBlock + int(ch-'A'), true
	case ch >= 'a' && ch <= 'z':
		return lowerBlock + int(ch-'a'), true
	default:
		return 0, false
	}
}

// Letter is the inverse of MapLetter. It returns 0 for an index outside
// [0, AlphabetSize).
func Letter(idx int) byte {
	switch {
	case idx >= upperBlock && idx < lowerBlock:
		return 'A' + byte(idx-upperBlock)
	case idx >= lowerBlock && idx < AlphabetSize:
		return 'a' + byte(idx-lowerBlock)
	default:
		return 0
	}
}

// IsValidWord reports whether word is non-empty and made only of letters
// accepted by MapLetter.
func IsValidWord(word string) bool {
	return badOffset(word) < 0
}

// ValidateWord is the error-returning form of IsValidWord.
// The returned error wraps ErrInvalidWord and names the offending byte.
func ValidateWord(word string) error {
	switch off := badOffset(word); {
	case off < 0:
		return nil
	case word == "":
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	default:
		return fmt.Errorf("%w: %q has non-letter %q at offset %d", ErrInvalidWord, word, word[off], off)
	}
}

// badOffset returns the offset of the first byte MapLetter rejects, 0 for
// the empty word, or -1 when the whole word is valid.
func badOffset(word string) int {
	if word == "" {
		return 0
	}
	for i := 0; i < len(word); i++ {
		if _, ok := MapLetter(word[i]); !ok {
			return i
		}
	}

	return -1
}
