//go:build go1.18

package metaphone3_test

import (
	"testing"

	"github.com/wordsound/metaphone3"
)

func FuzzEncode(f *testing.F) {
	seeds := []string{
		"", "a", "A", "Smith", "Schwarzenegger", "Featherstonehaugh",
		"Kathryn", "Goblin", "Aaberg", "ache", "supernode", "'", "123", "Zürich",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, word string) {
		for _, vowels := range []bool{false, true} {
			for _, exact := range []bool{false, true} {
				enc := metaphone3.New().WithEncodeVowels(vowels).WithEncodeExact(exact)

				p1, s1 := enc.Encode(word)
				if len(p1) > 8 {
					t.Fatalf("Encode(%q) primary %q exceeds 8 chars", word, p1)
				}
				if len(s1) > 8 {
					t.Fatalf("Encode(%q) secondary %q exceeds 8 chars", word, s1)
				}
				if p1 == s1 && s1 != "" {
					t.Fatalf("Encode(%q) returned equal non-empty primary/secondary (%q, %q); secondary should collapse to empty", word, p1, s1)
				}

				// Idempotent reuse: the same instance, called again, must
				// return the same result.
				p2, s2 := enc.Encode(word)
				if p1 != p2 || s1 != s2 {
					t.Fatalf("Encode(%q) not idempotent on reuse: (%q,%q) then (%q,%q)", word, p1, s1, p2, s2)
				}
			}
		}
	})
}
