// Package phoneset groups words by phonetic key, so callers can ask
// "what words already in my list sound like this one" rather than
// just computing a single word's key.
package phoneset

import "github.com/wordsound/metaphone3"

// Index maps phonetic keys to the words that produced them.
type Index struct {
	encoder *metaphone3.Encoder
	byKey   map[string][]string
}

// New builds an Index from words, using enc to compute each word's
// primary and secondary key. A nil enc uses default flags
// (metaphone3.New()).
func New(words []string, enc *metaphone3.Encoder) *Index {
	if enc == nil {
		enc = metaphone3.New()
	}

	idx := &Index{
		encoder: enc,
		byKey:   make(map[string][]string),
	}
	for _, w := range words {
		idx.add(w)
	}
	return idx
}

func (idx *Index) add(word string) {
	primary, secondary := idx.encoder.Encode(word)
	if primary != "" {
		idx.byKey[primary] = append(idx.byKey[primary], word)
	}
	if secondary != "" {
		idx.byKey[secondary] = append(idx.byKey[secondary], word)
	}
}

// Len returns the number of distinct phonetic keys in the index.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Match returns every indexed word whose primary or secondary key
// matches word's, deduplicated.
func (idx *Index) Match(word string) []string {
	primary, secondary := idx.encoder.Encode(word)

	seen := make(map[string]struct{})
	var out []string
	for _, key := range [2]string{primary, secondary} {
		if key == "" {
			continue
		}
		for _, w := range idx.byKey[key] {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
