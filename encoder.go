package metaphone3

// Encoder computes Metaphone 3 phonetic keys. The zero value is ready
// to use, equivalent to New(): both EncodeVowels and EncodeExact
// default to false. Use WithEncodeVowels and WithEncodeExact to
// configure it, and Encode to compute keys.
//
// An Encoder reuses its internal buffers across calls: a second call
// to Encode yields the same result as a freshly constructed Encoder
// with the same flags, but the Encoder itself must not be shared
// across goroutines while a call to Encode is in flight.
type Encoder struct {
	encodeVowels bool
	encodeExact  bool

	word    []byte
	current int
	last    int // len(word)-1; meaningful only once word is non-empty

	primary   keyBuffer
	secondary keyBuffer
}

// New returns an Encoder with both EncodeVowels and EncodeExact false.
func New() *Encoder {
	return &Encoder{}
}

// WithEncodeVowels sets whether internal vowels are retained (as "A")
// rather than dropped, and returns the Encoder for chaining.
func (e *Encoder) WithEncodeVowels(v bool) *Encoder {
	e.encodeVowels = v
	return e
}

// WithEncodeExact sets whether voiced/unvoiced consonant pairs (B/P,
// D/T, G/K, V/F, GH/K) are preserved distinctly rather than folded to
// the unvoiced form, and returns the Encoder for chaining.
func (e *Encoder) WithEncodeExact(v bool) *Encoder {
	e.encodeExact = v
	return e
}

// Encode returns the primary and secondary phonetic keys for word.
// Encode is a total function: it never fails, and an empty word
// yields two empty keys. Non-letter characters are treated as no-op
// consonants that the dispatch silently skips.
func (e *Encoder) Encode(word string) (primary, secondary string) {
	e.reset(word)

	if len(e.word) > 0 {
		e.handlePrefix()
		e.mainLoop()
	}

	return e.finalize()
}

// reset reinitializes word, current, last, and both output buffers
// before a fresh call to Encode, so the Encoder is fully reusable.
func (e *Encoder) reset(word string) {
	if cap(e.word) < len(word) {
		e.word = make([]byte, len(word))
	} else {
		e.word = e.word[:len(word)]
	}
	for i := 0; i < len(word); i++ {
		e.word[i] = toUpperASCII(word[i])
	}

	e.current = 0
	e.last = len(e.word) - 1

	e.primary.reset()
	e.secondary.reset()
}

// EncodeBytes is Encode for callers already holding a []byte: it
// upper-cases word directly into the Encoder's own buffer instead of
// going through Encode(string(word)), which would force an extra
// string allocation first.
func (e *Encoder) EncodeBytes(word []byte) (primary, secondary string) {
	e.resetBytes(word)

	if len(e.word) > 0 {
		e.handlePrefix()
		e.mainLoop()
	}

	return e.finalize()
}

// resetBytes is reset specialized to a []byte source, so upper-casing
// writes straight into e.word rather than through an intermediate
// strings.ToUpper allocation.
func (e *Encoder) resetBytes(word []byte) {
	if cap(e.word) < len(word) {
		e.word = make([]byte, len(word))
	} else {
		e.word = e.word[:len(word)]
	}
	for i, b := range word {
		e.word[i] = toUpperASCII(b)
	}

	e.current = 0
	e.last = len(e.word) - 1

	e.primary.reset()
	e.secondary.reset()
}

// toUpperASCII upper-cases a single ASCII byte; per spec.md §4.2,
// normalization is simple ASCII case folding, not full Unicode case
// mapping.
func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// add appends tokP to primary and tokS to secondary, each subject to
// the keyCap.
func (e *Encoder) add(tokP, tokS string) {
	e.primary.add(tokP)
	e.secondary.add(tokS)
}

// addBoth appends the same token to both keys.
func (e *Encoder) addBoth(tok string) {
	e.add(tok, tok)
}

// mainLoop runs the per-character dispatch while the cursor is within
// the word and at least one output buffer still has room.
func (e *Encoder) mainLoop() {
	for e.current <= e.last && !(e.primary.full() && e.secondary.full()) {
		e.dispatch()
	}
}

// finalize truncates both keys to keyCap (a no-op, since add() never
// grows past it) and collapses secondary to empty if it equals
// primary.
func (e *Encoder) finalize() (primary, secondary string) {
	primary = e.primary.String()
	secondary = e.secondary.String()
	if secondary == primary {
		secondary = ""
	}
	return primary, secondary
}
