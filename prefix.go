package metaphone3

// handlePrefix implements spec.md §4.3: word-initial patterns examined
// before the main dispatch loop. The two-letter prefixes only apply
// when the word has more than one character; the initial-X and
// initial-vowel checks that follow apply whenever the word is
// non-empty, since a lone letter ("A") must still resolve to a key.
func (e *Encoder) handlePrefix() {
	if e.last > 0 {
		switch {
		case e.stringStart("GN", "KN", "PN"):
			e.addBoth("N")
			e.current += 2
		case e.stringStart("AE"):
			e.addBoth("E")
			e.current += 2
		case e.stringStart("WR"):
			e.addBoth("R")
			e.current += 2
		case e.stringStart("WH"):
			e.addBoth("A")
			e.current += 2
		}
	}

	if e.current > e.last {
		return
	}

	switch {
	case e.word[0] == 'X':
		// Xavier, Xerox
		e.addBoth("S")
		e.current++
	case e.isVowel(0):
		e.addBoth("A")
		e.current++
	}
}
