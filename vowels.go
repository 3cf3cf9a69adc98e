package metaphone3

// ruleVowel implements spec.md §4.4 "Vowels". With encode_vowels, a
// vowel contributes "A" to both keys unless it is a silent final E
// (§4.5) or the buffer's last emitted primary character is already
// "A" (adjacent vowel runs collapse to one marker). Without
// encode_vowels, vowels contribute nothing. Either way the cursor
// always advances by 1.
func (e *Encoder) ruleVowel() {
	if e.encodeVowels && !e.isSilentVowelE() && e.primary.last() != 'A' {
		e.addBoth("A")
	}
	e.current++
}

// isSilentVowelE reports whether the vowel at the cursor is an E
// silenced by §4.5. Only E is ever silent; other vowels always
// contribute.
func (e *Encoder) isSilentVowelE() bool {
	if e.word[e.current] != 'E' {
		return false
	}
	return e.isSilentFinalE(e.current)
}

// isSilentFinalE implements spec.md §4.5. The spec's "suffix starting
// at current is NESS or LESS" and "suffix is LY" clauses are written
// against the E itself, so they are applied here as the E combining
// with the following letters to spell ENESS/ELESS/ELY exactly through
// to the end of the word.
func (e *Encoder) isSilentFinalE(pos int) bool {
	n := len(e.word)
	switch {
	case pos == e.last:
		return !e.hasPronouncedFinalE()
	case pos+1 == e.last && (e.word[pos+1] == 'D' || e.word[pos+1] == 'S'):
		return true
	case e.stringAt(pos, "ENESS", "ELESS") && pos+5 == n:
		return true
	case e.stringAt(pos, "ELY") && pos+3 == n:
		return true
	}
	return false
}
