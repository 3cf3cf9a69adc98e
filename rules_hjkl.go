package metaphone3

// arabicHStems are Arabic name stems whose H is silent before an E.
var arabicHStems = []string{"ABDEL", "ABDUL", "ABDELWAH"}

// ruleH implements spec.md §4.4 "H".
func (e *Encoder) ruleH() {
	if e.stringStart(arabicHStems...) && e.stringAtForward(1, "E") {
		e.current++
		return
	}

	initialBeforeVowel := e.current == 0 && e.isVowel(e.current+1)
	betweenVowels := e.isVowel(e.current-1) && e.isVowel(e.current+1)

	if initialBeforeVowel || betweenVowels {
		e.addBoth("H")
	}
	e.current++
}

// ruleJ implements spec.md §4.4 "J".
func (e *Encoder) ruleJ() {
	switch {
	case e.current == 0 && e.stringAtForward(1, "OSE"):
		e.addBoth("H")
	case e.current == 0 && e.isVowel(e.current+1):
		e.add("J", "A")
	default:
		e.addBoth("J")
	}
	e.current++
}

// ruleK implements spec.md §4.4 "K".
func (e *Encoder) ruleK() {
	e.addBoth("K")
	if e.stringAtForward(0, "KK") {
		e.current += 2
	} else {
		e.current++
	}
}

// ruleL implements spec.md §4.4 "L".
func (e *Encoder) ruleL() {
	if e.encodeVowels && e.isFinalSilentLE() {
		e.add("AL", "AL")
		e.current += 2
		return
	}

	e.addBoth("L")
	if e.stringAtForward(0, "LL") {
		e.current += 2
	} else {
		e.current++
	}
}

// isFinalSilentLE matches a word-final "LE" (or "LE" one short of the
// end) preceded by a consonant, e.g. "APPLE", "SINGLE".
func (e *Encoder) isFinalSilentLE() bool {
	if !e.stringAtForward(1, "E") {
		return false
	}
	if e.current+1 != e.last && e.current+2 != e.last {
		return false
	}
	return !e.isVowel(e.current - 1)
}
