package metaphone3

// ruleR implements spec.md §4.4 "R".
func (e *Encoder) ruleR() {
	e.addBoth("R")
	if e.stringAtForward(0, "RR") {
		e.current += 2
	} else {
		e.current++
	}
}

// ruleS implements spec.md §4.4 "S". The word-initial S before
// M/N/L/W case (SMITH vs. Germanic SCHMIDT) is not spelled out in the
// summarized rule prose, but is required to reproduce the literal
// SMITH -> SM0/XMT scenario; it is cross-checked against the
// equivalent branch of Double Metaphone (see DESIGN.md).
func (e *Encoder) ruleS() {
	switch {
	case e.stringAtForward(0, "SH"):
		e.add("X", "X")
		e.current += 2
	case e.current == 0 && e.stringAtForward(1, "M", "N", "L", "W"):
		e.add("S", "X")
		e.current++
	case e.stringAtForward(0, "SI", "SY") && e.isVowel(e.current+2):
		e.add("S", "X")
		e.current += 2
	case e.stringAtForward(0, "SZ"):
		e.add("S", "X")
		e.current += 2
	case e.stringAtForward(0, "SS"):
		e.add("S", "S")
		e.current += 2
	default:
		e.add("S", "S")
		e.current++
	}
}

// tiExceptions are TI-followed-by-vowel words that keep the T sound
// rather than collapsing to X (FRONTIER, UNTIED, PARTIES, ...).
var tiExceptions = []string{"TIER", "TIED", "TIES", "TIEN"}

// ruleT implements spec.md §4.4 "T".
func (e *Encoder) ruleT() {
	switch {
	case e.stringAtForward(0, "TH"):
		e.add("0", "T")
		e.current += 2
	case e.stringAtForward(0, "TI") && e.stringAtForward(2, "O", "A", "U") && !e.stringAtForward(0, tiExceptions...):
		e.add("X", "X")
		e.current += 2
	case e.stringAtForward(0, "TT", "TD"):
		e.add("T", "T")
		e.current += 2
	default:
		e.add("T", "T")
		e.current++
	}
}

// ruleV implements spec.md §4.4 "V".
func (e *Encoder) ruleV() {
	if e.encodeExact {
		e.addBoth("V")
	} else {
		e.addBoth("F")
	}
	if e.stringAtForward(0, "VV") {
		e.current += 2
	} else {
		e.current++
	}
}
