package metaphone3

// ruleB implements spec.md §4.4 "B": silent in DEBT/SUBT/DOUBT,
// otherwise B (encode_exact) or P, consuming a doubled BB or a BP not
// followed by H.
func (e *Encoder) ruleB() {
	if e.wordIsAnyOf("DEBT", "SUBT", "DOUBT") {
		// The B itself contributes nothing; T was already (or will be)
		// emitted by the T rule.
		e.current++
		return
	}

	if e.encodeExact {
		e.addBoth("B")
	} else {
		e.addBoth("P")
	}

	switch {
	case e.stringAtForward(0, "BB"):
		e.current += 2
	case e.stringAtForward(0, "BP") && !e.stringAtForward(2, "H"):
		e.current += 2
	default:
		e.current++
	}
}

func (e *Encoder) wordIsAnyOf(candidates ...string) bool {
	for _, c := range candidates {
		if len(e.word) == len(c) && e.matchAt(0, c) {
			return true
		}
	}
	return false
}

// ruleC implements spec.md §4.4 "C", the largest single-letter branch
// set after G.
func (e *Encoder) ruleC() {
	// 1. Germanic ACH pattern.
	if e.isGermanicACH() {
		e.addBoth("K")
		e.current += 2
		return
	}

	// 2. CH, general.
	if e.stringAtForward(0, "CH") {
		e.ruleCH()
		return
	}

	// 3. CZ, except WICZ.
	if e.stringAtForward(0, "CZ") && !e.stringAtBack(2, "WI") {
		e.add("S", "X")
		e.current += 2
		return
	}

	// 4. CIA.
	if e.stringAtForward(1, "IA") {
		e.add("X", "X")
		e.current += 3
		return
	}

	// 5. CC, except the opening MCC (e.g. "MCCOY").
	if e.stringAtForward(0, "CC") && !(e.current == 1 && e.stringAtBack(1, "M")) {
		switch {
		case e.stringAtForward(2, "I", "O") || e.stringAtForward(2, "INO", "INI"):
			e.add("X", "X")
			e.current += 2
		case e.stringAtForward(2, "I", "E", "Y") && !e.stringAtForward(3, "H") && !e.wordIsAnyOf("SOCCER"):
			e.add("KS", "KS")
			e.current += 2
		default:
			e.addBoth("K")
			e.current++
		}
		return
	}

	// 6. CK, CG, CQ.
	if e.stringAtForward(0, "CK", "CG", "CQ") {
		e.addBoth("K")
		e.current += 2
		return
	}

	// 7. CI, CE, CY.
	if e.stringAtForward(0, "CI", "CE", "CY") {
		e.add("S", "X")
		e.current += 2
		return
	}

	// 8. Default C.
	e.addBoth("K")
	switch {
	case e.stringAtForward(1, " C", " Q", " G"):
		e.current += 3
	case e.stringAtForward(1, "C", "K", "Q") && !e.stringAtForward(0, "CE", "CI"):
		e.current += 2
	default:
		e.current++
	}
}

// isGermanicACH matches a preceding A, a following H, and a character
// after that is not I, and not E unless the word ends BACHER/MACHER.
func (e *Encoder) isGermanicACH() bool {
	if !(e.stringAtBack(1, "A") && e.stringAtForward(1, "H")) {
		return false
	}
	if e.stringAtForward(2, "I") {
		return false
	}
	if e.stringAtForward(2, "E") && !e.stringEnd("BACHER", "MACHER") {
		return false
	}
	return true
}

// acheFamily is the set of literal stems from spec.md §9's Open
// Questions note: "ache/echo/micheal/jericho/leprech/..." tested
// against an anchor at current-1..current+3.
var acheFamily = []string{"ACHE", "ECHO", "MICHEAL", "JERICHO", "LEPRECH"}

// acheStems are word-initial stems that combine with "-ACHE" to form
// the compound ache family (back-ache, head-ache, ...).
var acheStems = []string{"EAR", "HEAD", "BACK", "HEART", "BELLY", "TOOTH"}

func (e *Encoder) ruleCH() {
	// ache/echo/micheal/jericho/leprech/back-ache/... families.
	if e.stringAt(e.current-1, acheFamily...) {
		e.add("K", "X")
		e.current += 2
		return
	}
	for _, stem := range acheStems {
		if e.stringStart(stem) && e.stringAt(e.current-1, "ACHE") {
			e.add("K", "X")
			e.current += 2
			return
		}
	}

	// Germanic -ACH-, preceded by a consonant, not MACHADO/MACHUCA,
	// and not followed by I or a non-BACHER/MACHER E.
	if e.stringAtBack(1, "A") && !e.isVowel(e.current-2) &&
		!e.wordIsAnyOf("MACHADO", "MACHUCA") &&
		!e.stringAtForward(2, "I") &&
		!(e.stringAtForward(2, "E") && !e.stringEnd("BACHER", "MACHER")) {
		e.addBoth("K")
		e.current += 2
		return
	}

	e.add("X", "K")
	e.current += 2
}

// ruleD implements spec.md §4.4 "D".
func (e *Encoder) ruleD() {
	if e.stringAtForward(0, "DG") {
		if e.stringAtForward(2, "I", "E", "Y") {
			e.add("J", "J")
			e.current += 3
		} else {
			e.add("TK", "TK")
			e.current += 2
		}
		return
	}

	if e.stringAtForward(0, "DT", "DD") {
		e.addBoth("T")
		e.current += 2
		return
	}

	if e.encodeExact {
		if e.current == e.last && e.stringAtBack(3, "SSE") {
			e.addBoth("T")
		} else {
			e.addBoth("D")
		}
	} else {
		e.addBoth("T")
	}
	e.current++
}

// ruleF implements spec.md §4.4 "F".
func (e *Encoder) ruleF() {
	e.addBoth("F")
	if e.stringAtForward(0, "FF") {
		e.current += 2
	} else {
		e.current++
	}
}
