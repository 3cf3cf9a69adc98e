package metaphone3

// ruleM implements spec.md §4.4 "M": a silent B after "UMB" at word
// end or before "ER" (NUMB, DUMB, PLUMBER) is swallowed along with the
// M, so the B rule never sees it.
func (e *Encoder) ruleM() {
	e.addBoth("M")
	switch {
	case e.stringAtBack(1, "U") && e.stringAtForward(1, "B") && (e.current+1 == e.last || e.stringAtForward(2, "ER")):
		e.current += 2
	case e.stringAtForward(0, "MM"):
		e.current += 2
	default:
		e.current++
	}
}

// ruleN implements spec.md §4.4 "N".
func (e *Encoder) ruleN() {
	e.addBoth("N")
	if e.stringAtForward(0, "NN") {
		e.current += 2
	} else {
		e.current++
	}
}

// ruleP implements spec.md §4.4 "P".
func (e *Encoder) ruleP() {
	if e.stringAtForward(0, "PH") {
		e.add("F", "F")
		e.current += 2
		return
	}

	e.addBoth("P")
	if e.stringAtForward(0, "PP", "PB") {
		e.current += 2
	} else {
		e.current++
	}
}

// ruleQ implements spec.md §4.4 "Q".
func (e *Encoder) ruleQ() {
	e.addBoth("K")
	if e.stringAtForward(0, "QQ") {
		e.current += 2
	} else {
		e.current++
	}
}
