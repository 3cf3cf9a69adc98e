package metaphone3

// ruleG implements spec.md §4.4 "G", the hardest single-letter branch
// set: GH, GN, GG, GK, GL, the front-vowel GI/GE/GY family, and a
// default.
func (e *Encoder) ruleG() {
	switch {
	case e.stringAtForward(0, "GH"):
		e.ruleGH()
	case e.stringAtForward(0, "GN"):
		e.ruleGN()
	case e.stringAtForward(0, "GG"):
		e.ruleGG()
	case e.stringAtForward(0, "GK"):
		e.addBoth("K")
		e.current += 2
	case e.isVowel(e.current-1) && e.stringAtForward(1, "LIA", "LIO", "LIE"):
		if e.encodeExact {
			e.add("L", "GL")
		} else {
			e.add("L", "KL")
		}
		e.current += 2
	case e.stringAtForward(1, "I", "E", "Y"):
		e.ruleFrontVowelG()
	default:
		if e.encodeExact {
			e.addBoth("G")
		} else {
			e.addBoth("K")
		}
		e.current++
	}
}

// germanicGHBehind1 are the characters that make a preceding GH
// silent when found immediately before the G.
var germanicGHBehind1 = []string{"B", "H", "D", "G", "L", "I"}

// germanicGHBehind2 are the characters two positions before the G
// that make GH silent, except in ENOUGH.
var germanicGHBehind2 = []string{"B", "H", "D", "K", "W", "N", "P", "V"}

// ghEndSuffixes are the letter pairs that make GH silent when they
// immediately follow it, except in GALLAGHER.
var ghEndSuffixes = []string{"IE", "EY", "ES", "ER", "ED", "TY"}

func (e *Encoder) isSilentGH() bool {
	switch {
	case e.stringAtBack(1, germanicGHBehind1...):
		return true
	case e.stringAtBack(2, germanicGHBehind2...) && !e.wordIsAnyOf("ENOUGH"):
		return true
	case e.stringAtBack(4, "PL", "SL"):
		return true
	case e.wordIsAnyOf("PUGH"):
		return true
	case e.current == e.last-1:
		// GH is the word's final two letters.
		return true
	case e.stringAtForward(2, ghEndSuffixes...) && !e.wordIsAnyOf("GALLAGHER"):
		return true
	}
	return false
}

// isAughGH matches the "augh/ough/laugh" family: a U immediately
// before the G, a vowel before that, and either nothing, or one of
// C|G|L|R|T|N|S, after the H.
func (e *Encoder) isAughGH() bool {
	if !(e.stringAtBack(1, "U") && e.isVowel(e.current-2)) {
		return false
	}
	if e.current+2 > e.last {
		return true
	}
	return e.stringAtForward(2, "C", "G", "L", "R", "T", "N", "S")
}

func (e *Encoder) ruleGH() {
	// The augh/ough/laugh family is checked before the silent-GH family:
	// it is itself GH at the end of a word (or before a narrow suffix
	// set), which would otherwise also satisfy the "penultimate" silent
	// condition below, but LAUGH/ENOUGH/TOUGH/ROUGH/COUGH are voiced F,
	// not silent.
	if e.isAughGH() {
		e.addBoth("F")
		e.current += 2
		return
	}

	if !e.wordIsAnyOf("BALOGH", "SABAGH") && e.isSilentGH() {
		e.current += 2
		return
	}

	switch {
	case e.current == 0:
		if e.stringAtForward(2, "I") {
			e.addBoth("J")
		} else {
			e.addBoth("K")
		}
	case !e.isVowel(e.current - 1):
		e.addBoth("K")
	default:
		if e.encodeExact {
			e.addBoth("G")
		} else {
			e.addBoth("K")
		}
	}
	e.current += 2
}

// gnSuffixes are the suffixes that keep GN from collapsing to a
// nasal-only N.
var gnSuffixes = []string{"ATE", "ITY", "ATOR", "ATION"}

func (e *Encoder) ruleGN() {
	if e.isVowel(e.current-1) && e.stringAtForward(2, "I", "U", "E") && !e.hasSuffix(gnSuffixes...) {
		if e.encodeExact {
			e.add("N", "GN")
		} else {
			e.add("N", "KN")
		}
	} else {
		if e.encodeExact {
			e.add("GN", "GN")
		} else {
			e.add("KN", "KN")
		}
	}
	e.current += 2
}

func (e *Encoder) hasSuffix(suffixes ...string) bool {
	return e.stringEnd(suffixes...)
}

// italianGG are word endings where GG represents the Italian/soft
// "gg" sound (formaggio, arpeggio, snuggie), matched against the
// letter before the GG.
var italianGG = []string{"AGGIA", "OGGIA", "AGGIO", "EGGIO", "IGGIO", "UGGIE"}

func (e *Encoder) ruleGG() {
	if e.stringAtBack(1, italianGG...) {
		e.add("J", "J")
	} else if e.encodeExact {
		e.addBoth("G")
	} else {
		e.addBoth("K")
	}
	e.current += 2
}

// germanicNameStems end in GE/GI/GY but are pronounced with a hard G.
var germanicNameStems = []string{"INGE", "LAGE", "HAGE", "LANGE", "SYNGE", "BENGE", "RUNGE", "HELGE"}

// hardGStems contain GI/GE/GY internally but are still hard-G: the
// 4-letter *ANG/*ING/*ONG endings and the 6-letter FORGET/TARGET/MARGIT
// stems. In every one of these G is the stem's fourth character, so a
// single stringAtBack(3, ...) call anchors all of them against current.
var hardGStems = []string{"DANG", "FANG", "SING", "RING", "WING", "HANG", "LONG", "FORGET", "TARGET", "MARGIT"}

var hardGSuffixes = []string{"EAR", "EIS", "IRL", "IVE", "IFT", "IRD"}

func (e *Encoder) ruleFrontVowelG() {
	atEnd := e.current+1 == e.last

	hard := false
	switch {
	case atEnd:
		hard = e.stringEnd(germanicNameStems...)
	case e.stringAtBack(5, "DISINGEN"):
		hard = false
	case e.stringAtBack(3, hardGStems...):
		hard = true
	case e.contains("NGY"):
		hard = true
	case e.stringAtForward(2, hardGSuffixes...):
		hard = true
	case e.stringAtForward(2, "ISH") && !e.stringStart("LARG"):
		hard = true
	}

	switch {
	case hard:
		if e.encodeExact {
			e.addBoth("G")
		} else {
			e.addBoth("K")
		}
	case atEnd:
		e.add("J", "J")
	case e.isSlavoGermanic():
		if e.encodeExact {
			e.add("K", "G")
		} else {
			e.add("K", "K")
		}
	default:
		e.add("J", "K")
	}
	e.current++
}
