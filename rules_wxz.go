package metaphone3

// ruleW implements spec.md §4.4 "W". At word start WR collapses to R,
// WH becomes A, a bare W before a vowel is A/F, and anything else at
// word start is silent. Mid-word, W contributes A/F only when
// encode_vowels is set and a vowel follows.
func (e *Encoder) ruleW() {
	if e.current == 0 {
		switch {
		case e.stringAtForward(0, "WR"):
			e.addBoth("R")
			e.current += 2
		case e.stringAtForward(0, "WH"):
			e.add("A", "A")
			e.current += 2
		case e.isVowel(e.current + 1):
			e.add("A", "F")
			e.current++
		default:
			e.current++
		}
		return
	}

	if e.encodeVowels && e.isVowel(e.current+1) {
		e.add("A", "F")
	}
	e.current++
}

// ruleX implements spec.md §4.4 "X". Word-initial X never reaches
// here; it is rewritten to S by the prefix handler before the main
// loop starts.
func (e *Encoder) ruleX() {
	e.addBoth("KS")
	if e.stringAtForward(0, "XX") {
		e.current += 2
	} else {
		e.current++
	}
}

// germanicZStems are whole words where a Z is pronounced TS rather
// than S.
var germanicZStems = []string{"NAZI", "NAZIFY", "MOZART", "HOLZ", "HERZ", "MERZ", "FITZ", "STOLZ", "PRINZ"}

// isGermanicZ reports the look-behind family from spec.md §4.4 "Z":
// the enumerated Germanic/Slavic name stems, GANZ before a consonant,
// or the word containing SCH anywhere (spec.md §9 Open Questions
// documents this last disjunct as a known-odd but observable behavior
// to preserve verbatim).
func (e *Encoder) isGermanicZ() bool {
	if e.wordIsAnyOf(germanicZStems...) {
		return true
	}
	if e.stringAtBack(3, "GANZ") && !e.isVowel(e.current+1) {
		return true
	}
	return e.contains("SCH")
}

// ruleZ implements spec.md §4.4 "Z".
func (e *Encoder) ruleZ() {
	switch {
	case e.current == 0 && e.stringAtForward(0, "ZW"):
		e.add("S", "S")
		e.current += 2
	case e.stringAtForward(0, "ZZ"):
		if e.stringAtForward(2, "I", "O", "A") {
			e.add("TS", "S")
		} else {
			e.add("S", "S")
		}
		e.current += 2
	case e.stringAtForward(0, "ZIER") && !e.stringAtBack(2, "VI"):
		e.add("J", "S")
		e.current += 4
	case e.stringAtForward(0, "ZSA"):
		e.add("J", "S")
		e.current += 3
	case e.isGermanicZ() && !e.stringAtBack(1, "T"):
		e.add("TS", "TS")
		e.current++
	case e.stringAtForward(0, "ZH"):
		e.add("J", "J")
		e.current += 2
	default:
		e.add("S", "S")
		e.current++
	}
}
