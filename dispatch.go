package metaphone3

// dispatch runs one step of the main loop: it inspects word[current]
// and runs the rule block for that character. Every rule block
// advances current by 1-4 before returning; there is no other control
// flow between iterations. This mirrors the teacher's SplitFunc/Scan
// loops, which also dispatch on the rune at a cursor and advance by a
// variable width per iteration.
func (e *Encoder) dispatch() {
	switch e.word[e.current] {
	case 'B':
		e.ruleB()
	case 'C':
		e.ruleC()
	case 'D':
		e.ruleD()
	case 'F':
		e.ruleF()
	case 'G':
		e.ruleG()
	case 'H':
		e.ruleH()
	case 'J':
		e.ruleJ()
	case 'K':
		e.ruleK()
	case 'L':
		e.ruleL()
	case 'M':
		e.ruleM()
	case 'N':
		e.ruleN()
	case 'P':
		e.ruleP()
	case 'Q':
		e.ruleQ()
	case 'R':
		e.ruleR()
	case 'S':
		e.ruleS()
	case 'T':
		e.ruleT()
	case 'V':
		e.ruleV()
	case 'W':
		e.ruleW()
	case 'X':
		e.ruleX()
	case 'Z':
		e.ruleZ()
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		e.ruleVowel()
	default:
		// Non-letter input: a no-op consonant, per spec.md §4.2.
		e.current++
	}
}
