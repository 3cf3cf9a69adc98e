package metaphone3

// This file is the primitive operations of the rule language described
// in spec.md's DESIGN NOTES: string_at_forward, string_at_back and
// string_start, plus the vowel and Slavo-Germanic tests they support.
// The shape (an indexable buffer, an explicit cursor, and look-behind
// / look-ahead helpers over a candidate set) follows the teacher's
// Runes/Pos buffer and its SeekPreviousIndex/SeekForward methods.

func isVowelByte(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

func (e *Encoder) isVowel(pos int) bool {
	if pos < 0 || pos > e.last {
		return false
	}
	return isVowelByte(e.word[pos])
}

// stringAt reports whether any of candidates matches word[pos:pos+len(candidate)],
// for pos relative to the start of the word (can be negative or run past
// the end, in which case it simply fails to match).
func (e *Encoder) stringAt(pos int, candidates ...string) bool {
	for _, c := range candidates {
		if e.matchAt(pos, c) {
			return true
		}
	}
	return false
}

func (e *Encoder) matchAt(pos int, s string) bool {
	if pos < 0 || pos+len(s) > len(e.word) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if e.word[pos+i] != s[i] {
			return false
		}
	}
	return true
}

// stringAtForward is string_at(offset, {...}) looking ahead of current:
// offset 0 means "starting at current".
func (e *Encoder) stringAtForward(offset int, candidates ...string) bool {
	return e.stringAt(e.current+offset, candidates...)
}

// stringAtBack is string_at(offset, {...}) looking behind current:
// offset 1 means "the character immediately before current".
func (e *Encoder) stringAtBack(offset int, candidates ...string) bool {
	return e.stringAt(e.current-offset, candidates...)
}

// stringStart reports whether the word begins with any candidate, i.e.
// string_start({...}) from spec.md's predicate list. Unlike stringAt*,
// this is always relative to position 0, not the cursor.
func (e *Encoder) stringStart(candidates ...string) bool {
	return e.stringAt(0, candidates...)
}

// stringEnd reports whether the word ends with any candidate.
func (e *Encoder) stringEnd(candidates ...string) bool {
	for _, c := range candidates {
		if len(c) > len(e.word) {
			continue
		}
		if e.matchAt(len(e.word)-len(c), c) {
			return true
		}
	}
	return false
}

// contains reports whether the word contains s anywhere.
func (e *Encoder) contains(s string) bool {
	if len(s) == 0 || len(s) > len(e.word) {
		return false
	}
	for i := 0; i+len(s) <= len(e.word); i++ {
		if e.matchAt(i, s) {
			return true
		}
	}
	return false
}

// isSlavoGermanic is the heuristic from the GLOSSARY: begins with J, W,
// SCH, or SW.
func (e *Encoder) isSlavoGermanic() bool {
	return e.stringStart("J", "W", "SCH", "SW")
}
