package metaphone3_test

import (
	"strings"
	"testing"

	"github.com/wordsound/metaphone3"
)

func TestLiteralScenarios(t *testing.T) {
	cases := []struct {
		word                string
		vowels, exact       bool
		primary, secondary  string
	}{
		{"SMITH", false, false, "SM0", "XMT"},
		{"SMITH", true, false, "SMA0", "XMAT"},
		{"GOBLIN", true, false, "KAPLAN", ""},
		{"GOBLIN", true, true, "GABLAN", ""},
		{"A", false, false, "A", ""},
		{"ack", false, false, "AK", ""},
		{"eek", false, false, "AK", ""},
		{"ache", false, false, "AK", "AX"},
		{"Aaberg", false, false, "APRK", ""},
	}

	for _, c := range cases {
		enc := metaphone3.New().WithEncodeVowels(c.vowels).WithEncodeExact(c.exact)
		p, s := enc.Encode(c.word)
		if p != c.primary || s != c.secondary {
			t.Errorf("Encode(%q, vowels=%v, exact=%v) = (%q, %q), want (%q, %q)",
				c.word, c.vowels, c.exact, p, s, c.primary, c.secondary)
		}
	}
}

func TestSupernode(t *testing.T) {
	enc := metaphone3.New().WithEncodeVowels(true).WithEncodeExact(false)
	p, _ := enc.Encode("supernode")
	if p != "SAPARNAT" {
		t.Errorf("Encode(%q) primary = %q, want %q", "supernode", p, "SAPARNAT")
	}
}

func TestEmptyInput(t *testing.T) {
	for _, vowels := range []bool{false, true} {
		for _, exact := range []bool{false, true} {
			enc := metaphone3.New().WithEncodeVowels(vowels).WithEncodeExact(exact)
			p, s := enc.Encode("")
			if p != "" || s != "" {
				t.Errorf("Encode(\"\") = (%q, %q), want (\"\", \"\")", p, s)
			}
		}
	}
}

func TestBoundedOutput(t *testing.T) {
	words := []string{
		"", "a", "Smith", "Schwarzenegger", "Featherstonehaugh",
		"supercalifragilisticexpialidocious", "xxxxxxxxxxxxxxxxxxxxxxx",
		"Mississippi", "Worcestershire", "Czechoslovakian",
	}
	for _, w := range words {
		for _, vowels := range []bool{false, true} {
			for _, exact := range []bool{false, true} {
				enc := metaphone3.New().WithEncodeVowels(vowels).WithEncodeExact(exact)
				p, s := enc.Encode(w)
				if len(p) > 8 {
					t.Errorf("Encode(%q) primary %q exceeds 8 chars", w, p)
				}
				if len(s) > 8 {
					t.Errorf("Encode(%q) secondary %q exceeds 8 chars", w, s)
				}
			}
		}
	}
}

func TestCollapseWhenEqual(t *testing.T) {
	// A secondary key reported as non-empty must differ from primary;
	// whenever the rule table produces the same sequence on both keys
	// (e.g. "cat", with no branch point that diverges them), Encode
	// collapses secondary to "".
	words := []string{"cat", "dog", "Smith", "ache", "Goblin"}
	for _, w := range words {
		enc := metaphone3.New()
		p, s := enc.Encode(w)
		if p == "" {
			t.Fatalf("Encode(%q) returned empty primary", w)
		}
		if s != "" && s == p {
			t.Fatalf("Encode(%q) = (%q, %q): equal non-empty keys should collapse", w, p, s)
		}
	}
}

func TestIdempotentReuse(t *testing.T) {
	enc := metaphone3.New().WithEncodeVowels(true)
	p1, s1 := enc.Encode("Kathryn")
	p2, s2 := enc.Encode("Kathryn")
	if p1 != p2 || s1 != s2 {
		t.Fatalf("repeated Encode call differs: (%q,%q) vs (%q,%q)", p1, s1, p2, s2)
	}
}

func TestDeterminismAcrossInstances(t *testing.T) {
	words := []string{"Smith", "Knight", "Goblin", "Aaberg", "ache"}
	for _, w := range words {
		p1, s1 := metaphone3.New().Encode(w)
		p2, s2 := metaphone3.New().Encode(w)
		if p1 != p2 || s1 != s2 {
			t.Fatalf("Encode(%q) not deterministic across instances: (%q,%q) vs (%q,%q)", w, p1, s1, p2, s2)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	words := []string{"smith", "Smith", "SMITH", "SmItH"}
	enc := metaphone3.New()
	want_p, want_s := enc.Encode(strings.ToUpper(words[0]))
	for _, w := range words {
		p, s := enc.Encode(w)
		if p != want_p || s != want_s {
			t.Errorf("Encode(%q) = (%q,%q), want (%q,%q)", w, p, s, want_p, want_s)
		}
	}
}

func TestPronouncedFinalEException(t *testing.T) {
	enc := metaphone3.New().WithEncodeVowels(true)
	p, _ := enc.Encode("ACME")
	// ACME's final E is pronounced, so it should contribute a trailing A.
	if !strings.HasSuffix(p, "A") {
		t.Errorf("Encode(%q) = %q, want a trailing A for a pronounced final E", "ACME", p)
	}
}

func TestSilentFinalE(t *testing.T) {
	enc := metaphone3.New().WithEncodeVowels(true)
	p, _ := enc.Encode("LIKE")
	if strings.HasSuffix(p, "A") {
		t.Errorf("Encode(%q) = %q, final E should be silent and not contribute a trailing A", "LIKE", p)
	}
}
