package metaphone3

// pronouncedFinalE is the literal exception table from spec.md §6:
// words whose trailing E is pronounced rather than silent. Membership
// is by whole-word suffix match against the uppercased input.
var pronouncedFinalE = []string{
	"ACME", "NIKE", "CAFE", "RENE", "LUPE", "JOSE", "ESME", "AGAPE", "LAME", "SAKE",
	"PATE", "INGE", "CHILE", "DESME", "CONDE", "URIBE", "LIBRE", "ANDRE", "HECATE", "PSYCHE",
	"DAPHNE", "PENSKE", "CLICHE", "RECIPE", "TAMALE", "SESAME", "SIMILE", "FINALE", "KARATE", "RENATE",
	"SHANTE", "OBERLE", "COYOTE", "KRESGE", "STONGE", "STANGE", "SWAYZE", "FUENTE", "SALOME", "URRIBE",
	"ECHIDNE", "ARIADNE", "MEINEKE", "PORSCHE", "ANEMONE", "EPITOME", "SYNCOPE", "SOUFFLE", "ATTACHE", "MACHETE",
	"KARAOKE", "BUKKAKE", "VICENTE", "ELLERBE", "VERSACE", "PENELOPE", "CALLIOPE", "CHIPOTLE", "ANTIGONE", "KAMIKAZE",
	"EURIDICE", "YOSEMITE", "FERRANTE", "HYPERBOLE", "GUACAMOLE", "XANTHIPPE", "SYNECDOCHE",
}

// hasPronouncedFinalE reports whether the word ends with one of the
// pronouncedFinalE entries.
func (e *Encoder) hasPronouncedFinalE() bool {
	return e.stringEnd(pronouncedFinalE...)
}
