package metaphone3

import (
	"bufio"
	"io"
)

// NewScanner returns a Scanner that encodes successive words read from
// r. Call Scan() until it returns false, then check Err(); Word(),
// Primary(), and Secondary() report the most recent result.
//
// Word boundaries here are a plain ASCII run of letters and
// apostrophes (contiguous [A-Za-z']+, so a leading or trailing
// apostrophe is part of the word), not the full Unicode text
// segmentation the teacher implements elsewhere in its package tree —
// Metaphone 3 itself is defined only over the A-Z alphabet, so a
// heavier segmenter would buy nothing. The surrounding Scan/Word/Err
// shape is carried over from the teacher's own bufio.Reader-backed
// Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		incoming: bufio.NewReaderSize(r, 64*1024),
		encoder:  New(),
	}
}

// Scanner reads words from an io.Reader and encodes each with an
// internal Encoder. A Scanner is not safe for concurrent use.
type Scanner struct {
	incoming *bufio.Reader
	encoder  *Encoder

	word               string
	primary, secondary string
	err                error
}

// WithEncodeVowels configures the Scanner's internal Encoder and
// returns the Scanner for chaining. Call before the first Scan.
func (sc *Scanner) WithEncodeVowels(v bool) *Scanner {
	sc.encoder.WithEncodeVowels(v)
	return sc
}

// WithEncodeExact configures the Scanner's internal Encoder and
// returns the Scanner for chaining. Call before the first Scan.
func (sc *Scanner) WithEncodeExact(v bool) *Scanner {
	sc.encoder.WithEncodeExact(v)
	return sc
}

// Scan advances to the next word, returning true if one was found and
// encoded. It returns false on error or end of input; check Err() to
// distinguish the two.
func (sc *Scanner) Scan() bool {
	for {
		word, err := sc.nextWord()
		if err != nil {
			if err != io.EOF {
				sc.err = err
			}
			return false
		}
		if word == "" {
			continue
		}

		sc.word = word
		sc.primary, sc.secondary = sc.encoder.Encode(word)
		return true
	}
}

// nextWord consumes runs of non-word bytes, then returns the next
// contiguous run of ASCII letters and apostrophes.
func (sc *Scanner) nextWord() (string, error) {
	for {
		b, err := sc.incoming.ReadByte()
		if err != nil {
			return "", err
		}
		if isWordByte(b) {
			if err := sc.incoming.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
	}

	var buf []byte
	for {
		b, err := sc.incoming.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if !isWordByte(b) {
			if err := sc.incoming.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '\''
}

// Word returns the most recent word read by Scan.
func (sc *Scanner) Word() string { return sc.word }

// Primary returns the primary key for the most recent word.
func (sc *Scanner) Primary() string { return sc.primary }

// Secondary returns the secondary key for the most recent word.
func (sc *Scanner) Secondary() string { return sc.secondary }

// Err returns the first non-EOF error encountered by Scan, if any.
func (sc *Scanner) Err() error { return sc.err }
