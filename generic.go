package metaphone3

import "github.com/clipperhouse/stringish"

// EncodeText encodes word, which may be a string or a []byte. It
// mirrors the teacher's FromString/FromBytes split (words/string.go,
// words/bytes.go), collapsed into one generic entry point over
// stringish.Interface: a []byte argument is routed to
// Encoder.EncodeBytes, which upper-cases directly into the Encoder's
// own buffer rather than forcing a string allocation first; any other
// stringish.Interface value goes through Encode as usual.
func EncodeText[T stringish.Interface](enc *Encoder, word T) (primary, secondary string) {
	if b, ok := any(word).([]byte); ok {
		return enc.EncodeBytes(b)
	}
	return enc.Encode(string(word))
}

// EncodeString is EncodeText specialized to string, for callers who
// prefer an explicit, non-generic call site.
func EncodeString(enc *Encoder, word string) (primary, secondary string) {
	return enc.Encode(word)
}

// EncodeBytes is EncodeText specialized to []byte: see
// Encoder.EncodeBytes for why it avoids an intermediate string copy.
func EncodeBytes(enc *Encoder, word []byte) (primary, secondary string) {
	return enc.EncodeBytes(word)
}
