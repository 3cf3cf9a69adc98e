// Package metaphone3 computes Metaphone 3 phonetic keys for English
// words: a primary key and an optional secondary (alternate) key, each
// an uppercase string of at most 8 characters drawn from a restricted
// phonetic alphabet.
//
// Metaphone 3 groups differently-spelled words that sound alike, under
// Anglo, Germanic, Slavic, Romance, and selected Semitic/Asian name
// conventions. It is not an IPA transcriber: input is assumed to
// upper-case cleanly to the A-Z range, and non-letter bytes are
// silently skipped rather than rejected.
//
// Construct an Encoder, optionally toggle EncodeVowels and EncodeExact,
// and call Encode:
//
//	enc := metaphone3.New().WithEncodeVowels(true)
//	primary, secondary := enc.Encode("Schmidt")
//
// An Encoder is reusable across calls but is not safe for concurrent
// use by multiple goroutines, since Encode mutates its internal
// buffers.
package metaphone3
