// Package comparative benchmarks the incremental cost of phonetic
// encoding on top of word segmentation, against blevesearch/segment's
// segmenter doing tokenization alone. It is a separate module (like
// the teacher's words/comparative) so its extra dependency does not
// leak into the root module's go.sum.
package comparative

import (
	"strings"
	"testing"

	"github.com/blevesearch/segment"
	"github.com/wordsound/metaphone3"
)

var asciiProse = strings.Repeat(`The quick brown fox jumps over the lazy dog. This is a sample of typical English prose used to benchmark phonetic encoding throughput. Names like Smith Smythe Johnson and Kathryn should all encode without allocation surprises. Software engineers often process large word lists when building search indexes. `, 100)

// BenchmarkSegmentOnly measures blevesearch/segment tokenizing the
// sample text with no further work, establishing the segmentation
// floor that BenchmarkSegmentAndEncode is measured against.
func BenchmarkSegmentOnly(b *testing.B) {
	b.SetBytes(int64(len(asciiProse)))
	for i := 0; i < b.N; i++ {
		count := 0
		seg := segment.NewWordSegmenterDirect([]byte(asciiProse))
		for seg.Segment() {
			if seg.Type() == segment.Letter {
				count++
			}
		}
	}
}

// BenchmarkSegmentAndEncode tokenizes with blevesearch/segment, then
// runs Metaphone 3 over every word token, to measure the incremental
// cost of phonetic encoding over segmentation alone.
func BenchmarkSegmentAndEncode(b *testing.B) {
	b.SetBytes(int64(len(asciiProse)))
	enc := metaphone3.New()
	for i := 0; i < b.N; i++ {
		count := 0
		seg := segment.NewWordSegmenterDirect([]byte(asciiProse))
		for seg.Segment() {
			if seg.Type() != segment.Letter {
				continue
			}
			enc.Encode(string(seg.Bytes()))
			count++
		}
	}
}

// BenchmarkScannerSplitter measures metaphone3's own ASCII word
// splitter (Scanner) doing segmentation-and-encoding together, as the
// alternative to routing every word through blevesearch/segment
// first.
func BenchmarkScannerSplitter(b *testing.B) {
	b.SetBytes(int64(len(asciiProse)))
	for i := 0; i < b.N; i++ {
		count := 0
		sc := metaphone3.NewScanner(strings.NewReader(asciiProse))
		for sc.Scan() {
			count++
		}
	}
}

// TestWordCountConsistency logs how many words blevesearch/segment's
// letter tokens and metaphone3's own ASCII splitter find in the same
// prose, and checks that both find some; the counts are not compared,
// since the two splitters use different boundary rules (e.g.
// apostrophes).
func TestWordCountConsistency(t *testing.T) {
	segCount := 0
	seg := segment.NewWordSegmenterDirect([]byte(asciiProse))
	for seg.Segment() {
		if seg.Type() == segment.Letter {
			segCount++
		}
	}

	scanCount := 0
	sc := metaphone3.NewScanner(strings.NewReader(asciiProse))
	for sc.Scan() {
		scanCount++
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Scanner.Err() = %v", err)
	}

	t.Logf("blevesearch/segment: %d words, metaphone3.Scanner: %d words", segCount, scanCount)
	if segCount == 0 || scanCount == 0 {
		t.Fatalf("expected both splitters to find words, got %d and %d", segCount, scanCount)
	}
}
