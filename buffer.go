package metaphone3

// keyCap is the maximum length of a primary or secondary key. It is
// not configurable: per spec, the loop itself terminates once both
// buffers reach this length, so changing it would change which rules
// fire, not just the output length.
const keyCap = 8

// keyBuffer is an append-only output buffer capped at keyCap bytes.
// Appending past the cap is a silent no-op, not a truncation applied
// afterward: once full, the buffer simply stops growing.
type keyBuffer struct {
	b []byte
}

func (k *keyBuffer) full() bool {
	return len(k.b) >= keyCap
}

// add appends s, dropping any bytes that would push the buffer past
// keyCap.
func (k *keyBuffer) add(s string) {
	for i := 0; i < len(s) && len(k.b) < keyCap; i++ {
		k.b = append(k.b, s[i])
	}
}

func (k *keyBuffer) reset() {
	k.b = k.b[:0]
}

func (k *keyBuffer) last() byte {
	if len(k.b) == 0 {
		return 0
	}
	return k.b[len(k.b)-1]
}

func (k *keyBuffer) String() string {
	return string(k.b)
}
