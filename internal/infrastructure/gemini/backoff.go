package gemini

import "time"

// linearBackOff waits base, 2*base, 3*base... between attempts.
type linearBackOff struct {
	base time.Duration
	n    int64
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.n++
	return b.base * time.Duration(b.n)
}

func (b *linearBackOff) Reset() {
	b.n = 0
}
