package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// The engine carries two random sources. Outcome, event, disease and loss
// rolls use a free-running Roller. The "which actions are offered this round"
// subset instead draws from a deterministic stream derived from the run seed
// and the round number, so re-rendering a round always shows the same list.

// Roller is the randomness surface the engine rolls against. *Stream and
// *math/rand.Rand both satisfy it; tests inject a seeded source.
type Roller interface {
	Intn(n int) int
	Float64() float64
}

// SeedFromString returns a 64-bit seed from an arbitrary string using SHA256.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// Derive returns a deterministic child seed from a base seed and a label
// using HMAC-SHA256. Labels are stable strings such as "round:3:visible".
func Derive(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	sum := m.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// RunSeed encapsulates the canonical seed string for a run and exposes
// deterministic streams.
type RunSeed struct {
	Text string
	root uint64
}

// NewRunSeed creates a deterministic RunSeed from a textual seed. Empty text
// is rejected.
func NewRunSeed(seedText string) (RunSeed, error) {
	if seedText == "" {
		return RunSeed{}, fmt.Errorf("seed text must not be empty")
	}
	return RunSeed{Text: seedText, root: SeedFromString(seedText)}, nil
}

// Stream returns a new deterministic RNG stream derived from the run's root
// seed.
func (r RunSeed) Stream(label string) *Stream {
	return newStream(Derive(r.root, label))
}

// SplitMix64 PRNG implementation for deterministic streams.
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Stream provides deterministic random numbers with support for labelled
// child streams.
type Stream struct {
	base uint64
	sm   splitMix64
}

func newStream(seed uint64) *Stream {
	return &Stream{base: seed, sm: splitMix64{state: seed}}
}

// Intn mirrors math/rand.Intn but is deterministic per stream.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.sm.next() % uint64(n))
}

// Float64 returns a float in [0,1).
func (s *Stream) Float64() float64 {
	return float64(s.sm.next()>>11) / (1 << 53)
}

// Child creates a stable sub-stream derived from this stream's base seed and
// label.
func (s *Stream) Child(label string) *Stream { return newStream(Derive(s.base, label)) }
