// Package engine provides the seedable random sources every simulation
// component draws noise from.
package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"
	"sync"
)

// Source is a stream of uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// Stream generates floats from an HMAC-SHA256 keyed byte stream. The same
// (seed, scope, index) triple always yields the same sequence, which lets a
// host derive independent reproducible sources for every entity in a race.
type Stream struct {
	seed         string
	scope        string
	index        uint64
	currentRound uint64
	currentPos   int
	buffer       [32]byte
}

// NewStream creates a stream for the given seed, scope and entity index
func NewStream(seed, scope string, index uint64) *Stream {
	s := &Stream{
		seed:  seed,
		scope: scope,
		index: index,
	}

	s.generateRound()

	return s
}

// Next returns the next byte from the stream
func (s *Stream) Next() byte {
	if s.currentPos >= 32 {
		s.currentRound++
		s.currentPos = 0
		s.generateRound()
	}

	b := s.buffer[s.currentPos]
	s.currentPos++
	return b
}

// Float64 consumes exactly 4 bytes and returns a float in [0, 1)
func (s *Stream) Float64() float64 {
	return bytesToFloat([4]byte{s.Next(), s.Next(), s.Next(), s.Next()})
}

func (s *Stream) generateRound() {
	h := hmac.New(sha256.New, []byte(s.seed))
	message := fmt.Sprintf("%s:%d:%d", s.scope, s.index, s.currentRound)
	h.Write([]byte(message))
	copy(s.buffer[:], h.Sum(nil))
}

// bytesToFloat converts exactly 4 bytes to float64 as b0/256 + b1/256² + b2/256³ + b3/256⁴
func bytesToFloat(bytes [4]byte) float64 {
	result := 0.0
	for i, b := range bytes {
		divider := math.Pow(256, float64(i+1))
		result += float64(b) / divider
	}
	return result
}

// Mulberry32 is a small, fast PRNG seeded by a single uint32.
// Algorithm: https://gist.github.com/tommyettinger/46a874533244883189143505d203312c
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a new Mulberry32 PRNG with the given seed
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next returns the next random uint32
func (m *Mulberry32) Next() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns a random float64 in [0, 1)
func (m *Mulberry32) Float64() float64 {
	return float64(m.Next()) / 4294967296.0
}

// Locked serializes access to a Source that is shared between goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src with a mutex
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Uniform returns a float in [lo, hi)
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Intn returns an int in [0, n). n <= 0 yields 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(math.Floor(src.Float64() * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Chance runs one Bernoulli trial with success probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
