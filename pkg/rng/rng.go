// Package rng is the seeded random source (spec.md §4.A). It derives a
// counter-based PRNG from a caller-supplied or freshly generated seed, and
// gives every parallel race worker an independent, decorrelated stream by
// XORing the worker index into the derived state (Design Notes §9).
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/MichaelTJones/pcg"
	"github.com/mines/noguess/pkg/mineserr"
	"github.com/mines/noguess/pkg/model"
)

const (
	maxSeedLen  = 10
	seedAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ValidateSeed reports whether seed is acceptable: at most 10 characters,
// each alphanumeric or a plain space. This matches the original generator
// exactly, including its quirk of silently accepting spaces as valid seed
// characters.
func ValidateSeed(seed string) error {
	if len(seed) > maxSeedLen {
		return fmt.Errorf("seed %q longer than %d characters: %w", seed, maxSeedLen, mineserr.ErrInvalidSeed)
	}
	for _, r := range seed {
		isAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlnum && r != ' ' {
			return fmt.Errorf("seed %q contains invalid character %q: %w", seed, r, mineserr.ErrInvalidSeed)
		}
	}
	return nil
}

// GenerateSeed produces a fresh 10-character alphanumeric seed using a
// non-deterministic source; used when the caller supplies an empty seed.
func GenerateSeed() string {
	var b strings.Builder
	for i := 0; i < maxSeedLen; i++ {
		b.WriteByte(seedAlphabet[rand.Intn(len(seedAlphabet))])
	}
	return b.String()
}

// Source is a seeded, counter-based PRNG (PCG64) plus the shuffle/pick
// helpers the candidate generator and puzzle revealer build on.
type Source struct {
	gen *pcg.PCG64
}

// New derives a Source from seed, decorrelated for workerIndex. The
// generation loops pass their worker index times their attempt budget plus
// the attempt number, so every attempt of every worker draws its own stream.
func New(seed string, workerIndex int) *Source {
	state := fnvState(seed) ^ uint64(workerIndex)*0x9E3779B97F4A7C15
	seq := fnvState(seed+"#seq") ^ uint64(workerIndex)
	gen := pcg.NewPCG64()
	gen.Seed(state, state, seq, seq)
	return &Source{gen: gen}
}

func fnvState(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Intn returns a pseudo-random number in [0, n).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.gen.Random() % uint64(n))
}

// Shuffle permutes positions in place (Fisher-Yates).
func (s *Source) Shuffle(positions []model.TilePosition) {
	for i := len(positions) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
}

// PickExcluding returns a uniformly random element of from that is not a
// member of excludes, or false if no such element exists.
func (s *Source) PickExcluding(from []model.TilePosition, excludes map[model.TilePosition]bool) (model.TilePosition, bool) {
	candidates := make([]model.TilePosition, 0, len(from))
	for _, p := range from {
		if !excludes[p] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return model.TilePosition{}, false
	}
	return candidates[s.Intn(len(candidates))], true
}
