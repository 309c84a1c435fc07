// internal/game/secret.go
//
// Secret number generation.
// A secret is the first MaxDigits entries of a uniform shuffle of 1..9, so
// digits never repeat and zero never appears.

package game

import "math/rand/v2"

// Generator draws secrets from its own random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator backed by src.
// A nil src means a PCG source seeded from the process-wide generator, which
// differs between runs.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator returns a Generator that yields the same secrets for the same seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed))
}

// Generate returns a fresh secret.
func (g *Generator) Generate() Secret {
	var s Secret
	perm := g.rng.Perm(9)
	for i := range s {
		s[i] = perm[i] + 1
	}
	return s
}
