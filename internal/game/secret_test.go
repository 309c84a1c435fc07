package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/bagels/internal/game"
)

func TestGenerate_DistinctDigitsInRange(t *testing.T) {
	g := game.NewGenerator(nil)
	for i := 0; i < 1000; i++ {
		s := g.Generate()
		seen := map[int]bool{}
		for _, d := range s {
			require.GreaterOrEqual(t, d, 1)
			require.LessOrEqual(t, d, 9)
			require.False(t, seen[d], "repeated digit in %v", s)
			seen[d] = true
		}
	}
}

func TestGenerate_SeededIsDeterministic(t *testing.T) {
	a := game.NewSeededGenerator(42)
	b := game.NewSeededGenerator(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerate_CoversEveryDigit(t *testing.T) {
	g := game.NewSeededGenerator(7)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		for _, d := range g.Generate() {
			seen[d] = true
		}
	}
	assert.Len(t, seen, 9)
}
