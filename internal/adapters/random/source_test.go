package random_test

import (
	"testing"

	"github.com/alejandrodnm/montyhall/internal/adapters/random"
	"github.com/alejandrodnm/montyhall/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := random.New(1234)
	b := random.New(1234)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(3), b.IntN(3))
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a := random.New(1)
	b := random.New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.IntN(1000) == b.IntN(1000) {
			same++
		}
	}
	assert.Less(t, same, 10)
}

func TestNew_SatisfiesDomainRand(t *testing.T) {
	var rng domain.Rand = random.New(9)
	a := domain.CreateGame(rng)
	assert.NoError(t, a.Validate())
}

func TestNewSeed(t *testing.T) {
	s1, err := random.NewSeed()
	require.NoError(t, err)
	s2, err := random.NewSeed()
	require.NoError(t, err)
	assert.NotZero(t, s1)
	assert.NotEqual(t, s1, s2)
}

func TestResolve(t *testing.T) {
	seed, err := random.Resolve(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	seed, err = random.Resolve(0)
	require.NoError(t, err)
	assert.NotZero(t, seed)
}
