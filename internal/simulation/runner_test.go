package simulation

import (
	"context"
	"testing"

	"github.com/alejandrodnm/montyhall/internal/adapters/random"
	"github.com/alejandrodnm/montyhall/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(seed int64) *Runner {
	return New(DefaultConfig(), random.New(seed), seed)
}

func TestPlayGame_BothStrategiesShareTheGame(t *testing.T) {
	rng := random.New(17)
	for trial := 1; trial <= 500; trial++ {
		pair, err := PlayGame(rng, trial)
		require.NoError(t, err)

		stay, sw := pair[0], pair[1]
		assert.Equal(t, domain.StrategyStay, stay.Strategy)
		assert.Equal(t, domain.StrategySwitch, sw.Strategy)
		assert.Equal(t, trial, stay.Trial)
		assert.Equal(t, trial, sw.Trial)
		assert.Equal(t, stay.Pick, sw.Pick)
		assert.Equal(t, stay.Revealed, sw.Revealed)

		assert.Equal(t, stay.Pick, stay.Final)
		assert.NotEqual(t, stay.Pick, stay.Revealed)
		assert.NotEqual(t, sw.Final, sw.Pick)
		assert.NotEqual(t, sw.Final, sw.Revealed)

		// Con una sola puerta premiada, exactamente una estrategia gana.
		assert.NotEqual(t, stay.Outcome, sw.Outcome)
	}
}

func TestPlayNGames_RecordCountAndRowSums(t *testing.T) {
	batch, err := newRunner(1).PlayNGames(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, 100, batch.Trials)
	require.Len(t, batch.Records, 200)
	require.Len(t, batch.Summary.Rows, 2)
	for _, row := range batch.Summary.Rows {
		assert.Equal(t, 100, row.Total)
		assert.Equal(t, 100, row.Wins+row.Losses)
		assert.InDelta(t, 1.0, row.WinRate+row.LoseRate, 0.011)
	}

	for i, rec := range batch.Records {
		assert.Equal(t, i/2+1, rec.Trial)
		if i%2 == 0 {
			assert.Equal(t, domain.StrategyStay, rec.Strategy)
		} else {
			assert.Equal(t, domain.StrategySwitch, rec.Strategy)
		}
	}

	_, err = uuid.Parse(batch.RunID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), batch.Seed)
}

func TestPlayNGames_ConvergesToTheory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Precision = 4
	batch, err := New(cfg, random.New(2024), 2024).PlayNGames(context.Background(), 10000)
	require.NoError(t, err)

	stay, ok := batch.Summary.Row(domain.StrategyStay)
	require.True(t, ok)
	sw, ok := batch.Summary.Row(domain.StrategySwitch)
	require.True(t, ok)

	assert.InDelta(t, 1.0/3.0, stay.WinRate, 0.02)
	assert.InDelta(t, 2.0/3.0, sw.WinRate, 0.02)
	assert.Equal(t, stay.Wins, sw.Losses)
}

func TestPlayNGames_Reproducible(t *testing.T) {
	a, err := newRunner(99).PlayNGames(context.Background(), 300)
	require.NoError(t, err)
	b, err := newRunner(99).PlayNGames(context.Background(), 300)
	require.NoError(t, err)

	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, a.Summary, b.Summary)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestPlayNGames_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		batch, err := newRunner(1).PlayNGames(context.Background(), n)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "n=%d", n)
		assert.Empty(t, batch.Records)
	}
}

func TestPlayNGames_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(1).PlayNGames(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_PlayGameUsesOwnSource(t *testing.T) {
	r := newRunner(5)
	got, err := r.PlayGame(1)
	require.NoError(t, err)

	want, err := PlayGame(random.New(5), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, int64(5), r.Seed())
}

func TestNew_DefaultsProgressInterval(t *testing.T) {
	r := New(Config{Precision: 2}, random.New(1), 1)
	assert.Equal(t, DefaultConfig().ProgressInterval, r.cfg.ProgressInterval)
}
