package simulation

// runner.go: TrialRunner y BatchDriver.
//
// Un trial juega UNA partida (arrangement, pick, reveal) y la evalúa con ambas
// estrategias, así stay y switch se comparan sobre el mismo draw. El batch
// repite n trials en secuencia sobre la misma fuente aleatoria y reduce los
// 2n registros a la tabla de proporciones.

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/montyhall/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Config controla el comportamiento de un Runner.
type Config struct {
	Precision        int           // decimales de las proporciones del resumen
	ProgressInterval time.Duration // mínimo entre logs de progreso
}

// DefaultConfig devuelve la configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Precision:        2,
		ProgressInterval: time.Second,
	}
}

// Runner ejecuta trials sobre una fuente aleatoria propia. No es seguro para uso concurrente.
type Runner struct {
	cfg  Config
	rng  domain.Rand
	seed int64
}

// New crea un Runner. seed solo se registra en el Batch para poder hacer replay;
// la fuente rng ya debe estar inicializada con ella.
func New(cfg Config, rng domain.Rand, seed int64) *Runner {
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = time.Second
	}
	return &Runner{cfg: cfg, rng: rng, seed: seed}
}

// Seed devuelve la seed de la fuente del Runner.
func (r *Runner) Seed() int64 {
	return r.seed
}

// PlayGame juega un trial con la fuente del Runner.
func (r *Runner) PlayGame(trial int) ([2]domain.TrialResult, error) {
	return PlayGame(r.rng, trial)
}

// PlayNGames ejecuta n trials y devuelve los 2n registros con su resumen.
// n < 1 devuelve ErrInvalidArgument. Si ctx se cancela a mitad, devuelve ctx.Err().
func (r *Runner) PlayNGames(ctx context.Context, n int) (domain.Batch, error) {
	if n < 1 {
		return domain.Batch{}, fmt.Errorf("simulation.PlayNGames: n=%d, need at least 1 trial: %w",
			n, domain.ErrInvalidArgument)
	}

	start := time.Now()
	batch := domain.Batch{
		RunID:     uuid.New().String(),
		Seed:      r.seed,
		Trials:    n,
		StartedAt: start.UTC(),
		Records:   make([]domain.TrialResult, 0, 2*n),
	}

	slog.Info("batch starting", "run_id", batch.RunID, "trials", n, "seed", r.seed)

	progress := rate.Sometimes{First: 1, Interval: r.cfg.ProgressInterval}
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return domain.Batch{}, fmt.Errorf("simulation.PlayNGames: stopped at trial %d: %w", i, err)
		}

		pair, err := PlayGame(r.rng, i)
		if err != nil {
			return domain.Batch{}, fmt.Errorf("simulation.PlayNGames: trial %d: %w", i, err)
		}
		batch.Records = append(batch.Records, pair[:]...)

		progress.Do(func() {
			slog.Debug("batch progress", "run_id", batch.RunID, "done", i, "trials", n)
		})
	}

	batch.Summary = domain.Summarize(batch.Records, r.cfg.Precision)
	batch.Duration = time.Since(start)

	attrs := []any{"run_id", batch.RunID, "records", len(batch.Records), "elapsed", batch.Duration}
	for _, row := range batch.Summary.Rows {
		attrs = append(attrs, string(row.Strategy)+"_win_rate", row.WinRate)
	}
	slog.Info("batch complete", attrs...)

	return batch, nil
}

// PlayGame juega un trial: crea el juego, elige puerta, el host revela, y
// evalúa stay y switch contra el mismo juego. Devuelve [stay, switch].
func PlayGame(rng domain.Rand, trial int) ([2]domain.TrialResult, error) {
	var out [2]domain.TrialResult

	arrangement := domain.CreateGame(rng)
	pick := domain.SelectDoor(rng)
	revealed, err := domain.OpenGoatDoor(rng, arrangement, pick)
	if err != nil {
		return out, fmt.Errorf("simulation.PlayGame: %w", err)
	}

	for i, st := range domain.Strategies() {
		final, err := st.FinalDoor(revealed, pick)
		if err != nil {
			return out, fmt.Errorf("simulation.PlayGame: %s: %w", st, err)
		}
		outcome, err := domain.DetermineWinner(final, arrangement)
		if err != nil {
			return out, fmt.Errorf("simulation.PlayGame: %s: %w", st, err)
		}
		out[i] = domain.TrialResult{
			Trial:    trial,
			Strategy: st,
			Outcome:  outcome,
			Pick:     pick,
			Revealed: revealed,
			Final:    final,
		}
	}

	return out, nil
}
