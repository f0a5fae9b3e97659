package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alejandrodnm/montyhall/internal/domain"
	"github.com/alejandrodnm/montyhall/internal/ports"
	"github.com/olekukonko/tablewriter"
)

var _ ports.Notifier = (*Console)(nil)

// Console implementa ports.Notifier.
type Console struct {
	out     io.Writer
	compact bool
	records bool
}

// NewConsole crea un notificador que escribe a stdout.
// Con records=true imprime además la tabla de trials.
func NewConsole(compact, records bool) *Console {
	return &Console{out: os.Stdout, compact: compact, records: records}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, compact, records bool) *Console {
	return &Console{out: w, compact: compact, records: records}
}

// Notify imprime el output en el modo configurado.
func (c *Console) Notify(_ context.Context, batch domain.Batch) error {
	if batch.Summary.IsEmpty() {
		fmt.Fprintln(c.out, "no trials played")
		return nil
	}

	if c.records {
		c.PrintRecords(batch.Records)
	}
	if c.compact {
		c.PrintCompact(batch)
	} else {
		c.PrintSummary(batch)
	}
	return nil
}

// PrintSummary imprime la tabla estrategia × outcome con las proporciones redondeadas.
func (c *Console) PrintSummary(batch domain.Batch) {
	s := batch.Summary
	prec := s.Precision

	fmt.Fprintf(c.out, "\n=== MONTY HALL — %d trials (seed %d) ===\n", batch.Trials, batch.Seed)
	fmt.Fprintf(c.out, "  run %s  elapsed %s\n", batch.RunID, batch.Duration.Round(time.Microsecond))

	table := tablewriter.NewWriter(c.out)
	table.Header("Strategy", "WIN", "LOSE", "Wins", "Losses", "Theory", "Diff")

	for _, row := range s.Rows {
		theory := domain.TheoreticalWinRate(row.Strategy)
		table.Append(
			string(row.Strategy),
			formatRate(row.WinRate, prec),
			formatRate(row.LoseRate, prec),
			fmt.Sprintf("%d", row.Wins),
			fmt.Sprintf("%d", row.Losses),
			formatRate(theory, prec),
			fmt.Sprintf("%+.*f", prec, row.WinRate-theory),
		)
	}
	table.Render()

	fmt.Fprintln(c.out, "  WIN/LOSE = proporción dentro de cada estrategia | Theory = probabilidad exacta de ganar")

	stay, okStay := s.Row(domain.StrategyStay)
	sw, okSwitch := s.Row(domain.StrategySwitch)
	if !okStay || !okSwitch {
		return
	}
	switch {
	case sw.WinRate > stay.WinRate:
		fmt.Fprintf(c.out, "\n  VEREDICTO: SWITCH gana (%s vs %s)\n\n",
			formatRate(sw.WinRate, prec), formatRate(stay.WinRate, prec))
	case sw.WinRate < stay.WinRate:
		fmt.Fprintf(c.out, "\n  VEREDICTO: STAY gana en esta muestra (%s vs %s), pruebe con más trials\n\n",
			formatRate(stay.WinRate, prec), formatRate(sw.WinRate, prec))
	default:
		fmt.Fprintf(c.out, "\n  VEREDICTO: empate (%s)\n\n", formatRate(sw.WinRate, prec))
	}
}

// PrintRecords imprime un registro por fila: trial, estrategia, puertas y outcome.
func (c *Console) PrintRecords(records []domain.TrialResult) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Trial", "Strategy", "Pick", "Opened", "Final", "Outcome")

	for _, r := range records {
		table.Append(
			fmt.Sprintf("%d", r.Trial),
			string(r.Strategy),
			fmt.Sprintf("%d", r.Pick),
			fmt.Sprintf("%d", r.Revealed),
			fmt.Sprintf("%d", r.Final),
			string(r.Outcome),
		)
	}
	table.Render()
}

// PrintCompact imprime el resumen en una línea.
func (c *Console) PrintCompact(batch domain.Batch) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %d trials", shortID(batch.RunID), batch.Trials)
	for _, row := range batch.Summary.Rows {
		fmt.Fprintf(&sb, " | %s win %s", row.Strategy, formatRate(row.WinRate, batch.Summary.Precision))
	}
	fmt.Fprintln(c.out, sb.String())
}

func formatRate(v float64, prec int) string {
	return fmt.Sprintf("%.*f", prec, v)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
