package domain

import (
	"math"
	"time"
)

// TrialResult es el resultado de un trial para una estrategia.
type TrialResult struct {
	Trial    int // 1-based, compartido por el par stay/switch
	Strategy Strategy
	Outcome  Outcome

	// Auditoría del juego subyacente
	Pick     DoorIndex
	Revealed DoorIndex
	Final    DoorIndex
}

// Batch agrupa los registros de n trials y su resumen.
type Batch struct {
	RunID     string
	Seed      int64 // seed de la fuente aleatoria, permite replay
	Trials    int
	StartedAt time.Time
	Duration  time.Duration

	// Records tiene 2×Trials entradas: stay y switch de cada trial, en orden.
	Records []TrialResult
	Summary Summary
}

// SummaryRow es la fila de una estrategia en la tabla de proporciones.
type SummaryRow struct {
	Strategy Strategy
	Wins     int
	Losses   int
	Total    int
	WinRate  float64 // redondeado a Summary.Precision
	LoseRate float64 // redondeado a Summary.Precision
}

// Proportion devuelve la proporción del outcome dentro de la fila.
func (r SummaryRow) Proportion(o Outcome) float64 {
	if o == OutcomeWin {
		return r.WinRate
	}
	return r.LoseRate
}

// Count devuelve cuántos trials de la fila terminaron con el outcome.
func (r SummaryRow) Count(o Outcome) int {
	if o == OutcomeWin {
		return r.Wins
	}
	return r.Losses
}

// Summary es la tabla estrategia × outcome. Vacía si no hubo registros.
type Summary struct {
	Rows      []SummaryRow
	Precision int
}

// Row devuelve la fila de la estrategia dada.
func (s Summary) Row(st Strategy) (SummaryRow, bool) {
	for _, r := range s.Rows {
		if r.Strategy == st {
			return r, true
		}
	}
	return SummaryRow{}, false
}

// IsEmpty devuelve true si el resumen no tiene filas.
func (s Summary) IsEmpty() bool {
	return len(s.Rows) == 0
}

// Summarize reduce los registros a la tabla de proporciones: cuenta por
// (estrategia, outcome), divide por el total de la estrategia y redondea.
// Las filas salen en el orden de Strategies(); una estrategia sin registros no genera fila.
func Summarize(records []TrialResult, precision int) Summary {
	type key struct {
		strategy Strategy
		outcome  Outcome
	}

	counts := make(map[key]int)
	totals := make(map[Strategy]int)
	for _, r := range records {
		counts[key{r.Strategy, r.Outcome}]++
		totals[r.Strategy]++
	}

	summary := Summary{Precision: precision}
	for _, st := range Strategies() {
		total := totals[st]
		if total == 0 {
			continue
		}
		wins := counts[key{st, OutcomeWin}]
		losses := counts[key{st, OutcomeLose}]
		summary.Rows = append(summary.Rows, SummaryRow{
			Strategy: st,
			Wins:     wins,
			Losses:   losses,
			Total:    total,
			WinRate:  Round(float64(wins)/float64(total), precision),
			LoseRate: Round(float64(losses)/float64(total), precision),
		})
	}
	return summary
}

// TheoreticalWinRate devuelve la probabilidad exacta de ganar con la estrategia.
func TheoreticalWinRate(s Strategy) float64 {
	switch s {
	case StrategyStay:
		return 1.0 / 3.0
	case StrategySwitch:
		return 2.0 / 3.0
	default:
		return 0
	}
}

// Round redondea x a precision decimales.
func Round(x float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(x*p) / p
}
