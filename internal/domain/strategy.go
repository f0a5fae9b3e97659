package domain

import "fmt"

// Strategy es la política del concursante tras el reveal del host.
type Strategy string

const (
	StrategyStay   Strategy = "stay"
	StrategySwitch Strategy = "switch"
)

// Strategies devuelve las estrategias en el orden en que se reportan.
func Strategies() []Strategy {
	return []Strategy{StrategyStay, StrategySwitch}
}

// FinalDoor aplica la estrategia al pick inicial y a la puerta revelada.
func (s Strategy) FinalDoor(revealed, pick DoorIndex) (DoorIndex, error) {
	switch s {
	case StrategyStay:
		return ChangeDoor(true, revealed, pick)
	case StrategySwitch:
		return ChangeDoor(false, revealed, pick)
	default:
		return 0, fmt.Errorf("unknown strategy %q: %w", s, ErrInvalidArgument)
	}
}

// Outcome es el veredicto de un trial para una estrategia.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLose Outcome = "LOSE"
)

// Outcomes devuelve los outcomes en el orden de las columnas del resumen.
func Outcomes() []Outcome {
	return []Outcome{OutcomeWin, OutcomeLose}
}
