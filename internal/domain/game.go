package domain

// game.go: las cinco funciones puras de un trial de Monty Hall.
//
// Toda la aleatoriedad entra por Rand, así un trial es reproducible con una
// fuente con seed fija. El host es la única asimetría: si el pick es DECOY
// no tiene elección, y eso es lo que hace que cambiar gane 2/3 de las veces.

import "fmt"

// Rand es la fuente aleatoria uniforme que consumen CreateGame, SelectDoor y OpenGoatDoor.
// *rand.Rand de math/rand/v2 la satisface.
type Rand interface {
	// IntN devuelve un entero uniforme en [0, n).
	IntN(n int) int
}

// CreateGame coloca el premio en una puerta uniforme y DECOY en las otras dos.
func CreateGame(rng Rand) Arrangement {
	a := Arrangement{LabelDecoy, LabelDecoy, LabelDecoy}
	a[rng.IntN(NumDoors)] = LabelPrize
	return a
}

// SelectDoor devuelve el pick inicial, uniforme en 1..3 e independiente del arrangement.
func SelectDoor(rng Rand) DoorIndex {
	return DoorIndex(rng.IntN(NumDoors) + 1)
}

// OpenGoatDoor devuelve la puerta que abre el host: nunca el pick ni el premio.
// Si el pick tiene el premio elige al azar entre las dos DECOY restantes;
// si no, la única DECOY restante es forzada y no se consume aleatoriedad.
func OpenGoatDoor(rng Rand, a Arrangement, pick DoorIndex) (DoorIndex, error) {
	if err := pick.Validate(); err != nil {
		return 0, fmt.Errorf("domain.OpenGoatDoor: pick: %w", err)
	}
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("domain.OpenGoatDoor: %w", err)
	}

	candidates := make([]DoorIndex, 0, NumDoors-1)
	for d := DoorIndex(1); d <= NumDoors; d++ {
		if d != pick && a.At(d) == LabelDecoy {
			candidates = append(candidates, d)
		}
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// ChangeDoor devuelve la puerta final. Con stay es el pick; si no, la única
// puerta que no es ni el pick ni la revelada.
func ChangeDoor(stay bool, revealed, pick DoorIndex) (DoorIndex, error) {
	if err := pick.Validate(); err != nil {
		return 0, fmt.Errorf("domain.ChangeDoor: pick: %w", err)
	}
	if err := revealed.Validate(); err != nil {
		return 0, fmt.Errorf("domain.ChangeDoor: revealed: %w", err)
	}
	if stay {
		return pick, nil
	}
	if revealed == pick {
		return 0, fmt.Errorf("domain.ChangeDoor: revealed door %d is the pick: %w", pick, ErrInvalidState)
	}
	// 1+2+3 = 6
	return 6 - pick - revealed, nil
}

// DetermineWinner devuelve WIN si la puerta final tiene el premio, LOSE si no.
func DetermineWinner(final DoorIndex, a Arrangement) (Outcome, error) {
	if err := final.Validate(); err != nil {
		return "", fmt.Errorf("domain.DetermineWinner: final: %w", err)
	}
	if err := a.Validate(); err != nil {
		return "", fmt.Errorf("domain.DetermineWinner: %w", err)
	}
	if a.At(final) == LabelPrize {
		return OutcomeWin, nil
	}
	return OutcomeLose, nil
}
