package domain

import (
	"errors"
	"fmt"
)

// NumDoors es el número fijo de puertas del juego.
const NumDoors = 3

var (
	// ErrInvalidArgument indica un índice de puerta fuera de 1..3 o un n de trials inválido.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState indica que se rompió un invariante (arrangement mal formado, reveal == pick).
	ErrInvalidState = errors.New("invalid state")
)

// Label es el contenido detrás de una puerta.
type Label string

const (
	LabelDecoy Label = "DECOY"
	LabelPrize Label = "PRIZE"
)

// DoorIndex identifica una puerta, 1..3.
type DoorIndex int

// Validate devuelve ErrInvalidArgument si el índice no está en 1..3.
func (d DoorIndex) Validate() error {
	if d < 1 || d > NumDoors {
		return fmt.Errorf("door %d out of range 1..%d: %w", d, NumDoors, ErrInvalidArgument)
	}
	return nil
}

// Arrangement es el contenido de las 3 puertas, posición 0 = puerta 1.
// Se crea por trial con CreateGame y no se modifica después.
type Arrangement [NumDoors]Label

// At devuelve el contenido de la puerta d. No valida d.
func (a Arrangement) At(d DoorIndex) Label {
	return a[d-1]
}

// PrizeDoor devuelve la puerta con el premio, o 0 si no hay ninguna.
func (a Arrangement) PrizeDoor() DoorIndex {
	for i, l := range a {
		if l == LabelPrize {
			return DoorIndex(i + 1)
		}
	}
	return 0
}

// Validate comprueba el invariante: exactamente un PRIZE y dos DECOY.
func (a Arrangement) Validate() error {
	prizes, decoys := 0, 0
	for _, l := range a {
		switch l {
		case LabelPrize:
			prizes++
		case LabelDecoy:
			decoys++
		}
	}
	if prizes != 1 || decoys != NumDoors-1 {
		return fmt.Errorf("arrangement %v: want 1 %s and %d %s: %w",
			a, LabelPrize, NumDoors-1, LabelDecoy, ErrInvalidState)
	}
	return nil
}

func (a Arrangement) String() string {
	return fmt.Sprintf("[%s %s %s]", a[0], a[1], a[2])
}
