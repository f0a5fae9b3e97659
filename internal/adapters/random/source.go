// Package random provee la fuente aleatoria con seed que consume la simulación.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// streamMix deriva el segundo word del estado PCG a partir de la seed.
const streamMix = 0x9e3779b97f4a7c15

// New devuelve un generador PCG determinista para la seed dada.
// Misma seed → misma secuencia de draws. No es seguro para uso concurrente.
func New(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^streamMix))
}

// NewSeed genera una seed usando crypto/rand. Nunca devuelve 0,
// que en config significa "elegir seed aleatoria".
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("random.NewSeed: read: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// Resolve devuelve la seed si es distinta de 0, o una nueva seed aleatoria.
func Resolve(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}
