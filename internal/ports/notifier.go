package ports

import (
	"context"

	"github.com/alejandrodnm/montyhall/internal/domain"
)

// Notifier presenta el resultado de un batch al usuario.
type Notifier interface {
	// Notify muestra el resumen del batch.
	// En la implementación de consola, imprime una tabla formateada.
	Notify(ctx context.Context, batch domain.Batch) error
}
