package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrSyncInProgress  = errors.New("ya hay una sincronización de este tipo en curso")
	ErrUnknownTemplate = errors.New("plantilla de Excel no reconocida")
	ErrNoValidRows     = errors.New("el archivo no contiene filas válidas")
	ErrWmsTimeout      = errors.New("timeout al consultar el API del WMS")
)

// RateLimitedError el WMS respondió 429; RetryAfter indica cuánto esperar antes de reintentar.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("el API del WMS aplicó rate limiting (reintentar en %s)", e.RetryAfter)
}

// UpstreamError respuesta de error del WMS: HTTP no exitoso o ask distinto de Success.
// Message conserva el mensaje del upstream truncado; nunca incluye el token.
type UpstreamError struct {
	Status  int    // código HTTP; 200 si el error viene del campo ask
	Ask     string // valor del campo ask cuando aplica
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Ask != "" {
		return fmt.Sprintf("el WMS rechazó la petición (ask=%s): %s", e.Ask, e.Message)
	}
	return fmt.Sprintf("el WMS respondió HTTP %d: %s", e.Status, e.Message)
}

// TruncateError recorta un mensaje de error para persistirlo (por ejemplo en sync_logs).
func TruncateError(err error, max int) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) <= max {
		return msg
	}
	return msg[:max]
}
