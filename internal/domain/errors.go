package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Cada uno corresponde a una clase
// de fallo del pipeline; las capas externas los traducen a mensajes para el usuario.
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUpstreamTransport  = errors.New("fallo de transporte con la API de registros")
	ErrUpstreamHTTP       = errors.New("la API de registros respondió con estado de error")
	ErrUpstreamFault      = errors.New("la API de registros devolvió un fault")
	ErrUpstreamDecode     = errors.New("respuesta de la API de registros no decodificable")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAmbiguousMatch     = errors.New("coincidencia ambigua")
	ErrNoOrders           = errors.New("cliente sin pedidos")
	ErrPartialData        = errors.New("pedidos recuperados pero ninguno pudo formatearse")
	ErrLLMUnavailable     = errors.New("servicio de IA no disponible")
	ErrMalformedLLMOutput = errors.New("respuesta del modelo no es JSON válido")
	ErrOutOfScope         = errors.New("pregunta fuera del alcance de pedidos")
	ErrAnswerGeneration   = errors.New("no se pudo generar la respuesta final")
)

// UpstreamError forma uniforme de los errores de la API de registros:
// {error: true, statusCode, message}. StatusCode es 0 cuando no hubo respuesta HTTP.
type UpstreamError struct {
	Kind       error // uno de ErrUpstreamTransport, ErrUpstreamHTTP, ErrUpstreamFault, ErrUpstreamDecode
	StatusCode int
	Message    string
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Unwrap permite errors.Is(err, domain.ErrUpstreamFault) y también llegar a la causa original.
func (e *UpstreamError) Unwrap() []error {
	out := []error{e.Kind}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// AmbiguousMatchError detalla una resolución con varios candidatos distintos.
type AmbiguousMatchError struct {
	Hint     string // pista usada (nombre fantasía o CNPJ/CPF)
	Distinct int    // cantidad de nombres distintos; 0 si la ambigüedad es por CNPJ/CPF
	ByTaxID  bool
}

func (e *AmbiguousMatchError) Error() string {
	if e.ByTaxID {
		return fmt.Sprintf("%v: varios registros con el CNPJ/CPF %s", ErrAmbiguousMatch, e.Hint)
	}
	return fmt.Sprintf("%v: %d clientes distintos para %q", ErrAmbiguousMatch, e.Distinct, e.Hint)
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguousMatch }
