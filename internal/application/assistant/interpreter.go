// Package assistant responde preguntas en lenguaje natural sobre los pedidos de un
// cliente combinando el modelo de lenguaje con la búsqueda de pedidos.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/llmtext"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// DefaultLLMTimeout timeout por llamada al modelo cuando no se configura otro.
const DefaultLLMTimeout = 30 * time.Second

// ErrInterpretation la llamada de estructuración al modelo falló.
var ErrInterpretation = errors.New("fallo al interpretar la pregunta con el modelo")

// Interpreter convierte la pregunta libre en pistas de cliente más la pregunta específica.
type Interpreter struct {
	llm     ports.LLMService
	timeout time.Duration
	log     *logger.Logger
}

// NewInterpreter construye el intérprete. timeout <= 0 usa DefaultLLMTimeout.
func NewInterpreter(llm ports.LLMService, timeout time.Duration, log *logger.Logger) *Interpreter {
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Interpreter{llm: llm, timeout: timeout, log: log.Child("component", "interpreter")}
}

// rawInterpretation acepta tipos laxos: el modelo a veces devuelve números o "null" como texto.
type rawInterpretation struct {
	TaxID       any `json:"cnpj_cpf"`
	DisplayName any `json:"nome_fantasia"`
	City        any `json:"cidade"`
	SubQuestion any `json:"pergunta_especifica"`
	AboutOrders any `json:"sobre_pedidos"`
}

// Interpret envía el prompt de estructuración y parsea el JSON devuelto, con o sin
// bloque markdown alrededor.
func (i *Interpreter) Interpret(ctx context.Context, question string) (*entity.InterpretedQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	raw, err := i.llm.GenerateJSON(ctx, buildAnalysisPrompt(question))
	if err != nil {
		i.log.Error().Err(err).Msg("fallo la llamada de análisis al modelo")
		return nil, fmt.Errorf("%w: %w", ErrInterpretation, err)
	}
	i.log.Debug().Str("raw", raw).Msg("respuesta cruda del análisis")

	var parsed rawInterpretation
	if err := json.Unmarshal([]byte(llmtext.StripFence(raw)), &parsed); err != nil {
		i.log.Warn().Err(err).Str("raw", raw).Msg("el análisis no es JSON válido")
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedLLMOutput, err)
	}

	out := &entity.InterpretedQuestion{
		TaxID:       hint(parsed.TaxID),
		DisplayName: hint(parsed.DisplayName),
		City:        hint(parsed.City),
		AboutOrders: truthy(parsed.AboutOrders),
	}
	if sq := hint(parsed.SubQuestion); sq != nil {
		out.SubQuestion = *sq
	}
	i.log.Debug().
		Bool("sobre_pedidos", out.AboutOrders).
		Str("pergunta_especifica", out.SubQuestion).
		Msg("pregunta interpretada")
	return out, nil
}

// hint normaliza una pista: nil para ausente, vacío o el texto "null".
func hint(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return nil
	}
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float64:
		return t != 0
	default:
		return false
	}
}
