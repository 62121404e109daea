package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/orders"
	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// Mensajes al usuario por etapa.
const (
	MsgAIUnavailable     = "Desculpe, estou com problemas para acessar minha inteligência artificial no momento."
	MsgNotUnderstood     = "Desculpe, não consegui entender completamente sua pergunta. Tente reformular."
	MsgInterpretFailed   = "Desculpe, ocorreu um erro ao tentar entender sua pergunta com a IA."
	MsgOutOfScope        = "Desculpe, só posso ajudar com perguntas relacionadas a pedidos de clientes."
	MsgNeedIdentifier    = "Para responder sua pergunta sobre pedidos, preciso que você me informe o CNPJ/CPF, Nome Fantasia ou a Cidade do cliente."
	MsgAnswerFailed      = "Desculpe, consegui buscar os dados dos pedidos, mas tive um problema ao formular a resposta final."
	msgOrdersNotFoundFmt = "Não consegui encontrar os pedidos. Detalhes: %s"
	msgNoOrdersFmt       = "Não encontrei pedidos para o cliente informado (CNPJ/CPF: %s, Nome: %s, Cidade: %s). " +
		"Verifique os dados ou o cliente pode não ter pedidos."
	notInformed = "não informado"
)

// OrderFinder busca los pedidos recientes del cliente (orders.FindCustomerOrders).
type OrderFinder interface {
	Execute(ctx context.Context, q entity.CustomerQuery) ([]entity.OrderSummary, error)
}

var _ OrderFinder = (*orders.FindCustomerOrders)(nil)

// Orchestrator encadena intérprete, búsqueda de pedidos y redactor.
// Answer siempre devuelve un texto; ningún fallo se propaga como error.
type Orchestrator struct {
	interpreter *Interpreter
	finder      OrderFinder
	synthesizer *Synthesizer
	log         *logger.Logger
}

// NewOrchestrator construye el pipeline con un único timeout por llamada al modelo.
func NewOrchestrator(llm ports.LLMService, finder OrderFinder, llmTimeout time.Duration, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		interpreter: NewInterpreter(llm, llmTimeout, log),
		finder:      finder,
		synthesizer: NewSynthesizer(llm, llmTimeout, log),
		log:         log.Child("component", "orchestrator"),
	}
}

// Answer responde la pregunta del usuario sobre pedidos de un cliente.
func (o *Orchestrator) Answer(ctx context.Context, question string) string {
	log := o.log.Child("question_id", uuid.NewString())
	log.Info().Str("pergunta", question).Msg("nueva pregunta")

	interp, err := o.interpreter.Interpret(ctx, question)
	if err != nil {
		return interpretMessage(err)
	}
	if !interp.AboutOrders {
		log.Info().Msg("pregunta fuera de alcance")
		return MsgOutOfScope
	}

	q := interp.Query()
	if q.IsEmpty() {
		log.Info().Msg("sin pistas de cliente")
		return MsgNeedIdentifier
	}

	found, err := o.finder.Execute(ctx, q)
	if err != nil {
		detail := orders.Message(err)
		log.Warn().Err(err).Str("detalle", detail).Msg("no se encontraron pedidos")
		return fmt.Sprintf(msgOrdersNotFoundFmt, detail)
	}
	if len(found) == 0 {
		return fmt.Sprintf(msgNoOrdersFmt, orNotInformed(q.TaxID), orNotInformed(q.DisplayName), orNotInformed(q.City))
	}

	answer, err := o.synthesizer.Synthesize(ctx, question, interp.SubQuestion, found)
	if err != nil {
		return MsgAnswerFailed
	}
	log.Info().Int("orders", len(found)).Msg("pregunta respondida")
	return answer
}

func interpretMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrLLMUnavailable):
		return MsgAIUnavailable
	case errors.Is(err, domain.ErrMalformedLLMOutput):
		return MsgNotUnderstood
	default:
		return MsgInterpretFailed
	}
}

func orNotInformed(s string) string {
	if s == "" {
		return notInformed
	}
	return s
}
