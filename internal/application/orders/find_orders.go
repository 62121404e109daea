package orders

import (
	"context"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// FindCustomerOrders caso de uso "encontrar pedidos del cliente": resuelve el cliente
// y devuelve el resumen de sus últimos pedidos.
type FindCustomerOrders struct {
	resolver  *Resolver
	retriever *Retriever
	limit     int
	log       *logger.Logger
}

// NewFindCustomerOrders construye el caso de uso. El mismo adaptador de Omie suele
// servir como directorio y como fuente de pedidos.
func NewFindCustomerOrders(dir ports.CustomerDirectory, src ports.OrderSource, log *logger.Logger) *FindCustomerOrders {
	if log == nil {
		log = logger.Nop()
	}
	return &FindCustomerOrders{
		resolver:  NewResolver(dir, log),
		retriever: NewRetriever(src, log),
		limit:     DefaultRecentLimit,
		log:       log.Child("component", "find_orders"),
	}
}

// Execute resuelve q y trae los pedidos recientes. Los errores se traducen con Message.
func (uc *FindCustomerOrders) Execute(ctx context.Context, q entity.CustomerQuery) ([]entity.OrderSummary, error) {
	uc.log.Info().
		Str("cnpj_cpf", q.TaxID).
		Str("nome_fantasia", q.DisplayName).
		Str("cidade", q.City).
		Msg("buscando pedidos del cliente")

	customer, err := uc.resolver.Resolve(ctx, q)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo resolver el cliente")
		return nil, err
	}
	uc.log.Info().Int64("customer_id", customer.ID).Str("nome_fantasia", customer.DisplayName).Msg("cliente resuelto")

	summaries, err := uc.retriever.FetchRecent(ctx, customer.ID, uc.limit)
	if err != nil {
		uc.log.Warn().Err(err).Int64("customer_id", customer.ID).Msg("no se pudieron obtener los pedidos")
		return nil, err
	}
	return summaries, nil
}
