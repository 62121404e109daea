package orders

import (
	"errors"
	"fmt"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
)

const unknownAPIError = "Erro desconhecido na API"

// Message traduce un error de FindCustomerOrders al texto que ve el usuario.
func Message(err error) string {
	var (
		pageErr   *PageError
		ambiguous *domain.AmbiguousMatchError
		fetchErr  *FetchOrdersError
		ordersErr *CustomerOrdersError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidInput):
		return "Erro: Forneça ao menos um parâmetro de busca (CNPJ/CPF, Nome Fantasia, ou Cidade)."
	case errors.As(err, &pageErr):
		return fmt.Sprintf("Erro ao buscar cliente (página %d): %s", pageErr.Page, upstreamMessage(pageErr.Err))
	case errors.As(err, &ambiguous) && ambiguous.ByTaxID:
		return fmt.Sprintf("Erro: Múltiplos registros encontrados com o mesmo CNPJ/CPF (%s) na paginação. Verifique os dados na Omie.", ambiguous.Hint)
	case errors.As(err, &ambiguous):
		return fmt.Sprintf("Erro: Múltiplos clientes (%d) encontrados com o Nome Fantasia '%s' após verificar todas as páginas. "+
			"Por favor, forneça um CNPJ/CPF ou um Nome Fantasia mais específico.", ambiguous.Distinct, ambiguous.Hint)
	case errors.Is(err, ErrEmptyFirstPage):
		return "Erro: Cliente não encontrado com os critérios fornecidos (nenhum resultado na primeira página)."
	case errors.Is(err, domain.ErrNotFound):
		return "Erro: Cliente não encontrado com os critérios fornecidos após verificar todas as páginas."
	case errors.As(err, &fetchErr):
		return "Erro ao buscar pedidos: " + upstreamMessage(fetchErr.Err)
	case errors.As(err, &ordersErr) && errors.Is(ordersErr.Kind, domain.ErrNoOrders):
		return fmt.Sprintf("Nenhum pedido encontrado para o cliente ID: %d na página 1. "+
			"O cliente pode não ter pedidos ou o ID pode ter algum problema.", ordersErr.CustomerID)
	case errors.As(err, &ordersErr):
		return fmt.Sprintf("Nenhum pedido processado para o cliente ID: %d. "+
			"A lista de pedidos pode estar vazia ou em um formato inesperado.", ordersErr.CustomerID)
	default:
		return "Erro inesperado no processamento da API"
	}
}

func upstreamMessage(err error) string {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return unknownAPIError
}
