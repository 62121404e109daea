package dto

import "github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"

// FindOrdersRequest entrada de POST /api/orders/search. Al menos una pista es necesaria;
// esa regla la aplica el caso de uso.
type FindOrdersRequest struct {
	TaxID       string `json:"cnpj_cpf" validate:"omitempty,max=32"`
	DisplayName string `json:"nome_fantasia" validate:"omitempty,max=120"`
	City        string `json:"cidade" validate:"omitempty,max=80"`
}

// Query convierte la petición en el CustomerQuery del dominio.
func (r FindOrdersRequest) Query() entity.CustomerQuery {
	return entity.CustomerQuery{TaxID: r.TaxID, DisplayName: r.DisplayName, City: r.City}
}

// FindOrdersResponse pedidos más recientes del cliente resuelto.
type FindOrdersResponse struct {
	Orders []entity.OrderSummary `json:"pedidos"`
}
