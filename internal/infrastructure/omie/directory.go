package omie

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// Endpoints y llamadas de Omie usados por el pipeline.
const (
	CustomersEndpoint = "/geral/clientes/"
	CallListCustomers = "ListarClientes"

	OrdersEndpoint = "/produtos/pedido/"
	CallListOrders = "ListarPedidos"

	// PageSize registros por página en ambos listados.
	PageSize = 50
)

var (
	_ ports.CustomerDirectory = (*Directory)(nil)
	_ ports.OrderSource       = (*Directory)(nil)
)

// Directory adapta ListarClientes y ListarPedidos a los puertos de la aplicación.
type Directory struct {
	client Invoker
}

// NewDirectory construye el adaptador sobre un Invoker (normalmente *Client).
func NewDirectory(client Invoker) *Directory {
	return &Directory{client: client}
}

type listCustomersParam struct {
	Page          int                   `json:"pagina"`
	PageSize      int                   `json:"registros_por_pagina"`
	OnlyAPIImport string                `json:"apenas_importado_api"`
	Filter        entity.CustomerFilter `json:"clientesFiltro"`
}

// ListCustomers consulta una página del directorio de clientes.
// Si la respuesta no trae total_de_paginas numérico se asume 1.
func (d *Directory) ListCustomers(ctx context.Context, page int, filter entity.CustomerFilter) (*entity.CustomerPage, error) {
	raw, err := d.client.Invoke(ctx, CustomersEndpoint, CallListCustomers, listCustomersParam{
		Page:          page,
		PageSize:      PageSize,
		OnlyAPIImport: "N",
		Filter:        filter,
	})
	if err != nil {
		return nil, err
	}

	list, err := recordList(raw, "clientes_cadastro")
	if err != nil {
		return nil, decodeError(err)
	}
	records := make([]entity.CustomerRecord, 0, len(list))
	for _, r := range list {
		if r.IsObject() {
			records = append(records, customerFrom(r))
		}
	}

	totalPages := 1
	if n := intValue(gjson.GetBytes(raw, "total_de_paginas")); n > 0 {
		totalPages = int(n)
	}
	return &entity.CustomerPage{
		Page:       page,
		TotalPages: totalPages,
		Records:    records,
	}, nil
}

type listOrdersParam struct {
	Page          int    `json:"pagina"`
	PageSize      int    `json:"registros_por_pagina"`
	OnlyAPIImport string `json:"apenas_importado_api"`
	CustomerID    int64  `json:"filtrar_por_cliente"`
}

// ListOrders consulta solo la página 1 de pedidos del cliente.
// Un pedido que no es objeto se devuelve vacío para que el llamador lo trate como no formateable.
func (d *Directory) ListOrders(ctx context.Context, customerID int64) ([]entity.OrderRecord, error) {
	raw, err := d.client.Invoke(ctx, OrdersEndpoint, CallListOrders, listOrdersParam{
		Page:          1,
		PageSize:      PageSize,
		OnlyAPIImport: "N",
		CustomerID:    customerID,
	})
	if err != nil {
		return nil, err
	}

	list, err := recordList(raw, "pedido_venda_produto")
	if err != nil {
		return nil, decodeError(err)
	}
	orders := make([]entity.OrderRecord, 0, len(list))
	for _, r := range list {
		orders = append(orders, orderFrom(r))
	}
	return orders, nil
}

func decodeError(err error) error {
	return &domain.UpstreamError{Kind: domain.ErrUpstreamDecode, Message: DecodeFailureMessage, Cause: err}
}
