package ports

import (
	"context"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// CustomerDirectory puerto de lectura paginada del directorio de clientes.
type CustomerDirectory interface {
	// ListCustomers devuelve la página indicada (base 1) aplicando el filtro server-side.
	// Los errores del upstream llegan como *domain.UpstreamError.
	ListCustomers(ctx context.Context, page int, filter entity.CustomerFilter) (*entity.CustomerPage, error)
}

// OrderSource puerto de lectura de pedidos de venta.
type OrderSource interface {
	// ListOrders devuelve la primera página de pedidos del cliente, en el orden del upstream.
	ListOrders(ctx context.Context, customerID int64) ([]entity.OrderRecord, error)
}
