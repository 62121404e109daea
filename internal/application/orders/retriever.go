package orders

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/omie-pedidos-ia/internal/application/ports"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// DefaultRecentLimit cantidad de pedidos devueltos por defecto.
const DefaultRecentLimit = 3

// defaultSortKey clave de orden de un pedido sin numero_pedido.
const defaultSortKey = "0"

// FetchOrdersError fallo del upstream al listar pedidos.
type FetchOrdersError struct {
	CustomerID int64
	Err        error
}

func (e *FetchOrdersError) Error() string {
	return fmt.Sprintf("pedidos del cliente %d: %v", e.CustomerID, e.Err)
}

func (e *FetchOrdersError) Unwrap() error { return e.Err }

// CustomerOrdersError el listado de pedidos no produjo resultados.
// Kind es domain.ErrNoOrders o domain.ErrPartialData.
type CustomerOrdersError struct {
	CustomerID int64
	Kind       error
}

func (e *CustomerOrdersError) Error() string {
	return fmt.Sprintf("cliente %d: %v", e.CustomerID, e.Kind)
}

func (e *CustomerOrdersError) Unwrap() error { return e.Kind }

// Retriever obtiene y resume los pedidos más recientes de un cliente.
type Retriever struct {
	src ports.OrderSource
	log *logger.Logger
}

// NewRetriever construye el retriever sobre el puerto de pedidos.
func NewRetriever(src ports.OrderSource, log *logger.Logger) *Retriever {
	if log == nil {
		log = logger.Nop()
	}
	return &Retriever{src: src, log: log.Child("component", "retriever")}
}

// FetchRecent lee la página 1 de pedidos del cliente, la ordena por numero_pedido
// descendente y resume los primeros limit. limit <= 0 usa DefaultRecentLimit.
// Los pedidos fuera de la primera página nunca se inspeccionan.
func (r *Retriever) FetchRecent(ctx context.Context, customerID int64, limit int) ([]entity.OrderSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	records, err := r.src.ListOrders(ctx, customerID)
	if err != nil {
		return nil, &FetchOrdersError{CustomerID: customerID, Err: err}
	}
	if len(records) == 0 {
		return nil, &CustomerOrdersError{CustomerID: customerID, Kind: domain.ErrNoOrders}
	}

	sorted := r.sortByNumberDesc(records)
	recent := sorted[:min(limit, len(sorted))]

	out := make([]entity.OrderSummary, 0, len(recent))
	for _, rec := range recent {
		if s, ok := summarize(rec); ok {
			out = append(out, s)
		}
	}
	r.log.Debug().Int64("customer_id", customerID).Int("fetched", len(records)).Int("formatted", len(out)).
		Msg("pedidos resumidos")

	if len(out) == 0 {
		return nil, &CustomerOrdersError{CustomerID: customerID, Kind: domain.ErrPartialData}
	}
	return out, nil
}

// sortByNumberDesc ordena una copia de records por numero_pedido descendente (estable).
// Si todas las claves son texto se comparan lexicográficamente ("9" > "10"); si todas
// son numéricas, por valor. Con tipos mezclados o no comparables se conserva el orden
// del upstream.
func (r *Retriever) sortByNumberDesc(records []entity.OrderRecord) []entity.OrderRecord {
	out := slices.Clone(records)

	keys := make([]any, len(out))
	var strs, nums int
	for i, rec := range out {
		k := sortKey(rec)
		switch k.(type) {
		case string:
			strs++
		case float64:
			nums++
		}
		keys[i] = k
	}

	if strs != len(out) && nums != len(out) {
		r.log.Warn().Int("text_keys", strs).Int("numeric_keys", nums).Int("orders", len(out)).
			Msg("numero_pedido no comparable; se usa el orden de la API")
		return out
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch ka := keys[a].(type) {
		case string:
			return cmp.Compare(keys[b].(string), ka)
		default:
			return cmp.Compare(keys[b].(float64), ka.(float64))
		}
	})

	sorted := make([]entity.OrderRecord, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// sortKey devuelve numero_pedido normalizado a string o float64; "0" si falta.
func sortKey(rec entity.OrderRecord) any {
	if rec.Header == nil || rec.Header.Number == nil {
		return defaultSortKey
	}
	switch v := rec.Header.Number.(type) {
	case string:
		return v
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

// summarize aplana un pedido. Un registro sin cabecera, líneas ni totales no es formateable.
func summarize(rec entity.OrderRecord) (entity.OrderSummary, bool) {
	if rec.Header == nil && rec.Total == nil && len(rec.Items) == 0 {
		return entity.OrderSummary{}, false
	}

	s := entity.OrderSummary{
		Number:       entity.DefaultText,
		ExpectedDate: entity.DefaultText,
		Stage:        entity.DefaultText,
		Total:        decimal.Zero,
		Items:        make([]entity.LineItem, 0, len(rec.Items)),
	}
	if h := rec.Header; h != nil {
		s.Number = numberText(h.Number)
		s.ExpectedDate = textOr(h.ExpectedDate)
		s.Stage = textOr(h.Stage)
	}
	if rec.Total != nil {
		s.Total = decimalOr(rec.Total.OrderTotal)
	}

	for _, it := range rec.Items {
		li := entity.LineItem{
			Description: entity.DefaultText,
			Quantity:    decimal.Zero,
			UnitPrice:   decimal.Zero,
			Total:       decimal.Zero,
		}
		if p := it.Product; p != nil {
			li.Description = textOr(p.Description)
			li.Quantity = decimalOr(p.Quantity)
			li.UnitPrice = decimalOr(p.UnitPrice)
			li.Total = decimalOr(p.Total)
		}
		s.Items = append(s.Items, li)
	}
	return s, true
}

func numberText(v any) string {
	switch n := v.(type) {
	case nil:
		return entity.DefaultText
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}

func textOr(s *string) string {
	if s == nil {
		return entity.DefaultText
	}
	return *s
}

func decimalOr(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
