package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Valores por defecto aplicados cuando el registro de Omie no trae un campo.
const (
	DefaultText = "N/A"
)

// OrderRecord pedido de venta tal como llega de ListarPedidos (pedido_venda_produto).
// Los sub-registros son punteros: la API puede omitirlos.
type OrderRecord struct {
	Header *OrderHeader `json:"cabecalho"`
	Items  []OrderItem  `json:"det"`
	Total  *OrderTotal  `json:"total_pedido"`
}

// OrderHeader cabecera del pedido.
// Number se conserva sin tipar: Omie lo envía como texto, pero no está garantizado.
type OrderHeader struct {
	Number       any     `json:"numero_pedido"`
	ExpectedDate *string `json:"data_previsao"`
	Stage        *string `json:"etapa"`
}

// OrderItem línea del pedido (det[]).
type OrderItem struct {
	Product *OrderProduct `json:"produto"`
}

// OrderProduct sub-registro de producto de una línea.
type OrderProduct struct {
	Description *string          `json:"descricao"`
	Quantity    *decimal.Decimal `json:"quantidade"`
	UnitPrice   *decimal.Decimal `json:"valor_unitario"`
	Total       *decimal.Decimal `json:"valor_total"`
}

// OrderTotal totales del pedido.
type OrderTotal struct {
	OrderTotal *decimal.Decimal `json:"valor_total_pedido"`
}

// OrderSummary vista plana de un pedido, reconstruida en cada llamada.
type OrderSummary struct {
	Number       string          `json:"numero_pedido"`
	ExpectedDate string          `json:"data_previsao"`
	Stage        string          `json:"etapa_pedido"`
	Total        decimal.Decimal `json:"valor_total_pedido"`
	Items        []LineItem      `json:"itens"`
}

// MarshalJSON emite los importes como números JSON.
func (s OrderSummary) MarshalJSON() ([]byte, error) {
	type plain OrderSummary
	return json.Marshal(struct {
		plain
		Total json.Number `json:"valor_total_pedido"`
	}{plain(s), json.Number(s.Total.String())})
}

// LineItem línea de un OrderSummary.
type LineItem struct {
	Description string          `json:"descricao_produto"`
	Quantity    decimal.Decimal `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"valor_unitario"`
	Total       decimal.Decimal `json:"valor_total_item"`
}

// MarshalJSON emite cantidades e importes como números JSON.
func (l LineItem) MarshalJSON() ([]byte, error) {
	type plain LineItem
	return json.Marshal(struct {
		plain
		Quantity  json.Number `json:"quantidade"`
		UnitPrice json.Number `json:"valor_unitario"`
		Total     json.Number `json:"valor_total_item"`
	}{plain(l), json.Number(l.Quantity.String()), json.Number(l.UnitPrice.String()), json.Number(l.Total.String())})
}
