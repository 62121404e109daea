package omie

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// Los listados se leen campo a campo: un valor de tipo inesperado queda ausente
// y el registro sigue su curso con los valores por defecto.

var errNotList = errors.New("se esperaba una lista")

// recordList devuelve la lista bajo key. Ausente o null equivale a lista vacía.
func recordList(raw []byte, key string) ([]gjson.Result, error) {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, errors.New("se esperaba un objeto JSON")
	}
	list := root.Get(key)
	switch {
	case !list.Exists() || list.Type == gjson.Null:
		return nil, nil
	case !list.IsArray():
		return nil, errNotList
	}
	return list.Array(), nil
}

func customerFrom(r gjson.Result) entity.CustomerRecord {
	return entity.CustomerRecord{
		ID:          intValue(r.Get("codigo_cliente_omie")),
		TaxID:       scalarText(r.Get("cnpj_cpf")),
		DisplayName: scalarText(r.Get("nome_fantasia")),
		LegalName:   scalarText(r.Get("razao_social")),
		City:        scalarText(r.Get("cidade")),
	}
}

// orderFrom arma un OrderRecord. Un elemento que no es objeto queda vacío (no formateable).
func orderFrom(r gjson.Result) entity.OrderRecord {
	var rec entity.OrderRecord
	if !r.IsObject() {
		return rec
	}
	if h := r.Get("cabecalho"); h.IsObject() {
		rec.Header = &entity.OrderHeader{
			Number:       numberValue(h.Get("numero_pedido")),
			ExpectedDate: textPtr(h.Get("data_previsao")),
			Stage:        textPtr(h.Get("etapa")),
		}
	}
	if det := r.Get("det"); det.IsArray() {
		for _, it := range det.Array() {
			var item entity.OrderItem
			if p := it.Get("produto"); p.IsObject() {
				item.Product = &entity.OrderProduct{
					Description: textPtr(p.Get("descricao")),
					Quantity:    decimalPtr(p.Get("quantidade")),
					UnitPrice:   decimalPtr(p.Get("valor_unitario")),
					Total:       decimalPtr(p.Get("valor_total")),
				}
			}
			rec.Items = append(rec.Items, item)
		}
	}
	if t := r.Get("total_pedido"); t.IsObject() {
		rec.Total = &entity.OrderTotal{OrderTotal: decimalPtr(t.Get("valor_total_pedido"))}
	}
	return rec
}

// scalarText texto de un string o número; "" para cualquier otro tipo.
func scalarText(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

func textPtr(r gjson.Result) *string {
	if r.Type != gjson.String && r.Type != gjson.Number {
		return nil
	}
	s := scalarText(r)
	return &s
}

// numberValue conserva numero_pedido como string o float64; nil en otro caso.
func numberValue(r gjson.Result) any {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Float()
	default:
		return nil
	}
}

func decimalPtr(r gjson.Result) *decimal.Decimal {
	var s string
	switch r.Type {
	case gjson.Number:
		s = r.Raw
	case gjson.String:
		s = strings.TrimSpace(r.Str)
	default:
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func intValue(r gjson.Result) int64 {
	switch r.Type {
	case gjson.Number:
		return r.Int()
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(r.Str), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
