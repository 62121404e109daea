package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerQuery_IsEmpty(t *testing.T) {
	assert.True(t, CustomerQuery{}.IsEmpty())
	assert.True(t, CustomerQuery{TaxID: "  ", City: "\t"}.IsEmpty())
	assert.False(t, CustomerQuery{City: "Goiânia"}.IsEmpty())
}

func TestCustomerQuery_NormalizedTaxID(t *testing.T) {
	assert.Equal(t, "35948981134", CustomerQuery{TaxID: "359.489.811-34"}.NormalizedTaxID())
	assert.Equal(t, "", CustomerQuery{DisplayName: "Padaria"}.NormalizedTaxID())
}

func TestInterpretedQuestion_Query(t *testing.T) {
	name := "Padaria Central"
	q := InterpretedQuestion{DisplayName: &name}

	assert.Equal(t, CustomerQuery{DisplayName: "Padaria Central"}, q.Query())
}

func TestOrderSummary_ImportesComoNumeros(t *testing.T) {
	s := OrderSummary{
		Number:       "1004",
		ExpectedDate: DefaultText,
		Stage:        "50",
		Total:        decimal.RequireFromString("4.5"),
		Items: []LineItem{{
			Description: "Caixa",
			Quantity:    decimal.Zero,
			UnitPrice:   decimal.RequireFromString("1.50"),
			Total:       decimal.NewFromInt(3),
		}},
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"numero_pedido": "1004", "data_previsao": "N/A", "etapa_pedido": "50",
		"valor_total_pedido": 4.5,
		"itens": [{"descricao_produto": "Caixa", "quantidade": 0, "valor_unitario": 1.5, "valor_total_item": 3}]
	}`, string(out))

	var back OrderSummary
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, s.Total.Equal(back.Total))
	assert.True(t, s.Items[0].UnitPrice.Equal(back.Items[0].UnitPrice))
}
