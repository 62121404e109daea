package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(AskRequest{Question: "qual o último pedido?"}))
	assert.NoError(t, Validate(FindOrdersRequest{}))

	err := Validate(AskRequest{})
	assert.ErrorContains(t, err, "Question (required)")

	err = Validate(FindOrdersRequest{City: strings.Repeat("x", 81)})
	assert.ErrorContains(t, err, "City (max)")
}

func TestFindOrdersRequest_Query(t *testing.T) {
	r := FindOrdersRequest{TaxID: "359.489.811-34", City: "Goiânia"}
	assert.Equal(t, entity.CustomerQuery{TaxID: "359.489.811-34", City: "Goiânia"}, r.Query())
}
