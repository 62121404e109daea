package entity

import (
	"strings"

	"github.com/jhoicas/omie-pedidos-ia/pkg/taxid"
)

// CustomerQuery pistas parciales de identidad del cliente. Todas opcionales,
// pero al menos una debe venir informada para poder resolver.
type CustomerQuery struct {
	TaxID       string // CNPJ o CPF, con o sin máscara
	DisplayName string // nome fantasia
	City        string
}

// IsEmpty indica si ninguna pista fue informada.
func (q CustomerQuery) IsEmpty() bool {
	return strings.TrimSpace(q.TaxID) == "" &&
		strings.TrimSpace(q.DisplayName) == "" &&
		strings.TrimSpace(q.City) == ""
}

// NormalizedTaxID devuelve el CNPJ/CPF solo con dígitos ("" si no se informó).
func (q CustomerQuery) NormalizedTaxID() string {
	return taxid.Normalize(q.TaxID)
}

// CustomerFilter filtro server-side de ListarClientes. Solo uno de los campos viaja a la vez.
type CustomerFilter struct {
	TaxID       string `json:"cnpj_cpf,omitempty"`
	DisplayName string `json:"nome_fantasia,omitempty"`
	City        string `json:"cidade,omitempty"`
}

// CustomerRecord entrada del directorio de clientes de Omie (clientes_cadastro).
// Inmutable una vez leída; los campos ausentes quedan en su valor cero.
type CustomerRecord struct {
	ID          int64  `json:"codigo_cliente_omie"`
	TaxID       string `json:"cnpj_cpf"`
	DisplayName string `json:"nome_fantasia"`
	LegalName   string `json:"razao_social"`
	City        string `json:"cidade"`
}

// NormalizedTaxID CNPJ/CPF del registro solo con dígitos.
func (c CustomerRecord) NormalizedTaxID() string {
	return taxid.Normalize(c.TaxID)
}

// CustomerPage una página del directorio.
type CustomerPage struct {
	Page       int              `json:"pagina"`
	TotalPages int              `json:"total_de_paginas"`
	Records    []CustomerRecord `json:"clientes_cadastro"`
}
