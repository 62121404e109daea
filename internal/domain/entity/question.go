package entity

// InterpretedQuestion resultado de la etapa de estructuración de la pregunta.
// Se produce una vez por pregunta y se descarta al terminar la petición.
type InterpretedQuestion struct {
	TaxID       *string `json:"cnpj_cpf"`
	DisplayName *string `json:"nome_fantasia"`
	City        *string `json:"cidade"`
	SubQuestion string  `json:"pergunta_especifica"`
	AboutOrders bool    `json:"sobre_pedidos"`
}

// Query convierte las pistas extraídas en un CustomerQuery (nil → "").
func (q InterpretedQuestion) Query() CustomerQuery {
	return CustomerQuery{
		TaxID:       deref(q.TaxID),
		DisplayName: deref(q.DisplayName),
		City:        deref(q.City),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
