package llmtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFence(t *testing.T) {
	const obj = `{"cnpj_cpf": "35948981134", "sobre_pedidos": true}`

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "sin cerca", input: obj, want: obj},
		{name: "sin cerca con espacios", input: "\n  " + obj + "  \n", want: obj},
		{name: "cerca con etiqueta json", input: "```json\n" + obj + "\n```", want: obj},
		{name: "cerca sin etiqueta", input: "```\n" + obj + "\n```", want: obj},
		{name: "cerca con otra etiqueta", input: "```javascript\n" + obj + "\n```", want: obj},
		{name: "cerca en una sola línea", input: "```" + obj + "```", want: obj},
		{name: "etiqueta y cuerpo en una línea", input: "```json " + obj + "```", want: obj},
		{name: "etiqueta pegada al cuerpo", input: "```json" + obj + "```", want: obj},
		{name: "etiqueta en línea con cuerpo multilínea", input: "```json {\"a\": 1,\n\"b\": 2}\n```", want: "{\"a\": 1,\n\"b\": 2}"},
		{name: "sin cerca de cierre", input: "```json\n" + obj, want: obj},
		{name: "espacios alrededor de la cerca", input: "  ```json\n" + obj + "\n```  ", want: obj},
		{name: "solo etiqueta", input: "```json", want: ""},
		{name: "vacío", input: "", want: ""},
		{name: "texto libre", input: "não sei", want: "não sei"},
		{name: "lista en una línea", input: "```json [1, 2]```", want: "[1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFence(tt.input))
		})
	}
}

func TestStripFence_PrimeraLineaNoEsEtiqueta(t *testing.T) {
	// La primera línea contiene JSON: no debe descartarse como etiqueta.
	in := "```{\"a\": 1,\n\"b\": 2}\n```"
	assert.Equal(t, "{\"a\": 1,\n\"b\": 2}", StripFence(in))
}
