package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// analysisPrompt prompt de estructuración. %s es la pregunta del usuario.
const analysisPrompt = `Analise a seguinte pergunta de um usuário e extraia as seguintes informações:
1.  O CNPJ ou CPF do cliente (se fornecido, normalize para conter apenas dígitos).
2.  O Nome Fantasia do cliente (se fornecido).
3.  A Cidade do cliente (se fornecida).
4.  A pergunta específica que o usuário tem sobre os pedidos do cliente. Por exemplo, "qual o último produto comprado?", "quanto gastei no último pedido?", "quantas vezes comprei o produto X?".
5.  Avalie se a pergunta é de fato sobre pedidos de clientes.

Pergunta do Usuário: "%s"

Responda SOMENTE com um objeto JSON, sem texto adicional, neste formato:
{
  "cnpj_cpf": "valor_extraido_ou_null",
  "nome_fantasia": "valor_extraido_ou_null",
  "cidade": "valor_extraido_ou_null",
  "pergunta_especifica": "texto_da_pergunta_reformulada_ou_original",
  "sobre_pedidos": true_ou_false
}`

// answerPrompt prompt de respuesta final: pregunta original, pregunta interpretada y pedidos en JSON.
const answerPrompt = `Com base nos seguintes dados de pedidos de um cliente e na pergunta original do usuário,
formule uma resposta clara e concisa em linguagem natural.

Pergunta Original do Usuário: "%s"
Pergunta Específica Interpretada: "%s"
Dados dos Pedidos (JSON):
%s

Instruções para a Resposta:
-   Responda diretamente à pergunta específica do usuário.
-   Se a pergunta for sobre o "último pedido" ou "pedido mais recente", use o primeiro pedido da lista (os pedidos estão ordenados por numero_pedido de forma decrescente).
-   Se a pergunta envolver contagem de itens ou totais, calcule-os a partir dos dados.
-   Se os dados não forem suficientes para responder precisamente, informe isso de forma educada.
-   Seja objetivo e forneça a informação solicitada.
-   Apenas responda à pergunta, não adicione frases como "Espero que isso ajude!" ou saudações.`

func buildAnalysisPrompt(question string) string {
	return fmt.Sprintf(analysisPrompt, question)
}

func buildAnswerPrompt(question, subQuestion string, orders []entity.OrderSummary) (string, error) {
	data, err := ordersJSON(orders)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(answerPrompt, question, subQuestion, data), nil
}

// ordersJSON serializa los pedidos indentados y sin escapar caracteres HTML.
func ordersJSON(orders []entity.OrderSummary) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(orders); err != nil {
		return "", fmt.Errorf("serializar pedidos: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
