package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnthropicTest(t *testing.T, status int, body string) (*AnthropicService, *anthropicRequest, *http.Header) {
	t.Helper()
	var got anthropicRequest
	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, anthropicMessages, r.URL.Path)
		headers = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewAnthropicService("sk-test", "claude-test", WithAnthropicBaseURL(srv.URL)), &got, &headers
}

func TestAnthropic_GenerateText(t *testing.T) {
	svc, req, headers := newAnthropicTest(t, http.StatusOK,
		`{"content": [{"type": "text", "text": "Foram 3 pedidos."}]}`)

	text, err := svc.GenerateText(context.Background(), "quantos pedidos?")
	require.NoError(t, err)

	assert.Equal(t, "Foram 3 pedidos.", text)
	assert.Equal(t, "claude-test", req.Model)
	assert.Empty(t, req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "quantos pedidos?", req.Messages[0].Content)
	assert.Equal(t, "sk-test", headers.Get("x-api-key"))
	assert.Equal(t, anthropicVersion, headers.Get("anthropic-version"))
}

func TestAnthropic_GenerateJSONExtraeObjeto(t *testing.T) {
	svc, req, _ := newAnthropicTest(t, http.StatusOK,
		`{"content": [{"type": "text", "text": "Aqui está:\n{\"sobre_pedidos\": true}\nPronto."}]}`)

	text, err := svc.GenerateJSON(context.Background(), "analise")
	require.NoError(t, err)

	assert.JSONEq(t, `{"sobre_pedidos": true}`, text)
	assert.Equal(t, anthropicJSONSystem, req.System)
}

func TestAnthropic_ErrorDeAPI(t *testing.T) {
	svc, _, _ := newAnthropicTest(t, http.StatusUnauthorized,
		`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`)

	_, err := svc.GenerateText(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
	assert.Contains(t, err.Error(), "invalid x-api-key")
}

func TestAnthropic_RespuestaVacia(t *testing.T) {
	svc, _, _ := newAnthropicTest(t, http.StatusOK, `{"content": []}`)

	_, err := svc.GenerateText(context.Background(), "x")
	assert.ErrorContains(t, err, "vacía")
}

func TestAnthropic_SinAPIKey(t *testing.T) {
	_, err := NewAnthropicService("", "m").GenerateText(context.Background(), "x")
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{`{"a": 1}`, `{"a": 1}`},
		{"Resposta: {\"a\": {\"b\": 2}} fim", `{"a": {"b": 2}}`},
		{"sem json", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractJSON(tt.in), tt.in)
	}
}
