package omie

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.OmieConfig{
		BaseURL:   srv.URL + "/api/v1",
		AppKey:    "app-key",
		AppSecret: "app-secret",
		Timeout:   2 * time.Second,
	}, nil)
}

func upstreamErr(t *testing.T, err error) *domain.UpstreamError {
	t.Helper()
	var ue *domain.UpstreamError
	require.True(t, errors.As(err, &ue), "el error debe ser *domain.UpstreamError, fue %T", err)
	return ue
}

func TestInvoke_EnviaCredencialesYParametros(t *testing.T) {
	var gotPath string
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"pagina": 1}`))
	})

	raw, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes", map[string]any{"pagina": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pagina": 1}`, string(raw))

	assert.Equal(t, "/api/v1/geral/clientes/", gotPath)
	assert.Equal(t, "ListarClientes", got["call"])
	assert.Equal(t, "app-key", got["app_key"])
	assert.Equal(t, "app-secret", got["app_secret"])
	assert.Equal(t, []any{map[string]any{"pagina": float64(1)}}, got["param"])
}

func TestInvoke_SinParametrosEnviaListaVacia(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	require.NoError(t, err)
	assert.Equal(t, []any{}, got["param"])
}

func TestInvoke_FaultEnRespuesta200(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"faultstring": "ERROR: Chave de acesso inválida", "faultcode": "SOAP-ENV:Client-100"}`))
	})

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	ue := upstreamErr(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamFault)
	assert.Equal(t, http.StatusOK, ue.StatusCode)
	assert.Equal(t, "ERROR: Chave de acesso inválida", ue.Message)
}

func TestInvoke_FaultSoloConCodigo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"faultcode": "SOAP-ENV:Server"}`))
	})

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	ue := upstreamErr(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamFault)
	assert.Equal(t, UnknownFaultMessage, ue.Message)
}

func TestInvoke_FaultVacioNoEsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"faultstring": "", "faultcode": null, "pagina": 1}`))
	})

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	assert.NoError(t, err)
}

func TestInvoke_EstadoHTTPDeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"faultstring": "Não existem registros para a página [1]!"}`))
	})

	_, err := client.Invoke(context.Background(), "/produtos/pedido/", "ListarPedidos")
	ue := upstreamErr(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamHTTP)
	assert.Equal(t, http.StatusInternalServerError, ue.StatusCode)
	assert.Contains(t, ue.Message, "Não existem registros")
}

func TestInvoke_CuerpoNoJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	})

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	ue := upstreamErr(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamDecode)
	assert.Equal(t, http.StatusOK, ue.StatusCode)
	assert.Equal(t, DecodeFailureMessage, ue.Message)
}

func TestInvoke_FalloDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := srv.URL
	srv.Close() // nadie escucha

	client := NewClient(config.OmieConfig{BaseURL: baseURL, AppKey: "k", AppSecret: "s", Timeout: time.Second}, nil)

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	ue := upstreamErr(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamTransport)
	assert.Zero(t, ue.StatusCode)
	assert.NotEmpty(t, ue.Message)
}

func TestInvoke_TimeoutFijo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(config.OmieConfig{BaseURL: srv.URL, AppKey: "k", AppSecret: "s", Timeout: 50 * time.Millisecond}, nil)

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	assert.ErrorIs(t, err, domain.ErrUpstreamTransport)
}

func TestInvoke_SinReintentos(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Invoke(context.Background(), "/geral/clientes/", "ListarClientes")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
