// Package omie implementa el acceso a la API de Omie (ERP) usada como directorio de
// clientes y fuente de pedidos de venta.
package omie

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain"
	"github.com/jhoicas/omie-pedidos-ia/pkg/config"
	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

const (
	// DecodeFailureMessage mensaje fijo para cuerpos que no son JSON.
	DecodeFailureMessage = "Falha ao decodificar a resposta da API Omie"
	// UnknownFaultMessage mensaje cuando el fault no trae faultstring.
	UnknownFaultMessage = "Erro desconhecido da Omie"
)

// Invoker ejecuta una operación de la API de Omie y devuelve el cuerpo JSON de éxito.
// Cualquier fallo llega como *domain.UpstreamError.
type Invoker interface {
	Invoke(ctx context.Context, endpoint, call string, params ...any) (json.RawMessage, error)
}

var _ Invoker = (*Client)(nil)

// Client cliente HTTP de la API de Omie. Cada llamada es at-most-once: no hay reintentos.
// Es seguro para uso concurrente.
type Client struct {
	http      *resty.Client
	appKey    string
	appSecret string
	log       *logger.Logger
}

// NewClient construye el cliente con el timeout fijo por llamada de la configuración.
func NewClient(cfg config.OmieConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{
		http:      httpClient,
		appKey:    cfg.AppKey,
		appSecret: cfg.AppSecret,
		log:       log.Child("component", "omie"),
	}
}

// request cuerpo de toda llamada a Omie.
type request struct {
	Call      string `json:"call"`
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret"`
	Param     []any  `json:"param"`
}

// Invoke hace POST {call, app_key, app_secret, param} contra endpoint (p. ej. "/geral/clientes/").
//
// Clasificación de errores:
//   - sin respuesta HTTP            → ErrUpstreamTransport, StatusCode 0
//   - estado no 2xx                 → ErrUpstreamHTTP, cuerpo como mensaje
//   - cuerpo no JSON                → ErrUpstreamDecode, mensaje fijo
//   - faultstring/faultcode en 2xx  → ErrUpstreamFault
func (c *Client) Invoke(ctx context.Context, endpoint, call string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	payload := request{
		Call:      call,
		AppKey:    c.appKey,
		AppSecret: c.appSecret,
		Param:     params,
	}

	c.log.Debug().Str("call", call).Str("endpoint", endpoint).Msg("llamando API Omie")

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		c.log.Error().Err(err).Str("call", call).Msg("error de transporte con Omie")
		msg := err.Error()
		if ctx.Err() != nil {
			msg = "timeout o cancelación: " + ctx.Err().Error()
		}
		return nil, &domain.UpstreamError{Kind: domain.ErrUpstreamTransport, Message: msg, Cause: err}
	}

	body := resp.Body()
	status := resp.StatusCode()

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		c.log.Error().Int("status", status).Str("call", call).Str("body", string(body)).Msg("estado HTTP de error en Omie")
		return nil, &domain.UpstreamError{Kind: domain.ErrUpstreamHTTP, StatusCode: status, Message: string(body)}
	}

	if !gjson.ValidBytes(body) {
		c.log.Error().Int("status", status).Str("call", call).Str("body", string(body)).Msg("respuesta de Omie no es JSON")
		return nil, &domain.UpstreamError{
			Kind:       domain.ErrUpstreamDecode,
			StatusCode: status,
			Message:    DecodeFailureMessage,
			Cause:      errors.New("cuerpo JSON inválido"),
		}
	}

	// Omie puede señalar errores dentro de un 200.
	if fault, ok := detectFault(body); ok {
		c.log.Error().Int("status", status).Str("call", call).Str("fault", fault).Msg("fault en respuesta de Omie")
		return nil, &domain.UpstreamError{Kind: domain.ErrUpstreamFault, StatusCode: status, Message: fault}
	}

	return json.RawMessage(body), nil
}

// detectFault devuelve el mensaje del fault si el cuerpo trae faultstring o faultcode no vacíos.
func detectFault(body []byte) (string, bool) {
	res := gjson.GetManyBytes(body, "faultstring", "faultcode")
	faultString, faultCode := res[0], res[1]
	if !truthy(faultString) && !truthy(faultCode) {
		return "", false
	}
	if faultString.Exists() && faultString.String() != "" {
		return faultString.String(), true
	}
	return UnknownFaultMessage, true
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return r.Exists()
	}
}
