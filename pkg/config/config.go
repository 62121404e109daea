package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Proveedores de LLM soportados.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se carga una sola vez al arrancar y no se modifica durante la vida del proceso.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Omie OmieConfig
	LLM  LLMConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string `validate:"required"` // development, staging, production
	Name     string `validate:"required"`
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OmieConfig credenciales y endpoint de la API de Omie.
type OmieConfig struct {
	BaseURL   string        `validate:"required,url"`
	AppKey    string        `validate:"required"`
	AppSecret string        `validate:"required"`
	Timeout   time.Duration `validate:"gt=0"` // timeout fijo por llamada HTTP
}

// LLMConfig configuración del proveedor de IA.
type LLMConfig struct {
	Provider        string        `validate:"oneof=gemini anthropic"`
	Timeout         time.Duration `validate:"gt=0"` // timeout por ida y vuelta al modelo
	GoogleAPIKey    string        `validate:"required_if=Provider gemini"`
	GeminiModel     string        `validate:"required_if=Provider gemini"`
	AnthropicAPIKey string        `validate:"required_if=Provider anthropic"`
	AnthropicModel  string        `validate:"required_if=Provider anthropic"`
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: OMIE_APP_KEY, OMIE_APP_SECRET, GOOGLE_API_KEY, etc.
// Falla si falta alguna clave obligatoria.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye y valida la configuración a partir de una instancia de Viper ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "omie-pedidos-ia"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Omie: OmieConfig{
			BaseURL:   strings.TrimRight(getString(v, "OMIE_API_BASE_URL", "https://app.omie.com.br/api/v1"), "/"),
			AppKey:    getString(v, "OMIE_APP_KEY", ""),
			AppSecret: getString(v, "OMIE_APP_SECRET", ""),
			Timeout:   getDuration(v, "OMIE_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getString(v, "LLM_PROVIDER", ProviderGemini)),
			Timeout:         getDuration(v, "LLM_TIMEOUT", 30*time.Second),
			GoogleAPIKey:    getString(v, "GOOGLE_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-2.5-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate comprueba las reglas declaradas en las etiquetas `validate`.
// El error lista todos los campos inválidos, no solo el primero.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("config: valores inválidos o ausentes: %s", strings.Join(msgs, ", "))
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d := v.GetDuration(key); d > 0 {
			return d
		}
	}
	return def
}
