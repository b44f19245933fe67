package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Upstream struct {
	BaseURL string        `default:"http://delivery-backend:8080" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

type Cache struct {
	ListTTL        time.Duration `default:"30s" envconfig:"LIST_TTL"`
	DetailTTL      time.Duration `default:"30s" envconfig:"DETAIL_TTL"`
	StatsTTL       time.Duration `default:"15s" envconfig:"STATS_TTL"`
	KitchensTTL    time.Duration `default:"5m" envconfig:"KITCHENS_TTL"`
	ThrottleWindow time.Duration `default:"500ms" envconfig:"THROTTLE_WINDOW"`
}

type Session struct {
	DefaultRole string `default:"KITCHEN_STAFF" envconfig:"DEFAULT_ROLE"`
}

type Kafka struct {
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"order-status-events" envconfig:"TOPIC"`
	GroupID        string        `default:"ops-console" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"ops-console" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP     HTTP
	Upstream Upstream
	Cache    Cache
	Session  Session
	Kafka    Kafka
	Tracing  Tracing
	Logger   Logger
}

// Load — конфигурация процесса из окружения с префиксом CONSOLE.
func Load() (Config, error) {
	return LoadWithPrefix("CONSOLE")
}

// LoadWithPrefix — то же с произвольным префиксом (для тестов).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
