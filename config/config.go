package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	AppName                       string   `mapstructure:"app_name"`
	Port                          int      `mapstructure:"port"`
	LogLevel                      string   `mapstructure:"log_level"`
	PrettyLogs                    bool     `mapstructure:"pretty_logs"`
	HttpServerWriteTimeoutSeconds int      `mapstructure:"http_server_write_timeout_seconds"`
	HttpServerReadTimeoutSeconds  int      `mapstructure:"http_server_read_timeout_seconds"`
	HttpServerIdleTimeoutSeconds  int      `mapstructure:"http_server_idle_timeout_seconds"`
	MaxHeaderBytes                int      `mapstructure:"http_server_max_header_bytes"`
	ReadHeaderTimeoutSeconds      int      `mapstructure:"http_server_read_header_timeout_seconds"`
	AllowOrigins                  []string `mapstructure:"http_server_allow_origins"`
	AllowMethods                  []string `mapstructure:"http_server_allow_methods"`
	StartupMaxAttempts            int      `mapstructure:"startup_max_attempts"`

	// Kafka Consumer (bureau snapshots)
	KafkaBrokers         []string `mapstructure:"kafka_brokers"`
	KafkaInputTopic      string   `mapstructure:"kafka_input_topic"`
	KafkaConsumerGroup   string   `mapstructure:"kafka_consumer_group"`
	KafkaConsumerEnabled bool     `mapstructure:"kafka_consumer_enabled"`

	// Kafka Producer settings
	KafkaOutputTopic  string `mapstructure:"kafka_output_topic"`
	KafkaBatchSize    int    `mapstructure:"kafka_batch_size"`
	KafkaBatchTimeout int    `mapstructure:"kafka_batch_timeout_ms"`
	KafkaRequiredAcks int    `mapstructure:"kafka_required_acks"`
	KafkaCompression  string `mapstructure:"kafka_compression"`

	// Tracing
	TracingExporter    string  `mapstructure:"tracing_exporter"`
	TracingSampleRatio float64 `mapstructure:"tracing_sample_ratio"`
	OTLPEndpoint       string  `mapstructure:"otlp_endpoint"`
	OTLPProtocol       string  `mapstructure:"otlp_protocol"`
	OTLPInsecure       bool    `mapstructure:"otlp_insecure"`

	// Reconciliation
	WalletLinkingEnabled bool `mapstructure:"wallet_linking_enabled"`
}

var defaults = map[string]any{
	"app_name":                                "fern",
	"port":                                    3004,
	"log_level":                               "info",
	"pretty_logs":                             false,
	"http_server_write_timeout_seconds":       10,
	"http_server_read_timeout_seconds":        10,
	"http_server_idle_timeout_seconds":        10,
	"http_server_max_header_bytes":            64000, // 64KB
	"http_server_read_header_timeout_seconds": 10,
	"http_server_allow_origins":               "*",
	"http_server_allow_methods":               "GET,POST",
	"startup_max_attempts":                    5,

	"kafka_brokers":          "localhost:9092",
	"kafka_input_topic":      "bureau-snapshots",
	"kafka_consumer_group":   "fern-consumer",
	"kafka_consumer_enabled": false,

	"kafka_output_topic":     "reconciliation-events",
	"kafka_batch_size":       100,
	"kafka_batch_timeout_ms": 100,
	"kafka_required_acks":    1,
	"kafka_compression":      "snappy",

	"tracing_exporter":     "none",
	"tracing_sample_ratio": 1.0,
	"otlp_endpoint":        "localhost:4317",
	"otlp_protocol":        "grpc",
	"otlp_insecure":        true,

	"wallet_linking_enabled": true,
}

// Load reads a .env file when one is present, then resolves every key from
// the environment falling back to defaults.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "failed to load env file %s", file)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.KafkaBrokers = splitList(cfg.KafkaBrokers)
	cfg.AllowOrigins = splitList(cfg.AllowOrigins)
	cfg.AllowMethods = splitList(cfg.AllowMethods)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid PORT %d", c.Port)
	}
	if c.KafkaConsumerEnabled && len(c.KafkaBrokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when the consumer is enabled")
	}
	switch c.TracingExporter {
	case "none", "log", "otlp":
	default:
		return errors.Errorf("invalid TRACING_EXPORTER %q", c.TracingExporter)
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		return errors.Errorf("invalid TRACING_SAMPLE_RATIO %v", c.TracingSampleRatio)
	}
	return nil
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.HttpServerWriteTimeoutSeconds) * time.Second
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.HttpServerReadTimeoutSeconds) * time.Second
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.HttpServerIdleTimeoutSeconds) * time.Second
}

func (c *Config) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}

func (c *Config) KafkaBatchTimeoutDuration() time.Duration {
	return time.Duration(c.KafkaBatchTimeout) * time.Millisecond
}

// splitList flattens comma separated entries and drops blanks
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
