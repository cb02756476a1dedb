package exporters

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"

	defaultOTLPTimeout = 10 * time.Second
)

// OTLPConfig points the reconciliation spans at a collector
type OTLPConfig struct {
	Endpoint string
	Protocol string
	Insecure bool
	Headers  map[string]string
	Timeout  time.Duration
}

func DefaultOTLPConfig() OTLPConfig {
	return OTLPConfig{
		Endpoint: "localhost:4317",
		Protocol: ProtocolGRPC,
		Insecure: true,
		Timeout:  defaultOTLPTimeout,
	}
}

func (c OTLPConfig) normalize() (OTLPConfig, error) {
	if c.Endpoint == "" {
		return c, errors.New("OTLP endpoint is required")
	}
	if c.Protocol == "" {
		c.Protocol = ProtocolGRPC
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultOTLPTimeout
	}
	return c, nil
}

// NewOTLPExporter builds a gRPC or HTTP exporter for the configured collector
func NewOTLPExporter(ctx context.Context, config OTLPConfig) (*otlptrace.Exporter, error) {
	config, err := config.normalize()
	if err != nil {
		return nil, err
	}

	var exporter *otlptrace.Exporter
	switch config.Protocol {
	case ProtocolGRPC:
		exporter, err = otlptracegrpc.New(ctx, grpcOptions(config)...)
	case ProtocolHTTP:
		exporter, err = otlptracehttp.New(ctx, httpOptions(config)...)
	default:
		return nil, errors.Errorf("unsupported OTLP protocol %q", config.Protocol)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create OTLP %s exporter for %s", config.Protocol, config.Endpoint)
	}
	return exporter, nil
}

func grpcOptions(config OTLPConfig) []otlptracegrpc.Option {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(config.Endpoint),
		otlptracegrpc.WithTimeout(config.Timeout),
		otlptracegrpc.WithHeaders(config.Headers),
	}
	if config.Insecure {
		opts = append(opts,
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}
	return opts
}

func httpOptions(config OTLPConfig) []otlptracehttp.Option {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
		otlptracehttp.WithHeaders(config.Headers),
	}
	if config.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}
