package tracing

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
)

const (
	ExporterNone = "none"
	ExporterLog  = "log"
	ExporterOTLP = "otlp"
)

// Config selects where spans go
type Config struct {
	ServiceName string
	Exporter    string
	SampleRatio float64
	OTLP        exporters.OTLPConfig
}

// Provider owns the SDK tracer provider for the lifetime of the process
type Provider struct {
	cfg      Config
	logger   ectologger.Logger
	provider *sdktrace.TracerProvider
}

// NewProvider creates a provider. Nothing is exported until Start is called.
func NewProvider(cfg Config, logger ectologger.Logger) *Provider {
	return &Provider{cfg: cfg, logger: logger}
}

func (p *Provider) GetName() string {
	return "tracing"
}

func (p *Provider) DependsOn() []string {
	return nil
}

// Start builds the exporter and installs the global tracer
func (p *Provider) Start(ctx context.Context) error {
	if p.cfg.Exporter == "" || p.cfg.Exporter == ExporterNone {
		p.logger.WithContext(ctx).Info("Tracing disabled")
		return nil
	}

	exporter, err := p.newExporter(ctx)
	if err != nil {
		return err
	}

	ratio := p.cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	p.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", p.cfg.ServiceName))),
	)

	otel.SetTracerProvider(p.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	SetTracer(p.provider.Tracer(p.cfg.ServiceName))

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"exporter":     p.cfg.Exporter,
		"sample_ratio": ratio,
	}).Info("Tracing started")
	return nil
}

// Stop flushes pending spans
func (p *Provider) Stop(ctx context.Context) error {
	if p.provider == nil {
		return nil
	}
	SetTracer(nil)
	return p.provider.Shutdown(ctx)
}

func (p *Provider) newExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	switch p.cfg.Exporter {
	case ExporterLog:
		return exporters.NewLogExporter(p.logger), nil
	case ExporterOTLP:
		return exporters.NewOTLPExporter(ctx, p.cfg.OTLP)
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s (use 'none', 'log' or 'otlp')", p.cfg.Exporter)
	}
}
