package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/processor"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/server"
	"github.com/Ramsey-B/fern/pkg/startup"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
)

const shutdownTimeout = 15 * time.Second

// Version is set at build time
var Version = "dev"

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when enabled, the snapshot consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)
			boot.AddDependency(tracing.NewProvider(tracingConfig(cfg), logger))

			checker := health.NewChecker(Version)
			apiService := reconciliation.NewService(logger, reconciliation.Options{
				Source:        "api",
				WalletLinking: cfg.WalletLinkingEnabled,
			})
			boot.AddDependency(server.New(serverConfig(cfg), logger, apiService, checker))

			if cfg.KafkaConsumerEnabled {
				producer := kafka.NewProducer(kafka.ProducerConfig{
					Brokers:      cfg.KafkaBrokers,
					Topic:        cfg.KafkaOutputTopic,
					BatchSize:    cfg.KafkaBatchSize,
					BatchTimeout: cfg.KafkaBatchTimeoutDuration(),
					RequiredAcks: cfg.KafkaRequiredAcks,
					Compression:  cfg.KafkaCompression,
				}, logger)

				kafkaService := reconciliation.NewService(logger, reconciliation.Options{
					Source:        "kafka",
					WalletLinking: cfg.WalletLinkingEnabled,
				})
				handler := processor.NewProcessor(kafkaService, events.NewEmitter(producer, logger), logger)
				consumer := kafka.NewConsumer(kafka.ConsumerConfig{
					Brokers:       cfg.KafkaBrokers,
					Topic:         cfg.KafkaInputTopic,
					ConsumerGroup: cfg.KafkaConsumerGroup,
				}, logger, handler.HandleMessage)

				checker.AddProbe(consumer.GetName(), consumer)
				boot.AddDependency(producer)
				boot.AddDependency(&consumerDependency{Consumer: consumer})
			}

			if err := boot.Start(ctx); err != nil {
				return err
			}
			logger.WithField("port", cfg.Port).Info("fern is running")

			<-ctx.Done()
			logger.Info("Shutting down")

			stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			return boot.Stop(stopCtx)
		},
	}
}

// consumerDependency makes the consumer start after the producer it publishes through
type consumerDependency struct {
	*kafka.Consumer
}

func (d *consumerDependency) DependsOn() []string {
	return append(d.Consumer.DependsOn(), "kafka-producer")
}

func tracingConfig(cfg *config.Config) tracing.Config {
	otlp := exporters.DefaultOTLPConfig()
	otlp.Endpoint = cfg.OTLPEndpoint
	otlp.Protocol = cfg.OTLPProtocol
	otlp.Insecure = cfg.OTLPInsecure

	return tracing.Config{
		ServiceName: cfg.AppName,
		Exporter:    cfg.TracingExporter,
		SampleRatio: cfg.TracingSampleRatio,
		OTLP:        otlp,
	}
}

func serverConfig(cfg *config.Config) server.Config {
	return server.Config{
		ServiceName:       cfg.AppName,
		Port:              cfg.Port,
		ReadTimeout:       cfg.ReadTimeout(),
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       cfg.IdleTimeout(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
		AllowOrigins:      cfg.AllowOrigins,
		AllowMethods:      cfg.AllowMethods,
	}
}
