// Package logging builds the service logger
package logging

import (
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options controls logger construction
type Options struct {
	Level   string
	Pretty  bool
	AppName string
}

// New returns an ectologger backed by zap. Pretty selects the human readable
// development encoder.
func New(opts Options) (ectologger.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if opts.Pretty {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if opts.Level != "" {
		level, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
		zapCfg.Level = level
	}

	if opts.AppName != "" {
		zapCfg.InitialFields = map[string]any{"app": opts.AppName}
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build zap logger")
	}

	return zapadapter.NewZapEctoLogger(zapLogger, nil), nil
}

// Discard returns a logger that drops every message
func Discard() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}
