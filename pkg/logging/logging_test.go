package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, err := New(Options{Level: "debug", Pretty: true, AppName: "fern"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.WithField("component", "test").Debug("logger ready")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotNil(t, Discard())
}
