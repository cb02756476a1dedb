// Package events handles event emission for reconciliation results
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

const (
	EventAccountsReconciled = "accounts.reconciled"
	EventInquiriesGrouped   = "inquiries.grouped"
)

// Publisher delivers encoded events
type Publisher interface {
	PublishReconciliationEvent(ctx context.Context, event *kafka.ReconciliationEvent) error
}

// Emitter handles event emission for fern
type Emitter struct {
	publisher Publisher
	logger    ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(publisher Publisher, logger ectologger.Logger) *Emitter {
	return &Emitter{
		publisher: publisher,
		logger:    logger,
	}
}

// EmitAccountsReconciled emits the grouped tradelines and their summary
func (e *Emitter) EmitAccountsReconciled(ctx context.Context, userID, snapshotID string, result reconciliation.AccountsResult) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitAccountsReconciled")
	defer span.End()

	return e.emit(ctx, EventAccountsReconciled, userID, snapshotID, result)
}

// EmitInquiriesGrouped emits the inquiry groups for a snapshot
func (e *Emitter) EmitInquiriesGrouped(ctx context.Context, userID, snapshotID string, result reconciliation.InquiriesResult) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitInquiriesGrouped")
	defer span.End()

	return e.emit(ctx, EventInquiriesGrouped, userID, snapshotID, result)
}

func (e *Emitter) emit(ctx context.Context, eventType, userID, snapshotID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s payload", eventType)
	}

	event := &kafka.ReconciliationEvent{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		SchemaVersion: SchemaVersion,
		UserID:        userID,
		SnapshotID:    snapshotID,
		Data:          data,
	}

	if err := e.publisher.PublishReconciliationEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Errorf("Failed to emit %s event", eventType)
		return err
	}

	return nil
}
