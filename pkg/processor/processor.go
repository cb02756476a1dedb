// Package processor turns bureau snapshot messages into reconciliation events
package processor

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/pkg/errors"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Reconciler runs the reconciliation for a snapshot
type Reconciler interface {
	ReconcileAccounts(ctx context.Context, records []models.AccountRecord, cards []models.WalletCard) (reconciliation.AccountsResult, error)
	GroupInquiries(ctx context.Context, records []models.InquiryRecord, userGroups []models.UserInquiryGroup) (reconciliation.InquiriesResult, error)
}

// Emitter publishes reconciliation results
type Emitter interface {
	EmitAccountsReconciled(ctx context.Context, userID, snapshotID string, result reconciliation.AccountsResult) error
	EmitInquiriesGrouped(ctx context.Context, userID, snapshotID string, result reconciliation.InquiriesResult) error
}

// Processor handles snapshot messages from the consumer
type Processor struct {
	reconciler Reconciler
	emitter    Emitter
	logger     ectologger.Logger
}

func NewProcessor(reconciler Reconciler, emitter Emitter, logger ectologger.Logger) *Processor {
	return &Processor{
		reconciler: reconciler,
		emitter:    emitter,
		logger:     logger,
	}
}

// HandleMessage reconciles one snapshot and publishes the result. A returned
// error leaves the message uncommitted.
func (p *Processor) HandleMessage(ctx context.Context, msg *kafka.IncomingMessage) error {
	ctx, span := tracing.StartSpan(ctx, "processor.HandleMessage")
	defer span.End()

	if msg.Snapshot == nil {
		return errors.New("message has no parsed snapshot")
	}

	snapshot := msg.Snapshot
	userID := msg.GetUserID()
	log := p.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id":     userID,
		"snapshot_id": snapshot.SnapshotID,
		"kind":        snapshot.Kind,
	})

	switch snapshot.Kind {
	case models.SnapshotKindAccounts:
		result, err := p.reconciler.ReconcileAccounts(ctx, snapshot.Accounts, snapshot.WalletCards)
		if err != nil {
			// Invalid snapshots never succeed, so they are logged and dropped
			log.WithError(err).Warn("Dropping invalid account snapshot")
			return nil
		}
		if err := p.emitter.EmitAccountsReconciled(ctx, userID, snapshot.SnapshotID, result); err != nil {
			return errors.Wrap(err, "failed to emit accounts event")
		}
		log.WithField("groups", len(result.Groups)).Info("Processed account snapshot")

	case models.SnapshotKindInquiries:
		result, err := p.reconciler.GroupInquiries(ctx, snapshot.Inquiries, snapshot.UserGroups)
		if err != nil {
			log.WithError(err).Warn("Dropping invalid inquiry snapshot")
			return nil
		}
		if err := p.emitter.EmitInquiriesGrouped(ctx, userID, snapshot.SnapshotID, result); err != nil {
			return errors.Wrap(err, "failed to emit inquiries event")
		}
		log.WithField("groups", len(result.Groups)).Info("Processed inquiry snapshot")

	default:
		return errors.Errorf("unsupported snapshot kind %q", snapshot.Kind)
	}

	return nil
}
