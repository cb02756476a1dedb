package processor

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/internal/services/reconciliation"
	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/models"
)

type emitted struct {
	kind       string
	userID     string
	snapshotID string
	groups     int
}

type fakeEmitter struct {
	events []emitted
	err    error
}

func (e *fakeEmitter) EmitAccountsReconciled(_ context.Context, userID, snapshotID string, result reconciliation.AccountsResult) error {
	if e.err != nil {
		return e.err
	}
	e.events = append(e.events, emitted{kind: "accounts", userID: userID, snapshotID: snapshotID, groups: len(result.Groups)})
	return nil
}

func (e *fakeEmitter) EmitInquiriesGrouped(_ context.Context, userID, snapshotID string, result reconciliation.InquiriesResult) error {
	if e.err != nil {
		return e.err
	}
	e.events = append(e.events, emitted{kind: "inquiries", userID: userID, snapshotID: snapshotID, groups: len(result.Groups)})
	return nil
}

func newTestProcessor(emitter *fakeEmitter) *Processor {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	svc := reconciliation.NewService(logger, reconciliation.Options{Source: "kafka"})
	return NewProcessor(svc, emitter, logger)
}

func TestHandleMessage_Accounts(t *testing.T) {
	emitter := &fakeEmitter{}
	p := newTestProcessor(emitter)

	msg := &kafka.IncomingMessage{Snapshot: &models.SnapshotMessage{
		UserID:     "user-1",
		SnapshotID: "snap-1",
		Kind:       models.SnapshotKindAccounts,
		Accounts: []models.AccountRecord{
			{ID: "eq-1", Bureau: models.BureauEquifax, CreditorName: models.StringPtr("CHASE"), DateOpened: models.StringPtr("2020-01-01"), Status: models.AccountStatusOpen},
			{ID: "ex-1", Bureau: models.BureauExperian, CreditorName: models.StringPtr("JPMCB CARD"), DateOpened: models.StringPtr("2020-01-01"), Status: models.AccountStatusOpen},
		},
	}}

	require.NoError(t, p.HandleMessage(context.Background(), msg))

	require.Len(t, emitter.events, 1)
	assert.Equal(t, emitted{kind: "accounts", userID: "user-1", snapshotID: "snap-1", groups: 1}, emitter.events[0])
}

func TestHandleMessage_Inquiries(t *testing.T) {
	emitter := &fakeEmitter{}
	p := newTestProcessor(emitter)

	msg := &kafka.IncomingMessage{Snapshot: &models.SnapshotMessage{
		UserID: "user-2",
		Kind:   models.SnapshotKindInquiries,
		Inquiries: []models.InquiryRecord{
			{ID: "eq-citi", Bureau: models.BureauEquifax, CompanyName: "CITIBANK", InquiryDate: "2024-03-01"},
			{ID: "ex-citi", Bureau: models.BureauExperian, CompanyName: "CITI CARDS", InquiryDate: "2024-03-04"},
		},
	}}

	require.NoError(t, p.HandleMessage(context.Background(), msg))

	require.Len(t, emitter.events, 1)
	assert.Equal(t, "inquiries", emitter.events[0].kind)
	assert.Equal(t, 1, emitter.events[0].groups)
}

func TestHandleMessage_InvalidSnapshotIsDropped(t *testing.T) {
	emitter := &fakeEmitter{}
	p := newTestProcessor(emitter)

	msg := &kafka.IncomingMessage{Snapshot: &models.SnapshotMessage{
		UserID:   "user-3",
		Kind:     models.SnapshotKindAccounts,
		Accounts: []models.AccountRecord{{ID: "x", Bureau: "innovis"}},
	}}

	assert.NoError(t, p.HandleMessage(context.Background(), msg))
	assert.Empty(t, emitter.events)
}

func TestHandleMessage_EmitFailureIsRetried(t *testing.T) {
	p := newTestProcessor(&fakeEmitter{err: errors.New("broker down")})

	msg := &kafka.IncomingMessage{Snapshot: &models.SnapshotMessage{UserID: "user-4", Kind: models.SnapshotKindInquiries}}

	assert.Error(t, p.HandleMessage(context.Background(), msg))
}

func TestHandleMessage_Unparsed(t *testing.T) {
	p := newTestProcessor(&fakeEmitter{})

	assert.Error(t, p.HandleMessage(context.Background(), &kafka.IncomingMessage{}))
}
