package kafka

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/Ramsey-B/fern/pkg/models"
)

// Header keys carried on snapshot and event messages
const (
	HeaderUserID        = "user_id"
	HeaderSnapshotID    = "snapshot_id"
	HeaderEventType     = "event_type"
	HeaderSchemaVersion = "schema_version"
)

// IncomingMessage wraps a raw Kafka message with parsed headers
type IncomingMessage struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Partition int
	Offset    int64
	Timestamp time.Time
	Topic     string

	// Parsed content
	Snapshot *models.SnapshotMessage
}

// ParseSnapshot decodes the message value as a bureau snapshot
func (m *IncomingMessage) ParseSnapshot() error {
	var msg models.SnapshotMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return errors.Wrap(err, "failed to decode snapshot message")
	}

	if msg.UserID == "" {
		msg.UserID = m.GetUserID()
	}
	if msg.SnapshotID == "" {
		msg.SnapshotID = m.Headers[HeaderSnapshotID]
	}

	switch msg.Kind {
	case models.SnapshotKindAccounts, models.SnapshotKindInquiries:
	default:
		return errors.Errorf("unsupported snapshot kind %q", msg.Kind)
	}

	m.Snapshot = &msg
	return nil
}

// GetUserID returns the user the message belongs to. The parsed snapshot wins,
// then the user_id header, then the message key.
func (m *IncomingMessage) GetUserID() string {
	if m.Snapshot != nil && m.Snapshot.UserID != "" {
		return m.Snapshot.UserID
	}
	if userID := m.Headers[HeaderUserID]; userID != "" {
		return userID
	}
	return m.Key
}
