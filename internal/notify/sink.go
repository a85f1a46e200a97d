package notify

import (
	"context"

	"github.com/google/uuid"

	"keymarket/pkg/logger"
)

// PurchaseActivatedEvent carries the revealed xpub to the client. The
// engines emit it at most once per activation; the sink itself is
// fire-and-forget.
type PurchaseActivatedEvent struct {
	PurchaseID uuid.UUID
	ClientID   uuid.UUID
	ServiceID  uuid.UUID
	Xpub       string
}

type SignatureFinalizedEvent struct {
	RequestID  uuid.UUID
	ClientID   uuid.UUID
	ServiceID  uuid.UUID
	SignedPsbt string
}

type Sink interface {
	PurchaseActivated(ctx context.Context, event PurchaseActivatedEvent) error
	SignatureFinalized(ctx context.Context, event SignatureFinalizedEvent) error
}

// LogSink is the default delivery collaborator: it records the event and
// leaves actual transport (email, webhook, push) to deployment glue. It
// never logs key material.
type LogSink struct {
	logger logger.Logger
}

var _ Sink = (*LogSink)(nil)

func NewLogSink(logger logger.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) PurchaseActivated(ctx context.Context, event PurchaseActivatedEvent) error {
	s.logger.Info("purchase activated",
		"purchase_id", event.PurchaseID,
		"client_id", event.ClientID,
		"service_id", event.ServiceID,
	)
	return nil
}

func (s *LogSink) SignatureFinalized(ctx context.Context, event SignatureFinalizedEvent) error {
	s.logger.Info("signature finalized",
		"request_id", event.RequestID,
		"client_id", event.ClientID,
		"service_id", event.ServiceID,
	)
	return nil
}
