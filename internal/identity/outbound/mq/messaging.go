package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hamrokart/identity/internal/pkg/instrument"
	"github.com/hamrokart/identity/internal/pkg/messaging"
	"github.com/hamrokart/identity/internal/shared/event"
	"go.opentelemetry.io/otel/codes"

	"github.com/hamrokart/identity/internal/identity/usecase"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishUserRegistered(ctx context.Context, msg usecase.UserRegisteredEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishUserRegistered")
	defer span.End()

	body, err := json.Marshal(event.UserRegisteredMessage{
		UserID:    msg.UserID,
		Email:     msg.Email,
		FullName:  msg.FullName,
		Phone:     msg.Phone,
		IsAdmin:   msg.IsAdmin,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.UserRegisteredDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (m *Messaging) PublishPasswordReset(ctx context.Context, msg usecase.PasswordResetEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishPasswordReset")
	defer span.End()

	body, err := json.Marshal(event.PasswordResetMessage{
		UserID:  msg.UserID,
		Email:   msg.Email,
		Phone:   msg.Phone,
		ResetAt: msg.ResetAt.Format(time.RFC3339),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.PasswordResetDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
