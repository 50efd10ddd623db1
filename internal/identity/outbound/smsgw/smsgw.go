package smsgw

import (
	"context"
	"strconv"

	"github.com/hamrokart/identity/internal/pkg/instrument"
	"github.com/hamrokart/identity/internal/pkg/sms"
	"go.opentelemetry.io/otel/codes"
)

// Gateway adapts the sms package to the reset-code delivery the use cases need.
type Gateway struct {
	sender sms.SMS
	ins    instrument.Instrumentation
}

func NewGateway(sender sms.SMS, ins instrument.Instrumentation) *Gateway {
	return &Gateway{sender: sender, ins: ins}
}

// SendResetCode delivers a password reset code to the given phone number.
func (g *Gateway) SendResetCode(ctx context.Context, phone string, code int64) error {
	ctx, span := g.ins.Tracer("identity.outbound.smsgw").Start(ctx, "SendResetCode")
	defer span.End()

	msg := sms.Message{
		To:   phone,
		Body: "Your HamroKart password reset code is " + strconv.FormatInt(code, 10),
	}

	if err := g.sender.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
