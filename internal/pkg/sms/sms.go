package sms

import (
	"context"
	"io"
)

// Message represents a text message payload.
type Message struct {
	// To is the recipient phone number.
	To string
	// Body is the message text.
	Body string
}

// SMS abstracts a text message provider.
type SMS interface {
	io.Closer
	// Send dispatches the given message using the underlying provider.
	Send(ctx context.Context, msg Message) error
}
