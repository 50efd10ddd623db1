package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrGatewayURLRequired is returned when the gateway URL is missing.
	ErrGatewayURLRequired = errors.New("sms gateway url is required")
	// ErrGatewayRejected is returned when the gateway reports a failed delivery.
	ErrGatewayRejected = errors.New("sms gateway rejected the message")
)

// Gateway is an SMS implementation backed by a JSON-over-HTTP provider.
type Gateway struct {
	url    string
	apiKey string
	sender string
	client *http.Client
}

// GatewayConfig configures the HTTP gateway implementation.
type GatewayConfig struct {
	// URL is the gateway send endpoint.
	URL string
	// APIKey authenticates requests against the gateway.
	APIKey string
	// Sender is the sender ID attached to outgoing messages.
	Sender string
	// Timeout bounds each delivery attempt; defaults to 10 seconds.
	Timeout time.Duration
}

type gatewayRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Text string `json:"text"`
}

type gatewayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewGateway constructs an HTTP gateway SMS sender.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.URL == "" {
		return nil, ErrGatewayURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Gateway{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		sender: cfg.Sender,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Send delivers a message through the gateway.
func (g *Gateway) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(gatewayRequest{
		From: g.sender,
		To:   msg.To,
		Text: msg.Body,
	})
	if err != nil {
		return fmt.Errorf("sms: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms: send request: %w", err)
	}
	defer func() {
		//nolint:errcheck // nothing useful to do with a close error here
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
	}

	var out gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("sms: decode response: %w", err)
	}

	if !out.Success {
		if out.Message != "" {
			return fmt.Errorf("%w: %s", ErrGatewayRejected, out.Message)
		}
		return ErrGatewayRejected
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (g *Gateway) Close() error {
	g.client.CloseIdleConnections()
	return nil
}
