package sms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGatewaySend(t *testing.T) {
	var got gatewayRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(gatewayResponse{Success: true})
	}))
	defer srv.Close()

	g, err := NewGateway(GatewayConfig{URL: srv.URL, APIKey: "key-1", Sender: "HamroKart"})
	require.NoError(t, err)
	defer g.Close()

	err = g.Send(t.Context(), Message{To: "9841000001", Body: "Your code is 123456"})
	require.NoError(t, err)

	require.Equal(t, "Bearer key-1", gotAuth)
	require.Equal(t, "HamroKart", got.From)
	require.Equal(t, "9841000001", got.To)
	require.Equal(t, "Your code is 123456", got.Text)
}

func TestGatewaySendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(gatewayResponse{Success: false, Message: "invalid number"})
	}))
	defer srv.Close()

	g, err := NewGateway(GatewayConfig{URL: srv.URL})
	require.NoError(t, err)

	err = g.Send(t.Context(), Message{To: "9841000001", Body: "hi"})
	require.ErrorIs(t, err, ErrGatewayRejected)
	require.Contains(t, err.Error(), "invalid number")
}

func TestGatewaySendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g, err := NewGateway(GatewayConfig{URL: srv.URL})
	require.NoError(t, err)

	err = g.Send(t.Context(), Message{To: "9841000001", Body: "hi"})
	require.ErrorIs(t, err, ErrGatewayRejected)
}

func TestNewGatewayRequiresURL(t *testing.T) {
	_, err := NewGateway(GatewayConfig{})
	require.ErrorIs(t, err, ErrGatewayURLRequired)
}
