package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliveryctx "marketplace/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookNotifier_Notify(t *testing.T) {
	beneficiaryID := uuid.New()

	var received webhookPayload
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get(deliveryctx.HeaderXRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second, discardLogger())

	ctx := deliveryctx.WithRequestID(context.Background(), "req-123")
	err := notifier.Notify(ctx, beneficiaryID, "You earned a commission of 15.00")

	require.NoError(t, err)
	assert.Equal(t, beneficiaryID.String(), received.BeneficiaryID)
	assert.Equal(t, "You earned a commission of 15.00", received.Message)
	assert.Equal(t, "req-123", requestIDHeader)
}

func TestWebhookNotifier_Notify_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second, discardLogger())

	err := notifier.Notify(context.Background(), uuid.New(), "message")

	assert.Error(t, err)
}

func TestWebhookNotifier_Notify_EndpointDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	notifier := NewWebhookNotifier(server.URL, 100*time.Millisecond, discardLogger())

	err := notifier.Notify(context.Background(), uuid.New(), "message")

	assert.Error(t, err)
}
