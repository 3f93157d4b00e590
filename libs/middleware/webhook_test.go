package middleware

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nofrixion/moneymoov-go/libs/webhook"
)

func TestVerifyWebhookSignature(t *testing.T) {
	cfg := webhook.NewConfig([]byte("endpoint-secret"))
	payload := []byte(`{"eventType":"payin","amount":"10.00"}`)

	var seenBody []byte
	handler := VerifyWebhookSignature(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenBody, _ = ioutil.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("POST", "/webhooks/payin", bytes.NewReader(payload))
	r.Header.Set(cfg.Header, cfg.Sign(payload))

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusOK, rw.Code)
	// the body must be replayable by the downstream handler
	assert.Equal(t, payload, seenBody)
}

func TestVerifyWebhookSignatureRejectsMutatedBody(t *testing.T) {
	cfg := webhook.NewConfig([]byte("endpoint-secret"))
	payload := []byte(`{"eventType":"payin"}`)

	handler := VerifyWebhookSignature(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	r := httptest.NewRequest("POST", "/webhooks/payin", bytes.NewReader([]byte(`{"eventType": "payin"}`)))
	r.Header.Set(cfg.Header, cfg.Sign(payload))

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestVerifyWebhookSignatureRejectsUnsigned(t *testing.T) {
	cfg := webhook.NewConfig([]byte("endpoint-secret"))

	handler := VerifyWebhookSignature(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	r := httptest.NewRequest("POST", "/webhooks/payin", bytes.NewReader([]byte("{}")))
	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusUnauthorized, rw.Code)
}
