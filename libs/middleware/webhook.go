package middleware

import (
	"bytes"
	"io/ioutil"
	"net/http"

	"github.com/nofrixion/moneymoov-go/libs/handlers"
	"github.com/nofrixion/moneymoov-go/libs/logging"
	"github.com/nofrixion/moneymoov-go/libs/requestutils"
	"github.com/nofrixion/moneymoov-go/libs/webhook"
)

// VerifyWebhookSignature is a middleware that authenticates an inbound webhook
// by recomputing the HMAC over the received raw body bytes. The body must be
// the exact byte sequence that was signed, no re-parsing happens before the
// comparison.
func VerifyWebhookSignature(cfg webhook.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.Logger(ctx, "middleware.VerifyWebhookSignature")

			signature := r.Header.Get(cfg.Header)
			if signature == "" {
				ae := handlers.AppError{
					Cause:   errMissingSignature,
					Message: "webhook must be signed",
					Code:    http.StatusUnauthorized,
				}
				ae.ServeHTTP(w, r)
				return
			}

			body, err := requestutils.Read(ctx, r.Body)
			if err != nil {
				logger.Error().Err(err).Msg("failed to read webhook body")
				ae := handlers.AppError{
					Cause:   err,
					Message: "failed to read webhook body",
					Code:    http.StatusBadRequest,
				}
				ae.ServeHTTP(w, r)
				return
			}
			r.Body = ioutil.NopCloser(bytes.NewBuffer(body))

			if !cfg.Verify(body, signature) {
				logger.Warn().Msg("webhook signature verification failure")
				ae := handlers.AppError{
					Cause:   errInvalidSignature,
					Message: "webhook signature verification failure",
					Code:    http.StatusUnauthorized,
				}
				ae.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
