package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nofrixion/moneymoov-go/libs/handlers"
	"github.com/nofrixion/moneymoov-go/libs/httpsignature"
	"github.com/nofrixion/moneymoov-go/libs/logging"
)

var (
	errMissingSignature = errors.New("missing signature")
	errInvalidSignature = errors.New("invalid signature")
	errInvalidHeader    = errors.New("invalid http header")
)

// SignedOnly is a middleware that requires a request to carry a valid
// signature token. The shared secret and signature parameters are looked up
// via the keystore from the key id header, the nonce is read from the header
// matching the signature version.
func SignedOnly(ks httpsignature.Keystore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.Logger(ctx, "middleware.SignedOnly")

			token := r.Header.Get(httpsignature.SignatureHeader)
			if token == "" {
				logger.Warn().Msg("signature token missing from request")
				ae := handlers.AppError{
					Cause:   errMissingSignature,
					Message: "request must be signed",
					Code:    http.StatusUnauthorized,
				}
				ae.ServeHTTP(w, r)
				return
			}

			keyID := r.Header.Get(httpsignature.KeyIDHeader)
			ctx, key, params, err := ks.LookupKey(ctx, keyID)
			if err != nil {
				logger.Error().Err(err).Str("keyID", keyID).Msg("failed to lookup signing key")
				ae := handlers.AppError{
					Cause:   errInvalidSignature,
					Message: "request signature verification failure",
					Code:    http.StatusUnauthorized,
				}
				ae.ServeHTTP(w, r)
				return
			}

			// an explicit version header overrides the keystore default
			if v := r.Header.Get(httpsignature.VersionHeader); v != "" {
				version, err := strconv.ParseUint(v, 10, 32)
				if err != nil {
					ae := handlers.AppError{
						Cause:   errInvalidHeader,
						Message: "invalid signature version header",
						Code:    http.StatusBadRequest,
					}
					ae.ServeHTTP(w, r)
					return
				}
				params.Version = uint(version)
			}

			nonceHeader := httpsignature.NonceHeader
			if params.Version >= 1 {
				nonceHeader = httpsignature.IdempotencyKeyHeader
			}
			nonce := r.Header.Get(nonceHeader)

			date, err := time.Parse(time.RFC1123, r.Header.Get(httpsignature.DateHeader))
			if err != nil {
				ae := handlers.AppError{
					Cause:   errInvalidHeader,
					Message: "invalid date header",
					Code:    http.StatusBadRequest,
				}
				ae.ServeHTTP(w, r)
				return
			}

			valid, err := httpsignature.Verify(*params, key, nonce, date, token)
			if err != nil || !valid {
				// do not leak which part mismatched
				logger.Warn().Str("keyID", keyID).Msg("request signature verification failure")
				ae := handlers.AppError{
					Cause:   errInvalidSignature,
					Message: "request signature verification failure",
					Code:    http.StatusUnauthorized,
				}
				ae.ServeHTTP(w, r)
				return
			}

			ctx = AddKeyID(ctx, params.KeyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
