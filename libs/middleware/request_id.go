package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/google/uuid"
	"github.com/nofrixion/moneymoov-go/libs/requestutils"
)

// RequestIDTransfer transfers the request id from header to context
func RequestIDTransfer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestutils.RequestIDHeaderKey)
		if reqID == "" {
			// generate one if one does not yet exist
			id := uuid.New()
			bytes := sha256.Sum256(id[:])
			reqID = hex.EncodeToString(bytes[:])[:16]
		}
		w.Header().Set(requestutils.RequestIDHeaderKey, reqID)
		ctx := context.WithValue(r.Context(), requestutils.RequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
