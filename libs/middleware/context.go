package middleware

import (
	"context"
	"errors"

	appctx "github.com/nofrixion/moneymoov-go/libs/context"
)

// AddKeyID associates the verified signing key id with the request context
func AddKeyID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, appctx.SigningKeyIDCTXKey, id)
}

// GetKeyID retrieves the signing keyID from the context
func GetKeyID(ctx context.Context) (string, error) {
	keyID, ok := ctx.Value(appctx.SigningKeyIDCTXKey).(string)
	if !ok {
		return "", errors.New("keyID was missing from context")
	}
	return keyID, nil
}
