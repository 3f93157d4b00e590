package context

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNotInContext - error you get when you ask for something not in the context
	ErrNotInContext = errors.New("failed to get value from context")
	// ErrValueWrongType - error you get when you ask for something and it is not the type you expected
	ErrValueWrongType = errors.New("context value of wrong type")
)

// GetLogger - return the logger value from the context if it exists
func GetLogger(ctx context.Context) (*zerolog.Logger, error) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return nil, ErrNotInContext
	}
	return logger, nil
}

// GetStringFromContext - given a CTXKey return the string value from the context if it exists
func GetStringFromContext(ctx context.Context, key CTXKey) (string, error) {
	v := ctx.Value(key)
	if v == nil {
		return "", ErrNotInContext
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrValueWrongType
	}
	return s, nil
}

// GetLogLevelFromContext - given a CTXKey return the log level from the context if it exists
func GetLogLevelFromContext(ctx context.Context, key CTXKey) (zerolog.Level, error) {
	v := ctx.Value(key)
	if v == nil {
		// default to info level
		return zerolog.InfoLevel, ErrNotInContext
	}
	l, ok := v.(zerolog.Level)
	if !ok {
		return zerolog.InfoLevel, ErrValueWrongType
	}
	return l, nil
}

// GetBoolFromContext - given a CTXKey return the bool value from the context if it exists
func GetBoolFromContext(ctx context.Context, key CTXKey) (bool, error) {
	v := ctx.Value(key)
	if v == nil {
		return false, ErrNotInContext
	}
	b, ok := v.(bool)
	if !ok {
		return false, ErrValueWrongType
	}
	return b, nil
}
