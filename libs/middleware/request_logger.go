package middleware

import (
	"fmt"
	"net/http"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/middleware"
	"github.com/nofrixion/moneymoov-go/libs/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

var ipPortRE = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){3}(:[0-9]+)?`)

// RequestLogger logs at the start and stop of incoming HTTP requests as well as recovers from panics
// Modified version of RequestLogger from github.com/rs/zerolog
func RequestLogger(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.URL.EscapedPath() == "/metrics" { // Skip logging prometheus metric scrapes
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now().UTC()
			// only need to get logger from context once per request
			logger := hlog.FromRequest(r)
			createSubLog(logger, r, 0).Msg("request started")

			defer func() {
				t2 := time.Now().UTC()

				// Recover and record stack traces in case of a panic
				if rec := recover(); rec != nil {
					logger.Error().Str("panic", fmt.Sprintf("%+v", rec)).Str("stacktrace", string(debug.Stack())).Msg("panic recovered")

					// any panic that has an ipaddress/port in it gets consolidated
					m := string(ipPortRE.ReplaceAll([]byte(fmt.Sprint(rec)), []byte("x.x.x.x:xxxx")))

					event := sentry.NewEvent()
					event.Message = m
					sentry.CaptureEvent(event)

					(&handlers.AppError{
						Message: http.StatusText(http.StatusInternalServerError),
						Code:    http.StatusInternalServerError,
					}).ServeHTTP(w, r)
				}

				status := ww.Status()
				// Log the entry, the request is complete.
				createSubLog(logger, r, status).Int("status", status).Int("size", ww.BytesWritten()).Dur("duration", t2.Sub(t1)).Msg("request complete")
			}()

			r = r.WithContext(logger.WithContext(r.Context()))
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func createSubLog(logger *zerolog.Logger, r *http.Request, status int) *zerolog.Event {
	var result *zerolog.Event

	switch {
	case status >= 400 && status <= 499:
		result = logger.Warn()
	case status >= 500:
		result = logger.Error()
	default:
		result = logger.Info()
	}

	result = result.Str("host", r.Host).Str("http_proto", r.Proto).Str("http_method", r.Method).Str("uri", r.URL.EscapedPath())

	// check if we have an external request id
	if extReqID := r.Header.Get("X-Request-ID"); extReqID != "" {
		result = result.Str("x_request_id", extReqID)
	}

	return result
}
