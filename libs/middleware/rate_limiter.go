package middleware

import (
	"context"
	"net/http"

	appctx "github.com/nofrixion/moneymoov-go/libs/context"
	"github.com/nofrixion/moneymoov-go/libs/logging"
	"github.com/throttled/throttled"
	"github.com/throttled/throttled/store/memstore"
)

// IPRateLimiterWithStore rate limits based on IP using a provided store and a
// GCRA leaky bucket algorithm. The store may be a simple memory store or a
// shared store for multi-instance synchronization.
func IPRateLimiterWithStore(
	ctx context.Context,
	perMin int,
	burst int,
	store throttled.GCRAStore,
) func(next http.Handler) http.Handler {
	logger := logging.Logger(ctx, "middleware.IPRateLimiterWithStore")

	return func(next http.Handler) http.Handler {
		quota := throttled.RateQuota{
			MaxRate:  throttled.PerMin(perMin),
			MaxBurst: burst,
		}
		rateLimiter, err := throttled.NewGCRARateLimiter(store, quota)
		if err != nil {
			logger.Fatal().Err(err)
		}

		httpRateLimiter := throttled.HTTPRateLimiter{
			RateLimiter: rateLimiter,
			VaryBy: &throttled.VaryBy{
				RemoteAddr: true,
				Path:       true,
				Method:     true,
			},
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// override for OPTIONS request methods, cors preflights come in bursts
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			httpRateLimiter.RateLimit(next).ServeHTTP(w, r)
		})
	}
}

// RateLimiter rate limits the number of requests a user from a single IP
// address can make using a simple in-memory store that will not synchronize
// across instances.
func RateLimiter(ctx context.Context, perMin int) func(next http.Handler) http.Handler {
	logger := logging.Logger(ctx, "middleware.RateLimiter")
	store, err := memstore.New(65536)
	if err != nil {
		logger.Fatal().Err(err)
	}

	defaultBurst := 0
	if burst, ok := ctx.Value(appctx.RateLimiterBurstCTXKey).(int); ok {
		defaultBurst = burst
	}

	return IPRateLimiterWithStore(ctx, perMin, defaultBurst, store)
}
