package cmd

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/cors"
	appctx "github.com/nofrixion/moneymoov-go/libs/context"
	"github.com/nofrixion/moneymoov-go/libs/handlers"
	"github.com/nofrixion/moneymoov-go/libs/httpsignature"
	"github.com/nofrixion/moneymoov-go/libs/logging"
	"github.com/nofrixion/moneymoov-go/libs/middleware"
	"github.com/nofrixion/moneymoov-go/libs/webhook"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ServeCmd runs the signature verification service
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the signature verification endpoints",
	Run:   Perform("serve", RunServe),
}

func init() {
	RootCmd.AddCommand(ServeCmd)

	ServeCmd.Flags().String("address", ":8080", "the default listening address")
	Must(viper.BindPFlag("address", ServeCmd.Flags().Lookup("address")))
	Must(viper.BindEnv("address", "ADDR"))

	ServeCmd.Flags().String("signing-secret", "", "the shared request signing secret")
	Must(viper.BindPFlag("signing-secret", ServeCmd.Flags().Lookup("signing-secret")))
	Must(viper.BindEnv("signing-secret", "MONEYMOOV_SECRET"))

	ServeCmd.Flags().String("signing-key-id", "", "the key id the signing secret belongs to")
	Must(viper.BindPFlag("signing-key-id", ServeCmd.Flags().Lookup("signing-key-id")))
	Must(viper.BindEnv("signing-key-id", "MONEYMOOV_KEY_ID"))

	ServeCmd.Flags().String("webhook-secret", "", "the webhook shared secret")
	Must(viper.BindPFlag("webhook-secret", ServeCmd.Flags().Lookup("webhook-secret")))
	Must(viper.BindEnv("webhook-secret", "MONEYMOOV_WEBHOOK_SECRET"))

	ServeCmd.Flags().Int("rate-per-min", 60, "requests per minute allowed per caller ip")
	Must(viper.BindPFlag("rate-per-min", ServeCmd.Flags().Lookup("rate-per-min")))
	Must(viper.BindEnv("rate-per-min", "RATE_PER_MIN"))
}

// RunServe runs the serve command
func RunServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		ctx, logger = logging.SetupLogger(ctx)
	}

	keystore := &httpsignature.StaticKeystore{
		Key: httpsignature.HMACKey(viper.GetString("signing-secret")),
		Params: httpsignature.SignatureParams{
			Version:   1,
			Algorithm: httpsignature.SHA256,
			KeyID:     viper.GetString("signing-key-id"),
		},
	}
	whConfig := webhook.NewConfig([]byte(viper.GetString("webhook-secret")))

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestIDTransfer)
	r.Use(hlog.NewHandler(*logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimiter(ctx, viper.GetInt("rate-per-min")))

	r.Get("/health-check", handlers.HealthCheckHandler(
		ctx.Value(appctx.VersionCTXKey).(string),
		ctx.Value(appctx.BuildTimeCTXKey).(string),
		ctx.Value(appctx.CommitCTXKey).(string),
		nil,
	))
	r.Method("GET", "/metrics", middleware.Metrics())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/signed", func(r chi.Router) {
			r.Use(middleware.VerifyDateIsRecent(5*time.Minute, 5*time.Minute))
			r.Use(middleware.SignedOnly(keystore))
			r.Method("POST", "/echo", middleware.InstrumentHandler(
				"SignedEcho", signedEchoHandler()))
		})
		r.Method("POST", "/webhooks/receive", middleware.InstrumentHandler(
			"ReceiveWebhook", middleware.VerifyWebhookSignature(whConfig)(webhookReceiveHandler())))
	})

	srv := http.Server{
		Addr:        viper.GetString("address"),
		Handler:     chi.ServerBaseContext(ctx, r),
		ReadTimeout: 15 * time.Second,
	}
	logger.Info().Str("addr", srv.Addr).Msg("listening")
	return srv.ListenAndServe()
}

// signedEchoHandler acknowledges a correctly signed request, reporting the
// key id the signature resolved to
func signedEchoHandler() http.Handler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		keyID, err := middleware.GetKeyID(r.Context())
		if err != nil {
			return handlers.WrapError(err, "no key id on request", http.StatusUnauthorized)
		}
		return handlers.RenderContent(r.Context(), map[string]string{
			"keyID": keyID,
		}, w, http.StatusOK)
	})
}

// webhookReceiveHandler acknowledges a webhook whose payload signature checked out
func webhookReceiveHandler() http.Handler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		logging.FromContext(r.Context()).Info().Msg("webhook received")
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}
