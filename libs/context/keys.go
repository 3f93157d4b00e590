package context

// CTXKey - a type for context keys
type CTXKey string

const (
	// EnvironmentCTXKey - the key used for the running environment
	EnvironmentCTXKey CTXKey = "environment"
	// DebugLoggingCTXKey - the key used to enable debug logging
	DebugLoggingCTXKey CTXKey = "debug_logging"
	// LogLevelCTXKey - context key for application logging level
	LogLevelCTXKey CTXKey = "log_level"
	// LogWriterCTXKey - context key for overriding the log writer
	LogWriterCTXKey CTXKey = "log_writer"
	// VersionCTXKey - context key for the version of the code
	VersionCTXKey CTXKey = "version"
	// CommitCTXKey - context key for the commit of the code
	CommitCTXKey CTXKey = "commit"
	// BuildTimeCTXKey - context key for the build time of the code
	BuildTimeCTXKey CTXKey = "build_time"
	// SigningKeyIDCTXKey - context key for the key id a request was signed with
	SigningKeyIDCTXKey CTXKey = "signing_key_id"
	// RateLimiterBurstCTXKey - context key for the rate limiter burst setting
	RateLimiterBurstCTXKey CTXKey = "rate_limiter_burst"
)
