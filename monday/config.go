package monday

import "time"

// Defaults applied to any Config field left at its zero value.
const (
	DefaultHost        = "https://api.monday.com/v2"
	DefaultVersion     = "2024-10"
	DefaultOpenTimeout = 10 * time.Second
	DefaultReadTimeout = 30 * time.Second
)

// Config holds the connection settings for a client. Zero-valued fields are
// filled from the process-wide defaults at construction time, so a Config
// carrying only a Token is the common case.
type Config struct {
	// Token authenticates every request via the Authorization header.
	// It is required for real calls but may be left empty until Post.
	Token string
	// Host is the GraphQL endpoint URL.
	Host string
	// Version is the date-stamped API version sent as the API-Version
	// header. Empty after defaulting means the header is omitted.
	Version string
	// OpenTimeout bounds connection establishment (dial and TLS
	// handshake); ReadTimeout bounds the whole exchange including the
	// response body.
	OpenTimeout time.Duration
	ReadTimeout time.Duration
}

// processDefaults is the process-wide default configuration read by every
// NewClient call. It is meant to be set once at startup, before any
// concurrent use; mutating it while requests are in flight is unsupported,
// which is why there is no lock here.
var processDefaults = baseConfig()

func baseConfig() Config {
	return Config{
		Host:        DefaultHost,
		Version:     DefaultVersion,
		OpenTimeout: DefaultOpenTimeout,
		ReadTimeout: DefaultReadTimeout,
	}
}

// Configure mutates the process-wide defaults. Typical use:
//
//	monday.Configure(func(c *monday.Config) {
//		c.Token = os.Getenv("MONDAY_TOKEN")
//	})
func Configure(fn func(*Config)) {
	fn(&processDefaults)
}

// ResetDefaults restores the built-in defaults. Intended for test isolation.
func ResetDefaults() {
	processDefaults = baseConfig()
}

// withDefaults returns c with zero-valued fields filled from the
// process-wide defaults.
func (c Config) withDefaults() Config {
	d := processDefaults
	if c.Token == "" {
		c.Token = d.Token
	}
	if c.Host == "" {
		c.Host = d.Host
	}
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	return c
}
