package config

import "time"

// Config holds runtime settings for the back-office console.
//
// Fields:
//   - DatabaseDSN: path of the local sqlite store.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - SessionTokenValidity: lifetime of a minted session token.
type Config struct {
	DatabaseDSN          string
	SecretKey            string
	SessionTokenValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
// NOTE: The secret key default is for the demo only and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "backoffice.db"
	c.SecretKey = "secretKey"
	c.SessionTokenValidity = 30 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
