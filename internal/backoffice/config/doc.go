// Package config loads runtime configuration for the back-office console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local sqlite store
//	-s string   session token HMAC secret
//	-t int      session token validity (minutes)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so durations can be either strings
// like "30m" or integer nanoseconds:
//
//	{
//	  "database_dsn": "backoffice.db",
//	  "secret_key": "secretKey",
//	  "session_token_validity": "30m"
//	}
package config
