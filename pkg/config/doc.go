// Package config loads application configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct tag parsing and
// `github.com/joho/godotenv` for .env files:
//
//   - the default `.env` in the working directory is loaded once, if present,
//   - extra files can be required per call with WithEnvFiles,
//   - WithPrefix namespaces every variable,
//   - WithEnvironment parses from a map, which keeps tests hermetic.
//
// # Usage
//
//	var cfg detect.Config // fields tagged `env:"SNIFF_SKIP_OS"` etc.
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrEnvFile`       – a requested .env file could not be read.
package config
