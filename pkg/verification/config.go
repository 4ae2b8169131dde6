package verification

import "time"

// Config holds verification lifetimes.
type Config struct {
	TTL        time.Duration `env:"VERIFICATION_TTL" envDefault:"15m"`
	CodeLength int           `env:"VERIFICATION_CODE_LENGTH" envDefault:"8"`
}

// DefaultConfig returns a 15-minute lifetime and 8-digit codes.
func DefaultConfig() Config {
	return Config{
		TTL:        15 * time.Minute,
		CodeLength: 8,
	}
}
