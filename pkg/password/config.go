package password

// Config holds Argon2id parameters and the pepper.
// Memory is in KiB.
type Config struct {
	Pepper      string `env:"PASSWORD_PEPPER"`
	AllowEmpty  bool   `env:"PASSWORD_ALLOW_EMPTY_PEPPER" envDefault:"false"`
	Memory      uint32 `env:"PASSWORD_ARGON2_MEMORY" envDefault:"19456"`
	Time        uint32 `env:"PASSWORD_ARGON2_TIME" envDefault:"2"`
	Parallelism uint8  `env:"PASSWORD_ARGON2_PARALLELISM" envDefault:"1"`
	SaltLength  uint32 `env:"PASSWORD_ARGON2_SALT_LENGTH" envDefault:"16"`
	KeyLength   uint32 `env:"PASSWORD_ARGON2_KEY_LENGTH" envDefault:"32"`
}

// DefaultConfig returns the OWASP-recommended Argon2id parameters without a pepper.
func DefaultConfig() Config {
	return Config{
		Memory:      19456,
		Time:        2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

const (
	minMemory     = 8 * 1024
	minSaltLength = 16
	minKeyLength  = 16
)

// Validate rejects parameters below the supported floor.
func (c Config) Validate() error {
	if c.Pepper == "" && !c.AllowEmpty {
		return ErrMissingPepper
	}
	if c.Memory < minMemory || c.Time < 1 || c.Parallelism < 1 ||
		c.SaltLength < minSaltLength || c.KeyLength < minKeyLength {
		return ErrInvalidConfig
	}
	return nil
}
