package config

import (
	"os"
	"strconv"

	"github.com/checkmygrade/checkmygrade/internal/model"
	"github.com/checkmygrade/checkmygrade/internal/security"
	"github.com/joho/godotenv"
)

// Config holds all application configuration. Values are immutable after
// Load and are passed into the components that need them.
type Config struct {
	DataDir   string
	LogLevel  string
	LogFormat string

	// PasswordScheme selects the credential encoding: "digest" (bcrypt,
	// the default and recommended scheme) or "cipher" (legacy reversible
	// rotation, kept for pre-existing data files). The two schemes are
	// incompatible at the storage level.
	PasswordScheme security.Scheme
	CipherShift    int
	BcryptCost     int

	// DefaultPassword is applied when a professor enrolls a student
	// without collecting a password. Self-registration always prompts.
	DefaultPassword string

	// GradeScale maps marks to letter grades.
	GradeScale model.GradeScale
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		DataDir:         getEnv("DATA_DIR", "./data"),
		LogLevel:        getEnv("LOG_LEVEL", "warn"),
		LogFormat:       getEnv("LOG_FORMAT", "pretty"),
		PasswordScheme:  security.Scheme(getEnv("PASSWORD_SCHEME", string(security.SchemeDigest))),
		CipherShift:     getEnvInt("CIPHER_SHIFT", 3),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		DefaultPassword: getEnv("DEFAULT_PASSWORD", "default"),
		GradeScale:      model.DefaultGradeScale(),
	}
}

// Codec builds the password codec selected by PasswordScheme. Unknown
// schemes fall back to the digest codec.
func (c *Config) Codec() security.Codec {
	if c.PasswordScheme == security.SchemeCipher {
		return security.NewCaesar(c.CipherShift)
	}
	return security.NewDigest(c.BcryptCost)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
