package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/caarlos0/env/v11"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/joho/godotenv"
)

// Call validator policies.
const (
	ValidatorAllowList = "allowlist"
	ValidatorReject    = "reject"
)

type Config struct {
	DatabasePath string        `env:"RAFFLE_DATABASE_PATH" envDefault:"raffle.db"`
	TickInterval time.Duration `env:"RAFFLE_TICK_INTERVAL" envDefault:"6s"`

	ModuleID           string   `env:"RAFFLE_MODULE_ID"            envDefault:"zf/raffl"`
	MaxCalls           uint32   `env:"RAFFLE_MAX_CALLS"            envDefault:"10"`
	MaxGenerateRandom  uint32   `env:"RAFFLE_MAX_GENERATE_RANDOM"  envDefault:"10"`
	ExistentialDeposit string   `env:"RAFFLE_EXISTENTIAL_DEPOSIT"  envDefault:"1"`
	Managers           []string `env:"RAFFLE_MANAGERS"             envSeparator:","`
	CallValidator      string   `env:"RAFFLE_CALL_VALIDATOR"       envDefault:"allowlist"`
	RandomSeed         string   `env:"RAFFLE_RANDOM_SEED"`

	NatsURL     string `env:"RAFFLE_NATS_URL"`
	NatsSubject string `env:"RAFFLE_NATS_SUBJECT" envDefault:"raffle"`

	LogLevel     string `env:"LOG_LEVEL"      envDefault:"info"`
	LogFile      string `env:"LOG_FILE"`
	LogErrorFile string `env:"LOG_ERROR_FILE"`
	LogConsole   bool   `env:"LOG_CONSOLE"    envDefault:"true"`
}

// Load reads the given .env files, when present, and parses the environment.
// Without arguments ".env" in the working directory is tried.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("RAFFLE_DATABASE_PATH must not be empty")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("RAFFLE_TICK_INTERVAL must be positive, got %s", c.TickInterval)
	}
	if _, err := c.Params(); err != nil {
		return err
	}
	if _, err := c.MinimumBalance(); err != nil {
		return err
	}
	if _, err := c.Seed(); err != nil {
		return err
	}
	switch c.CallValidator {
	case ValidatorAllowList, ValidatorReject:
	default:
		return fmt.Errorf("RAFFLE_CALL_VALIDATOR must be %q or %q, got %q", ValidatorAllowList, ValidatorReject, c.CallValidator)
	}
	if c.NatsURL != "" && c.NatsSubject == "" {
		return fmt.Errorf("RAFFLE_NATS_SUBJECT must not be empty when RAFFLE_NATS_URL is set")
	}
	return nil
}

func (c *Config) Params() (raffle.Params, error) {
	moduleID, err := runtime.ParseModuleID(c.ModuleID)
	if err != nil {
		return raffle.Params{}, fmt.Errorf("RAFFLE_MODULE_ID: %w", err)
	}
	params := raffle.Params{
		ModuleID:          moduleID,
		MaxCalls:          c.MaxCalls,
		MaxGenerateRandom: c.MaxGenerateRandom,
	}
	if err := params.Validate(); err != nil {
		return raffle.Params{}, err
	}
	return params, nil
}

// MinimumBalance is the ledger's existential deposit.
func (c *Config) MinimumBalance() (math.Int, error) {
	amount, ok := math.NewIntFromString(c.ExistentialDeposit)
	if !ok || amount.IsNegative() {
		return math.Int{}, fmt.Errorf("RAFFLE_EXISTENTIAL_DEPOSIT must be a non-negative integer, got %q", c.ExistentialDeposit)
	}
	return amount, nil
}

// ManagerOrigin allows root and, when no managers are listed, any signed
// account; otherwise only the listed accounts.
func (c *Config) ManagerOrigin() runtime.EnsureOrigin {
	managers := make([]runtime.AccountID, 0, len(c.Managers))
	for _, manager := range c.Managers {
		manager = strings.TrimSpace(manager)
		if manager != "" {
			managers = append(managers, runtime.AccountID(manager))
		}
	}
	if len(managers) == 0 {
		return runtime.EnsureRootOr{Inner: runtime.EnsureSignedAny{}}
	}
	return runtime.EnsureRootOr{Inner: runtime.NewEnsureSignedBy(managers...)}
}

// Seed decodes the beacon genesis seed. Nil means none was configured.
func (c *Config) Seed() ([]byte, error) {
	if c.RandomSeed == "" {
		return nil, nil
	}
	seed, err := hex.DecodeString(strings.TrimPrefix(c.RandomSeed, "0x"))
	if err != nil {
		return nil, fmt.Errorf("RAFFLE_RANDOM_SEED: %w", err)
	}
	return seed, nil
}

func (c *Config) Logger() logger.Configuration {
	return logger.Configuration{
		LogFile:   c.LogFile,
		ErrorFile: c.LogErrorFile,
		Level:     c.LogLevel,
		Console:   c.LogConsole,
	}
}
