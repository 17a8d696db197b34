// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Supported store drivers.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Supported access token makers.
const (
	TokenPaseto = "paseto"
	TokenJWT    = "jwt"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environement        string        `mapstructure:"GO_ENV"`
	StoreDriver         string        `mapstructure:"STORE_DRIVER"`
	BillPayPollInterval time.Duration `mapstructure:"BILLPAY_POLL_INTERVAL"`
	SeedFile            string        `mapstructure:"SEED_FILE"`
	TokenMaker          string        `mapstructure:"TOKEN_MAKER"`
}

// Load read configuration from file or environment variables. A missing
// app.env file is not an error, the environment alone may configure the app.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_SYMMETRIC_KEY", "")
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("STORE_DRIVER", StorePostgres)
	v.SetDefault("BILLPAY_POLL_INTERVAL", 10*time.Second)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("TOKEN_MAKER", TokenPaseto)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, c.validate()
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case StorePostgres:
		if c.DBSource == "" {
			return errors.New("DB_SOURCE is required for the postgres store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.TokenMaker != TokenPaseto && c.TokenMaker != TokenJWT {
		return fmt.Errorf("unsupported TOKEN_MAKER %q", c.TokenMaker)
	}

	if c.BillPayPollInterval <= 0 {
		return fmt.Errorf("BILLPAY_POLL_INTERVAL must be positive, got %v", c.BillPayPollInterval)
	}

	return nil
}
