package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr  string
		Debug bool
	}
	Database struct {
		Driver string // "postgres" or "sqlite"
		DSN    string
	}
	Auth struct {
		JwtSecret string
		TokenTTL  time.Duration
	}
	AWS struct {
		Region   string
		S3Bucket string
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("config/")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.debug", false)
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("auth.token_ttl", "24h")

	viper.SetEnvPrefix("klip")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// env-only configuration is fine, a missing file is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.Server.Addr = viper.GetString("server.addr")
	cfg.Server.Debug = viper.GetBool("server.debug")
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Auth.JwtSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.AWS.Region = viper.GetString("aws.region")
	cfg.AWS.S3Bucket = viper.GetString("aws.s3_bucket")
	return cfg, nil
}
