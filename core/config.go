package core

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug     bool
		TestMode  bool
		Env       string // DEV (default), TEST, QA, PROD
		Build     string
		AppName   string
		SecretKey string

		RollbarToken string

		Server   ServerConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host                      string
		Port                      int
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine     string
		Host       string
		Port       int
		Name       string
		User       string
		Password   string
		DisableTLS bool
		Timeout    time.Duration
	}
)

func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
}

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
}

// NewConfig loads the app configuration from the environment (and an optional
// config/.env.<env> file) exactly once at startup.
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "Sistem Nilai ICT")
	conf.SetDefault("secretKey", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "0.0.0.0")
	conf.SetDefault("server.port", 8000)
	conf.SetDefault("server.debugHost", "0.0.0.0:4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("server.jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("database.engine", "postgres")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", 5432)
	conf.SetDefault("database.name", "nilai_ict")
	conf.SetDefault("database.user", "")
	conf.SetDefault("database.password", "")
	conf.SetDefault("database.disableTLS", false)
	conf.SetDefault("database.timeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	return &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     env == "TEST",
		Env:          env,
		Build:        conf.GetString("build"),
		AppName:      conf.GetString("appName"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      conf.GetString("server.host"),
			Port:                      conf.GetInt("server.port"),
			DebugHost:                 conf.GetString("server.debugHost"),
			ShutdownTimeout:           conf.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("server.jwtRefreshExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:     conf.GetString("database.engine"),
			Port:       conf.GetInt("database.port"),
			Host:       conf.GetString("database.host"),
			Name:       conf.GetString("database.name"),
			User:       conf.GetString("database.user"),
			Password:   conf.GetString("database.password"),
			DisableTLS: conf.GetBool("database.disableTLS"),
			Timeout:    conf.GetDuration("database.timeout"),
		},
	}
}

// Validate checks that all required settings are present. It is called once at
// startup so a misconfiguration fails fast and names the offending field
// instead of surfacing deep inside a store call.
func (c *Config) Validate() error {
	checks := vala.BeginValidation().Validate(
		vala.StringNotEmpty(c.AppName, "appName"),
		vala.StringNotEmpty(c.Database.Engine, "database.engine"),
		vala.StringNotEmpty(c.Database.Host, "database.host"),
		vala.StringNotEmpty(c.Database.Name, "database.name"),
		vala.Not(vala.Equals(c.Database.Port, 0, "database.port")),
		vala.Not(vala.Equals(c.Server.Port, 0, "server.port")),
	)
	if !c.Debug {
		// the dev fallback must never make it to QA/PROD
		checks = checks.Validate(
			vala.StringNotEmpty(c.SecretKey, "secretKey"),
			vala.StringNotEmpty(c.Database.User, "database.user"),
			vala.StringNotEmpty(c.Database.Password, "database.password"),
		)
	}
	if err := checks.Check(); err != nil {
		return NewValidationError(err)
	}
	return nil
}
