// Package config provides configuration management for the web application.
//
// Configuration is loaded from the following sources, later ones overriding
// earlier ones:
//  1. Default values (hardcoded)
//  2. Configuration file (./config.yaml, ./configs/config.yaml,
//     ~/.webapp/config.yaml, /etc/webapp/config.yaml)
//  3. Environment variables
//
// # Environment Variables
//
// The deployment variables set by the infrastructure templates are read
// without a prefix:
//   - ENVIRONMENT (default: Development)
//   - AWS_REGION, falling back to AWS_DEFAULT_REGION (default: us-east-1)
//   - INSTANCE_ID (default: Unknown)
//   - PORT (default: 5000)
//
// Every other key uses the WEBAPP_ prefix with underscores for nesting:
//   - WEBAPP_LOGGING_LEVEL=debug
//   - WEBAPP_SERVER_SHUTDOWN_TIMEOUT=30s
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// App contains the deployment descriptors reported by the info endpoints
	App AppConfig `mapstructure:"app" yaml:"app"`

	// Logging contains logging settings
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Security contains response header and CORS settings
	Security SecurityConfig `mapstructure:"security" yaml:"security"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address (default: 0.0.0.0)
	Host string `mapstructure:"host" yaml:"host" validate:"required"`

	// Port is the server listen port (default: 5000)
	Port int `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`

	// ReadTimeout is the maximum duration for reading requests
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"gte=0"`

	// WriteTimeout is the maximum duration for writing responses
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"gte=0"`

	// ShutdownTimeout is the maximum duration for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`

	// Debug enables verbose error details in responses
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// AppConfig holds the deployment descriptors injected by the environment.
type AppConfig struct {
	// Environment is the deployment stage name (default: Development)
	Environment string `mapstructure:"environment" yaml:"environment" validate:"required"`

	// Region is the cloud region the instance runs in (default: us-east-1)
	Region string `mapstructure:"region" yaml:"region" validate:"required"`

	// InstanceID identifies the compute instance (default: Unknown)
	InstanceID string `mapstructure:"instance_id" yaml:"instance_id" validate:"required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error, off)
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error off"`

	// Format is the log format (json, text)
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json text"`
}

// SecurityConfig contains CORS settings.
type SecurityConfig struct {
	// AllowedOrigins are the CORS allowed origins
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

const (
	DefaultEnvironment = "Development"
	DefaultRegion      = "us-east-1"
	DefaultInstanceID  = "Unknown"
	DefaultPort        = 5000
)

// envBindings maps config keys to the unprefixed variables that set them.
// Names are checked in order; the first non-empty one wins.
var envBindings = map[string][]string{
	"app.environment": {"ENVIRONMENT"},
	"app.region":      {"AWS_REGION", "AWS_DEFAULT_REGION"},
	"app.instance_id": {"INSTANCE_ID"},
	"server.port":     {"PORT", "WEBAPP_SERVER_PORT"},
}

var validate = validator.New()

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for config.yaml in standard locations.
// A missing file is not an error; the defaults and environment still apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.webapp")
		v.AddConfigPath("/etc/webapp")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("WEBAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)

	v.SetDefault("app.environment", DefaultEnvironment)
	v.SetDefault("app.region", DefaultRegion)
	v.SetDefault("app.instance_id", DefaultInstanceID)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("security.allowed_origins", []string{"*"})
}

// Validate checks struct constraints and reports every failing field.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: value %v fails %q", fe.Namespace(), fe.Value(), fe.ActualTag()))
	}
	return errors.Join(errs...)
}

// Addr returns the host:port pair the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
