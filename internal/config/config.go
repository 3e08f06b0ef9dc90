package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAllowedOrigins is the origin allow-list used when none is configured.
var DefaultAllowedOrigins = []string{
	"https://cybersoft.az",
	"https://www.cybersoft.az",
}

// Config holds all application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Mail    MailConfig    `mapstructure:"mail"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds HTTP server configuration.
type APIConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	ContactPath  string        `mapstructure:"contact_path"`
}

// MailConfig holds the outbound email delivery API configuration.
// APIKey is a credential: it must never be logged or echoed in responses.
type MailConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	From     string        `mapstructure:"from"`
	To       string        `mapstructure:"to"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CORSConfig holds the origin allow-list as a comma-separated string so it
// can be supplied through a single environment variable.
type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// Origins returns the parsed allow-list, falling back to
// DefaultAllowedOrigins when nothing is configured.
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return DefaultAllowedOrigins
	}
	return origins
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Output    string `mapstructure:"output"` // stdout (default) or file
	FilePath  string `mapstructure:"file_path"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files"`
}

// Load reads configuration from the given config directory path, looking for
// a file named "config.yaml". A missing file is not an error: the service can
// run on environment variables and defaults alone, which is how the mail API
// credential is supplied in production. Environment variables with prefix
// CONTACT_API_ override file values; for example, CONTACT_API_MAIL_API_KEY
// overrides mail.api_key.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvPrefix("CONTACT_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every configuration key so environment overrides are
// picked up even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.read_timeout", 10*time.Second)
	v.SetDefault("api.write_timeout", 30*time.Second)
	v.SetDefault("api.contact_path", "/api/contact")

	v.SetDefault("mail.endpoint", "")
	v.SetDefault("mail.api_key", "")
	v.SetDefault("mail.from", "Cybersoft Contact Form <no-reply@cybersoft.az>")
	v.SetDefault("mail.to", "info@cybersoft.az")
	v.SetDefault("mail.timeout", 15*time.Second)

	v.SetDefault("cors.allowed_origins", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.file_path", "")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_files", 5)
}

// Validate checks that the configuration is complete enough to start.
func (c *Config) Validate() error {
	if c.Mail.APIKey == "" {
		return errors.New("mail.api_key is required (set CONTACT_API_MAIL_API_KEY)")
	}
	if c.Mail.From == "" {
		return errors.New("mail.from is required")
	}
	if c.Mail.To == "" {
		return errors.New("mail.to is required")
	}
	return nil
}
