package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/vitalvas/radclient/pkg/log"
	"github.com/vitalvas/radclient/pkg/packet"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. RADCLIENT_SECRET.
const EnvPrefix = "RADCLIENT"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the radclient settings. Values come from Default, then the
// YAML file, then the environment.
type Config struct {
	Server          string         `yaml:"server" envconfig:"SERVER"`
	Port            int            `yaml:"port" envconfig:"PORT"`
	Secret          string         `yaml:"secret" envconfig:"SECRET"`
	Retries         int            `yaml:"retries" envconfig:"RETRIES"`
	Timeout         time.Duration  `yaml:"timeout" envconfig:"TIMEOUT"`
	MaxPacketLength int            `yaml:"max_packet_length" envconfig:"MAX_PACKET_LENGTH"`
	LogLevel        string         `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFile         log.FileConfig `yaml:"log_file" envconfig:"LOG_FILE"`
	MetricsAddr     string         `yaml:"metrics_addr" envconfig:"METRICS_ADDR"`
}

func Default() *Config {
	return &Config{
		Port:            1645,
		Retries:         3,
		Timeout:         5 * time.Second,
		MaxPacketLength: packet.DefaultMaxPacketLength,
		LogLevel:        "info",
		LogFile: log.FileConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read reads the YAML file at path (skipped when path is empty) and applies
// environment overrides without validating the result.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("%w: server is required", ErrInvalidConfig)
	}

	if c.Secret == "" {
		return fmt.Errorf("%w: secret is required", ErrInvalidConfig)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}

	if c.Retries < 1 {
		return fmt.Errorf("%w: retries must be at least 1", ErrInvalidConfig)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	if c.MaxPacketLength < packet.MinPacketLength || c.MaxPacketLength > packet.MaxPacketLength {
		return fmt.Errorf("%w: max_packet_length must be between %d and %d",
			ErrInvalidConfig, packet.MinPacketLength, packet.MaxPacketLength)
	}

	return nil
}

// ServerAddr resolves Server and Port into a UDP address.
func (c *Config) ServerAddr() (*net.UDPAddr, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(c.Server, strconv.Itoa(c.Port)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve server %s: %w", c.Server, err)
	}
	return addr, nil
}

// Logger builds the logger described by LogLevel and LogFile.
func (c *Config) Logger() *log.DefaultLogger {
	if c.LogFile.Filename != "" {
		return log.NewFileLogger(c.LogFile, c.LogLevel)
	}
	return log.NewLoggerWithLevel(c.LogLevel)
}
