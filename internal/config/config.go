// Package config loads jep106 settings from an optional YAML file and
// JEP106_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/OpenTraceLab/jep106/pkg/jtag"
)

// EnvPrefix is prepended to every environment override, e.g. JEP106_LOG_LEVEL.
const EnvPrefix = "JEP106"

var validate = validator.New()

// Config is the full runtime configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
	Scan   ScanConfig   `mapstructure:"scan"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding" validate:"oneof=json console"`
	Development bool   `mapstructure:"development"`
}

// OutputConfig controls how CLI results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
}

// ServerConfig controls the HTTP lookup service.
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	Metrics     bool     `mapstructure:"metrics"`
	CORSOrigins []string `mapstructure:"cors_origins" validate:"dive,required"`
}

// ScanConfig holds defaults for JTAG chain scans.
type ScanConfig struct {
	Adapter    string `mapstructure:"adapter" validate:"oneof=simulator sim cmsisdap cmsis-dap"`
	MaxDevices int    `mapstructure:"max_devices" validate:"min=1"`
	SpeedHz    int    `mapstructure:"speed_hz" validate:"min=1"`
	Probe      string `mapstructure:"probe"` // USB VID:PID of a CMSIS-DAP probe
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
	v.SetDefault("output.format", "text")
	v.SetDefault("server.addr", ":8106")
	v.SetDefault("server.metrics", true)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("scan.adapter", "simulator")
	v.SetDefault("scan.max_devices", 8)
	v.SetDefault("scan.speed_hz", 1000000)
	v.SetDefault("scan.probe", "2e8a:000c")
}

// Load reads configuration from path, or from jep106.yaml in the working
// directory or ~/.config/jep106 when path is empty. A missing default file is
// not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jep106")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "jep106"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct rules plus values that need a parser.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	for _, o := range c.Server.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("config: server.cors_origins: %q needs an http:// or https:// scheme", o)
		}
	}
	if c.Scan.MaxDevices > jtag.MaxChainLength {
		return fmt.Errorf("config: scan.max_devices must be at most %d, got %d", jtag.MaxChainLength, c.Scan.MaxDevices)
	}
	if c.Scan.Probe != "" {
		if _, _, err := jtag.ParseUSBID(c.Scan.Probe); err != nil {
			return fmt.Errorf("config: scan.probe: %w", err)
		}
	}
	return nil
}
