// Package config loads the go-base32 tool configuration with viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	// CfgFile is an explicit config file path, set from the command line.
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const BASE32_BASE_DIR = ".go-base32"

// Payload formats accepted by the command line tool.
const (
	FormatHex  = "hex"
	FormatText = "text"
	FormatRaw  = "raw"
)

// ToolConfig holds the effective tool configuration.
type ToolConfig struct {
	// Format selects how byte payloads are read and printed:
	// hex, text or raw.
	Format string
}

// ToolConfigProperties is the active configuration, populated by
// InitConfig.
var ToolConfigProperties = DefaultToolConfig()

// DefaultToolConfig returns the built-in defaults.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		Format: FormatHex,
	}
}

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.go-base32/
		viper.AddConfigPath(BuildConfigDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()

	ToolConfigProperties = NewToolConfigFromViper()
}

func setDefaults() {
	viper.SetDefault("format", DefaultToolConfig().Format)
}

// NewToolConfigFromViper creates a ToolConfig from current viper
// settings.
func NewToolConfigFromViper() ToolConfig {
	return ToolConfig{
		Format: viper.GetString("format"),
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildConfigDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// BuildConfigDirPath returns the per-user configuration directory.
func BuildConfigDirPath() string {
	return filepath.Join(userHome(), BASE32_BASE_DIR)
}

// userHome returns the current user's home directory, falling back to
// $HOME, then USERPROFILE, then the working directory so the tool
// still runs in containers where no home is set.
func userHome() string {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir
	}
	if home := os.Getenv("HOME"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to $HOME")
		return home
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		log.WithError(err).Warn("os.UserHomeDir failed, falling back to USERPROFILE")
		return home
	}
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		log.Fatalf("unable to determine home directory: %s", err)
	}
	log.WithError(err).Warn("no home directory available, using working directory for config")
	return wd
}
