package nccheck

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the nccheck configuration
type Config struct {
	Machine Profile              `yaml:"machine"`
	Output  OutputConfig         `yaml:"output"`
	Limits  map[string]AxisLimit `yaml:"limits"`
}

// OutputConfig represents report output settings
type OutputConfig struct {
	Format string `yaml:"format"`
}

// AxisLimit holds the optional travel bounds for one axis. Values are kept as
// text: an empty or non-numeric value means the bound is not supplied.
type AxisLimit struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	// Expand environment variables
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if config.Machine != "" && !config.Machine.Valid() {
		return fmt.Errorf("%w: invalid machine '%s': must be one of FANUC_Lathe, OSP_Mill, TOSNUC_Mill", ErrConfigValidation, config.Machine)
	}

	validFormats := map[string]bool{
		"text": true,
		"csv":  true,
		"json": true,
		"yaml": true,
	}
	if config.Output.Format != "" && !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: invalid output format '%s': must be one of text, csv, json, yaml", ErrConfigValidation, config.Output.Format)
	}

	for axis := range config.Limits {
		switch strings.ToUpper(axis) {
		case "X", "Y", "Z":
		default:
			return fmt.Errorf("%w: unknown limit axis '%s': must be one of x, y, z", ErrConfigValidation, axis)
		}
	}

	return nil
}

func getDefaultConfig() *Config {
	return &Config{
		Machine: ProfileFanucLathe,
		Output: OutputConfig{
			Format: "text",
		},
	}
}

func applyDefaults(config *Config) {
	if config.Machine == "" {
		config.Machine = ProfileFanucLathe
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in configuration values
func expandConfigEnvVars(config *Config) {
	for axis, limit := range config.Limits {
		limit.Min = expandEnvVars(limit.Min)
		limit.Max = expandEnvVars(limit.Max)
		config.Limits[axis] = limit
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
