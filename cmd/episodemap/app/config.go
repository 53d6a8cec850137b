package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/errors"
	"github.com/catein/episodemap/pkg/sync"
)

// Config holds the application configuration loaded from config files,
// environment variables, .env files and command-line flags.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string // --log-level only; wins over -v and -q

	// Config file
	ConfigFile string

	// Mapping file
	MappingFile string

	// Content API
	APIURL         string
	Community      string
	ExperienceName string
	ViewerID       string
	Categories     []sync.Category
	RequestDelay   time.Duration
	HTTPTimeout    time.Duration

	// Logging configuration
	EnvLogLevel string // log_level from the environment or config file
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (configFile, or ~/.episodemap.yaml / ./.episodemap.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".episodemap")

		// A missing default config file is fine
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("file", "cannot parse config file", err)
			}
		}
	}

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		MappingFile: v.GetString("mapping_file"),

		APIURL:         v.GetString("api_url"),
		Community:      v.GetString("community"),
		ExperienceName: v.GetString("experience_name"),
		ViewerID:       v.GetString("viewer_id"),
		RequestDelay:   v.GetDuration("request_delay"),
		HTTPTimeout:    v.GetDuration("http_timeout"),

		EnvLogLevel: strings.ToLower(v.GetString("log_level")),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}

	if err := v.UnmarshalKey("categories", &config.Categories); err != nil {
		return nil, errors.NewConfigError("categories", "cannot decode categories", err)
	}
	if len(config.Categories) == 0 {
		config.Categories = sync.DefaultCategories()
	}
	for i := range config.Categories {
		if config.Categories[i].PageSize == 0 {
			config.Categories[i].PageSize = constants.DefaultPageSize
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults registers the default value of every config key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("mapping_file", constants.DefaultMappingFile)
	v.SetDefault("api_url", constants.DefaultAPIURL)
	v.SetDefault("community", constants.DefaultCommunity)
	v.SetDefault("experience_name", constants.DefaultExperienceName)
	v.SetDefault("viewer_id", constants.DefaultViewerID)
	v.SetDefault("request_delay", constants.DefaultRequestDelay)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// Validate checks the configuration for values no command could use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.MappingFile) == "" {
		return errors.NewConfigError("mapping_file", "must not be empty", nil)
	}
	if c.RequestDelay < 0 {
		return errors.NewConfigError("request_delay", "must not be negative", nil)
	}
	if c.HTTPTimeout < 0 {
		return errors.NewConfigError("http_timeout", "must not be negative", nil)
	}
	if err := sync.Defaults().Apply(sync.WithCategories(c.Categories...)).Validate(); err != nil {
		return errors.NewConfigError("categories", err.Error(), err)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, mappingFile string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	c.LogLevel = logLevel
	if mappingFile != "" {
		c.MappingFile = filepath.Clean(mappingFile)
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides a variable that is already set, so
// .env.local only fills what .env left out.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
