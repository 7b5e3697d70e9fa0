package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv            = EnvLocal
	defaultLogLevel       = "info"
	defaultConfigDir      = ".biosync"
	defaultDataFile       = "biosync.db"
	defaultListenAddress  = "localhost:8484"
	defaultAdvisoryModel  = "gemini-3-flash-preview"
	defaultAdvisoryURL    = "https://generativelanguage.googleapis.com"
	defaultRescueBaseURL  = "http://localhost:8484"
	defaultRetryDelayMS   = 1000
	defaultMaxRetries     = 1
	defaultAdvisoryCacheN = 128
)

// Config holds the client application configuration.
type Config struct {
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	DataPath       string `mapstructure:"data_path"`
	ListenAddress  string `mapstructure:"listen_address"`
	AdvisoryURL    string `mapstructure:"advisory_url"`
	AdvisoryModel  string `mapstructure:"advisory_model"`
	AdvisoryAPIKey string `mapstructure:"advisory_api_key"`
	RescueBaseURL  string `mapstructure:"rescue_base_url"`
	RetryDelayMS   int    `mapstructure:"retry_delay_ms"`
	MaxRetries     int    `mapstructure:"max_retries"`
	AdvisoryCache  int    `mapstructure:"advisory_cache_size"`
}

// MustLoad loads the client configuration, panicking on invalid values.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("LISTEN_ADDRESS", defaultListenAddress)
	viper.SetDefault("ADVISORY_URL", defaultAdvisoryURL)
	viper.SetDefault("ADVISORY_MODEL", defaultAdvisoryModel)
	viper.SetDefault("RESCUE_BASE_URL", defaultRescueBaseURL)
	viper.SetDefault("RETRY_DELAY_MS", defaultRetryDelayMS)
	viper.SetDefault("MAX_RETRIES", defaultMaxRetries)
	viper.SetDefault("ADVISORY_CACHE_SIZE", defaultAdvisoryCacheN)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		ListenAddress:  viper.GetString("LISTEN_ADDRESS"),
		AdvisoryURL:    viper.GetString("ADVISORY_URL"),
		AdvisoryModel:  viper.GetString("ADVISORY_MODEL"),
		AdvisoryAPIKey: viper.GetString("ADVISORY_API_KEY"),
		RescueBaseURL:  viper.GetString("RESCUE_BASE_URL"),
		RetryDelayMS:   viper.GetInt("RETRY_DELAY_MS"),
		MaxRetries:     viper.GetInt("MAX_RETRIES"),
		AdvisoryCache:  viper.GetInt("ADVISORY_CACHE_SIZE"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if c.AdvisoryURL == "" {
		return fmt.Errorf("advisory_url must not be empty")
	}
	if c.RetryDelayMS <= 0 {
		return fmt.Errorf("retry_delay_ms must be positive")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative")
	}
	return nil
}

// IsProd reports whether the environment is prod.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev reports whether the environment is dev.
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal reports whether the environment is local.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
