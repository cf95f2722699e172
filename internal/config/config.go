package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
	Charts   ChartsConfig   `yaml:"charts" envconfig:"CHARTS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/deriva.log"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports" validate:"required"`
	FiguresDir string `yaml:"figures_dir" envconfig:"FIGURES_DIR" default:"outputs/figuras" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// CleaningConfig contains the cleaning pipeline parameters.
type CleaningConfig struct {
	AnioMin       int  `yaml:"anio_min" envconfig:"ANIO_MIN" default:"2000" validate:"min=1000"`
	AnioMax       int  `yaml:"anio_max" envconfig:"ANIO_MAX" default:"2024" validate:"gtefield=AnioMin"`
	StrictRegions bool `yaml:"strict_regions" envconfig:"STRICT_REGIONS" default:"false"`
}

// ChartsConfig contains figure rendering parameters.
type ChartsConfig struct {
	TopN          int               `yaml:"top_n" envconfig:"TOP_N" default:"10" validate:"min=1"`
	HistogramBins int               `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" default:"30" validate:"min=1"`
	DecadeSplit   int               `yaml:"decade_split" envconfig:"DECADE_SPLIT" default:"2010"`
	Species       []string          `yaml:"species" envconfig:"SPECIES" default:"Stenella coeruleoalba,Delphinus delphis"`
	Palette       map[string]string `yaml:"palette" envconfig:"PALETTE" default:"Stenella coeruleoalba:#2A9D8F,Delphinus delphis:#B55656"`
}

// Load loads configuration from environment variables and, when present, a
// YAML config file. Environment values take precedence.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("DERIVA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config into env config; env values win, file
// values fill whatever env left empty.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.DataDir == "" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if envConfig.Paths.ReportsDir == "" {
		envConfig.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}
	if envConfig.Paths.FiguresDir == "" {
		envConfig.Paths.FiguresDir = fileConfig.Paths.FiguresDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if envConfig.Cleaning.AnioMin == 0 {
		envConfig.Cleaning.AnioMin = fileConfig.Cleaning.AnioMin
	}
	if envConfig.Cleaning.AnioMax == 0 {
		envConfig.Cleaning.AnioMax = fileConfig.Cleaning.AnioMax
	}
	if len(envConfig.Charts.Species) == 0 {
		envConfig.Charts.Species = fileConfig.Charts.Species
	}
	if len(envConfig.Charts.Palette) == 0 {
		envConfig.Charts.Palette = fileConfig.Charts.Palette
	}

	return envConfig
}

// configFilePath resolves the config file location; DERIVA_CONFIG overrides
// the default config.yaml next to the working directory.
func configFilePath() string {
	if path := os.Getenv("DERIVA_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

// validate checks the configuration against its struct tags.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// EnsureDirectories creates the configured directories when missing.
func (p *PathsConfig) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.FiguresDir, p.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// LogPath returns the path for a log file inside the logs directory.
func (p *PathsConfig) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// ReportPath returns the path for a report file inside the reports directory.
func (p *PathsConfig) ReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}

// FigurePath returns the path for a figure file inside the figures directory.
func (p *PathsConfig) FigurePath(name string) string {
	return filepath.Join(p.FiguresDir, name)
}
