package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/eslsoft/vocdeck/internal/entity"
)

// Config holds all configuration for the deck pipeline.
type Config struct {
	Lexicon   LexiconConfig   `mapstructure:"lexicon"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Frequency FrequencyConfig `mapstructure:"frequency"`
	Selection SelectionConfig `mapstructure:"selection"`
	Levels    []LevelConfig   `mapstructure:"levels"`
	Cards     CardsConfig     `mapstructure:"cards"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
}

// LexiconConfig locates the source lexicon.
type LexiconConfig struct {
	Path string `mapstructure:"path"`
}

// PathsConfig holds the input and output directories.
type PathsConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	AdditionsDir  string `mapstructure:"additions_dir"`
	OutputDir     string `mapstructure:"output_dir"`
	CategoriesDir string `mapstructure:"categories_dir"`
}

// FrequencyConfig holds the scoring weights and the review threshold.
type FrequencyConfig struct {
	SpokenWeight  float64 `mapstructure:"spoken_weight"`
	WrittenWeight float64 `mapstructure:"written_weight"`
	MinThreshold  float64 `mapstructure:"min_threshold"`
}

// SelectionConfig controls top-N filtering and partitioning.
type SelectionConfig struct {
	FilteredCategories []string `mapstructure:"filtered_categories"`
	TopN               int      `mapstructure:"top_n"`
	MinCategorySize    int      `mapstructure:"min_category_size"`
	MinFrequency       float64  `mapstructure:"min_frequency"`
}

// LevelConfig is one vocabulary level boundary. A zero UpperRank is unbounded.
type LevelConfig struct {
	Name      string `mapstructure:"name"`
	UpperRank int    `mapstructure:"upper_rank"`
}

// CardsConfig holds the CEL card filter and order_by applied to the vocabulary.
type CardsConfig struct {
	Filter  string `mapstructure:"filter"`
	OrderBy string `mapstructure:"order_by"`
}

// DatabaseConfig holds deck store configuration
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	LogSQL   bool   `mapstructure:"log_sql"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	if viper.ConfigFileUsed() == "" {
		viper.SetConfigName("vocdeck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.SetEnvPrefix("vocdeck")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("lexicon.path", "Lexique383.tsv")

	viper.SetDefault("paths.data_dir", "data")
	viper.SetDefault("paths.additions_dir", "additions")
	viper.SetDefault("paths.output_dir", "output")
	viper.SetDefault("paths.categories_dir", "categories")

	// Frequency defaults
	viper.SetDefault("frequency.spoken_weight", 0.6)
	viper.SetDefault("frequency.written_weight", 0.4)
	viper.SetDefault("frequency.min_threshold", 0.67)

	// Selection defaults
	viper.SetDefault("selection.filtered_categories", []string{"VER", "NOM", "ADJ", "ADV"})
	viper.SetDefault("selection.top_n", 10000)
	viper.SetDefault("selection.min_category_size", 100)
	viper.SetDefault("selection.min_frequency", 0.0)

	viper.SetDefault("levels", []map[string]any{
		{"name": string(entity.LevelA1A2), "upper_rank": 1000},
		{"name": string(entity.LevelB1), "upper_rank": 3000},
		{"name": string(entity.LevelB2), "upper_rank": 5000},
		{"name": string(entity.LevelC1), "upper_rank": 0},
	})

	viper.SetDefault("cards.filter", "")
	viper.SetDefault("cards.order_by", "freq desc")

	// Database defaults
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "vocdeck")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.log_sql", false)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// DatabaseDriver returns the normalized driver name.
func (c *Config) DatabaseDriver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch driver {
	case "", "sqlite", "sqlite3":
		return "sqlite3", nil
	case "postgres", "postgresql":
		return "postgres", nil
	case "pgx":
		return "pgx", nil
	default:
		return "", fmt.Errorf("%w: %q", entity.ErrUnsupportedDriver, c.Database.Driver)
	}
}

// DatabaseURL returns the configured DSN, or one derived from the driver:
// a file next to the outputs for sqlite, a connection URL for PostgreSQL.
func (c *Config) DatabaseURL() (string, error) {
	if dsn := strings.TrimSpace(c.Database.DSN); dsn != "" {
		return dsn, nil
	}
	driver, err := c.DatabaseDriver()
	if err != nil {
		return "", err
	}
	if driver == "sqlite3" {
		return fmt.Sprintf("file:%s?cache=shared&_fk=1", filepath.Join(c.Paths.OutputDir, "vocdeck.db")), nil
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	), nil
}

// Pipeline converts the loaded configuration into the immutable options
// handed to every pipeline stage.
func (c *Config) Pipeline() entity.PipelineOptions {
	opts := entity.DefaultPipelineOptions()
	opts.SpokenWeight = c.Frequency.SpokenWeight
	opts.WrittenWeight = c.Frequency.WrittenWeight
	opts.ReviewThreshold = c.Frequency.MinThreshold
	opts.TopN = c.Selection.TopN
	opts.MinCategorySize = c.Selection.MinCategorySize
	opts.MinFrequency = c.Selection.MinFrequency

	if c.Selection.FilteredCategories != nil {
		opts.FilteredCategories = make([]entity.Category, 0, len(c.Selection.FilteredCategories))
		for _, code := range c.Selection.FilteredCategories {
			if code = strings.TrimSpace(code); code != "" {
				opts.FilteredCategories = append(opts.FilteredCategories, entity.Category(code))
			}
		}
	}
	if len(c.Levels) > 0 {
		opts.Levels = make([]entity.LevelBoundary, 0, len(c.Levels))
		for _, l := range c.Levels {
			opts.Levels = append(opts.Levels, entity.LevelBoundary{Level: entity.Level(l.Name), UpperRank: l.UpperRank})
		}
	}
	return opts
}
