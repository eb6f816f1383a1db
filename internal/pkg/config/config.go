// internal/pkg/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Ledger
	Ledger LedgerConfig

	// Directory
	Directory DirectoryConfig

	// Export
	Export ExportConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// LedgerConfig holds report sizing and seeding configuration
type LedgerConfig struct {
	BestSellersLimit int
	ReportTopItems   int
	SeedSampleData   bool
}

// DirectoryConfig holds the seed user list
type DirectoryConfig struct {
	Users []domain.User
}

// ExportConfig holds export destinations
type ExportConfig struct {
	Directory string
	CSVFile   string
	XLSXFile  string
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	// Initialize viper
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	setDefaults()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "stock-ledger"),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "text"),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		Ledger: LedgerConfig{
			BestSellersLimit: getIntEnv("LEDGER_BEST_SELLERS_LIMIT", 3),
			ReportTopItems:   getIntEnv("LEDGER_REPORT_TOP_ITEMS", 5),
			SeedSampleData:   getBoolEnv("LEDGER_SEED_SAMPLE_DATA", env == "development"),
		},
		Directory: DirectoryConfig{
			Users: parseUsers(getEnv("DIRECTORY_USERS", "manager:manager123:Manager,worker:worker123:Worker")),
		},
		Export: ExportConfig{
			Directory: getEnv("EXPORT_DIR", "."),
			CSVFile:   getEnv("EXPORT_CSV_FILE", "stock_report.csv"),
			XLSXFile:  getEnv("EXPORT_XLSX_FILE", "stock_report.xlsx"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Directory.Users) == 0 {
		return fmt.Errorf("at least one directory user is required")
	}
	for _, user := range c.Directory.Users {
		if user.Role != domain.RoleManager && user.Role != domain.RoleWorker {
			return fmt.Errorf("user %s has unknown role %q", user.Username, user.Role)
		}
	}
	if c.Ledger.BestSellersLimit <= 0 {
		return fmt.Errorf("best sellers limit must be positive")
	}
	if c.Ledger.ReportTopItems <= 0 {
		return fmt.Errorf("report top items must be positive")
	}
	if c.Export.Directory == "" {
		return fmt.Errorf("export directory is required")
	}
	return nil
}

// CSVPath returns the CSV export destination.
func (c *Config) CSVPath() string {
	return filepath.Join(c.Export.Directory, c.Export.CSVFile)
}

// XLSXPath returns the Excel export destination.
func (c *Config) XLSXPath() string {
	return filepath.Join(c.Export.Directory, c.Export.XLSXFile)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("app.name", "stock-ledger")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

// parseUsers parses "username:password:Role" triples separated by commas.
// Malformed entries are skipped.
func parseUsers(usersStr string) []domain.User {
	var users []domain.User
	for _, entry := range strings.Split(usersStr, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			continue
		}
		users = append(users, domain.User{
			Username: strings.TrimSpace(parts[0]),
			Password: parts[1],
			Role:     domain.Role(strings.TrimSpace(parts[2])),
		})
	}
	return users
}
