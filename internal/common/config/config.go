package config

import (
	"os"
	"regexp"

	"github.com/chloroplast/expense-server/pkg/helper"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type (
	// SuperAdminConfig holds the bootstrap super admin account seeded at startup
	SuperAdminConfig struct {
		EmailID  string `yaml:"email_id"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
		TimeZone   string `yaml:"time_zone"`   // time zone for log timestamps, default is local
		TimeFormat string `yaml:"time_format"` // time format for log timestamps
	}
)

type Type interface {
	APIServerConfig
}

// envPlaceholder matches ${NAME} and ${NAME:default}
var envPlaceholder = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// LoadConfig reads filename (resolved through helper.GetCfgPath), expands
// environment placeholders and unmarshals the YAML into T. A .env file in
// the working directory is loaded first when present. The resolved path
// is returned alongside the configuration for logging.
func LoadConfig[T Type](filename string) (*T, string, error) {
	_ = godotenv.Load()

	path := helper.GetCfgPath(filename)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, path, err
	}

	var cfg T
	if err := yaml.Unmarshal(resolveEnv(raw), &cfg); err != nil {
		return nil, path, err
	}
	return &cfg, path, nil
}

// resolveEnv substitutes ${NAME:default} placeholders with the value of
// NAME from the environment, falling back to the default when unset.
func resolveEnv(content []byte) []byte {
	return envPlaceholder.ReplaceAllFunc(content, func(match []byte) []byte {
		parts := envPlaceholder.FindSubmatch(match)
		if value, ok := os.LookupEnv(string(parts[1])); ok {
			return []byte(value)
		}
		return parts[2]
	})
}
