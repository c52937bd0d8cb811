package configs

import (
	"fmt"
	"strings"

	"binop-stats/internal/shared/validators"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel     = "warn"
	DefaultPrefix       = "op_Binary"
	DefaultMaxLineBytes = 1024 * 1024
	DefaultNumberWidth  = 8
	DefaultPrecision    = 3
	DefaultOpWidth      = 20
)

// LoadConfig builds the configuration from built-in defaults and validates it.
// When configPath is not empty the YAML file at that path is layered on top of the defaults.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Read from file
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("ingestion.prefix", DefaultPrefix)
	v.SetDefault("ingestion.max_line_bytes", DefaultMaxLineBytes)
	v.SetDefault("report.number_width", DefaultNumberWidth)
	v.SetDefault("report.precision", DefaultPrecision)
	v.SetDefault("report.op_width", DefaultOpWidth)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "ingestion.prefix")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Ingestion.Prefix" -> "ingestion.prefix")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
