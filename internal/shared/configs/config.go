package configs

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// IngestionConfig holds log line matching configuration.
type IngestionConfig struct {
	Prefix       string `mapstructure:"prefix" validate:"required"`
	MaxLineBytes int    `mapstructure:"max_line_bytes" validate:"required,min=4096"` // bytes
}

// ReportConfig holds report layout configuration.
type ReportConfig struct {
	NumberWidth int `mapstructure:"number_width" validate:"required,min=1"`
	Precision   int `mapstructure:"precision" validate:"min=0,max=9"`
	OpWidth     int `mapstructure:"op_width" validate:"required,min=1"`
}
