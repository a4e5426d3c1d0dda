package configs

// Config holds all configuration for the application.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Input    InputConfig    `mapstructure:"input" validate:"required"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
	Pipeline PipelineConfig `mapstructure:"pipeline" validate:"required"`
	Sources  []SourceConfig `mapstructure:"sources" validate:"dive"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Loader   LoaderConfig   `mapstructure:"loader"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string        `mapstructure:"level" validate:"required"`
	File  LogFileConfig `mapstructure:"file"`
}

// LogFileConfig enables the rotating log file.
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path" validate:"required_if=Enabled true"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

// InputConfig points at the directory holding one sub-directory per source.
type InputConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// OutputConfig holds output locations.
type OutputConfig struct {
	RootDir         string `mapstructure:"root_dir" validate:"required"`
	CopyRoot        string `mapstructure:"copy_root" validate:"required"` // directory the series CSVs are mounted at for \COPY
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// PipelineConfig holds run-wide processing options.
type PipelineConfig struct {
	Parallelism  int     `mapstructure:"parallelism" validate:"required,min=1,max=64"`
	JoinStrategy string  `mapstructure:"join_strategy" validate:"required,oneof=linear indexed"`
	WindowMs     float64 `mapstructure:"window_ms" validate:"required,gt=0"`
}

// SourceConfig enables a catalog source and optionally overrides its window.
type SourceConfig struct {
	Name     string  `mapstructure:"name" validate:"required,oneof=nvml_power nvml_energy variorum"`
	WindowMs float64 `mapstructure:"window_ms" validate:"min=0"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LoaderConfig enables loading the series tables into PostgreSQL.
type LoaderConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Enabled true"`
}
