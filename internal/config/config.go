// Package config loads the application configuration from defaults, an
// optional YAML file, MAPA_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bsmietanka/interactive-map/internal/dataset"
	"github.com/bsmietanka/interactive-map/internal/render"
)

// DisplayConfig bounds the display copy of the map.
type DisplayConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// TableConfig configures the table tab.
type TableConfig struct {
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
}

// Config wraps the entire configuration of the application.
type Config struct {
	MapPath         string         `mapstructure:"map_path" yaml:"map_path"`                 // Scanned map image
	AnnotationsPath string         `mapstructure:"annotations_path" yaml:"annotations_path"` // Polygon annotations JSON object
	DescriptionPath string         `mapstructure:"description_path" yaml:"description_path"` // Description records JSON array
	LogLevel        string         `mapstructure:"log_level" yaml:"log_level"`
	Display         DisplayConfig  `mapstructure:"display" yaml:"display"`
	Table           TableConfig    `mapstructure:"table" yaml:"table"`
	Schema          dataset.Schema `mapstructure:"schema" yaml:"schema"`
}

// Paths returns the dataset input paths.
func (c *Config) Paths() dataset.Paths {
	return dataset.Paths{Annotations: c.AnnotationsPath, Descriptions: c.DescriptionPath}
}

// RenderOptions returns the scene options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{DisplayWidth: c.Display.Width, DisplayHeight: c.Display.Height}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.MapPath == "" {
		errs = append(errs, errors.New("map_path is required"))
	}
	if c.AnnotationsPath == "" {
		errs = append(errs, errors.New("annotations_path is required"))
	}
	if c.DescriptionPath == "" {
		errs = append(errs, errors.New("description_path is required"))
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Table.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("table.page_size must be positive, got %d", c.Table.PageSize))
	}
	if c.Schema.KeyField == "" {
		errs = append(errs, errors.New("schema.key_field is required"))
	}
	return errors.Join(errs...)
}

var (
	defaults = map[string]any{
		"map_path":               "data/small.png",
		"annotations_path":       "data/polygons.json",
		"description_path":       "data/description.json",
		"log_level":              "info",
		"display.width":          render.DefaultDisplayWidth,
		"display.height":         render.DefaultDisplayHeight,
		"table.page_size":        dataset.DefaultPageSize,
		"schema.key_field":       dataset.DefaultSchema().KeyField,
		"schema.numeric_columns": dataset.DefaultSchema().NumericColumns,
	}

	// envBindings maps config keys to the environment variables that can
	// set them.
	envBindings = map[string][]string{
		"map_path":               {"MAPA_MAP_PATH"},
		"annotations_path":       {"MAPA_ANNOTATIONS_PATH"},
		"description_path":       {"MAPA_DESCRIPTION_PATH"},
		"log_level":              {"MAPA_LOG_LEVEL"},
		"display.width":          {"MAPA_DISPLAY_WIDTH"},
		"display.height":         {"MAPA_DISPLAY_HEIGHT"},
		"table.page_size":        {"MAPA_TABLE_PAGE_SIZE"},
		"schema.key_field":       {"MAPA_SCHEMA_KEY_FIELD"},
		"schema.numeric_columns": {"MAPA_SCHEMA_NUMERIC_COLUMNS"},
	}

	// flagBindings maps config keys to command line flag names.
	flagBindings = map[string]string{
		"map_path":         "map",
		"annotations_path": "annotations",
		"description_path": "descriptions",
		"log_level":        "log-level",
		"display.width":    "display-width",
		"display.height":   "display-height",
		"table.page_size":  "page-size",
	}
)

// RegisterFlags adds the configuration flags to fs. Their defaults are only
// shown in help; unset flags never override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("map", defaults["map_path"].(string), "path to the scanned map image")
	fs.String("annotations", defaults["annotations_path"].(string), "path to the polygon annotations JSON")
	fs.String("descriptions", defaults["description_path"].(string), "path to the plot descriptions JSON")
	fs.String("log-level", defaults["log_level"].(string), "log level (debug, info, warn, error)")
	fs.Int("display-width", render.DefaultDisplayWidth, "maximum width of the displayed map")
	fs.Int("display-height", render.DefaultDisplayHeight, "maximum height of the displayed map")
	fs.Int("page-size", dataset.DefaultPageSize, "rows per page in the table")
}

// Load builds the configuration. filePath may be empty; a named file must
// exist. flags may be nil.
func Load(filePath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", filePath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}
