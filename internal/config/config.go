package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/playback"
)

const (
	DefaultDataDir  = ".algoviz"
	DefaultPreset   = "sample"
	DefaultSortBy   = "name"
	DefaultSearchBy = "name"
	DefaultLogLevel = "info"
)

type Config struct {
	DataDir  string `yaml:"data_dir" toml:"data_dir"`
	Preset   string `yaml:"preset" toml:"preset"`
	SortBy   string `yaml:"sort_by" toml:"sort_by"`
	SearchBy string `yaml:"search_by" toml:"search_by"`
	SpeedMs  int    `yaml:"speed_ms" toml:"speed_ms"`
	LogFile  string `yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Preset:   DefaultPreset,
		SortBy:   DefaultSortBy,
		SearchBy: DefaultSearchBy,
		SpeedMs:  int(playback.DefaultSpeed / time.Millisecond),
		LogLevel: DefaultLogLevel,
	}
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
}

// Load reads path over the defaults, so absent keys keep their default values.
func Load(path string) (*Config, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	cfg := DefaultConfig()
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(cfg)
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return errors.Wrap(err, "config: encode")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "config: write")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.Mark(errors.New("data_dir is empty"), ErrInvalid)
	}
	if _, err := inventory.Preset(c.Preset); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if _, err := inventory.ParseField(c.SortBy); err != nil {
		return errors.Mark(errors.Wrap(err, "sort_by"), ErrInvalid)
	}
	field, err := inventory.ParseField(c.SearchBy)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "search_by"), ErrInvalid)
	}
	if !slices.Contains(inventory.SearchFields, field) {
		return errors.Mark(errors.Newf("search_by %q is not a text field", c.SearchBy), ErrInvalid)
	}
	if _, err := playback.ParseSpeed(c.SpeedMs); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	return nil
}

// SortField and SearchField assume Validate passed.
func (c *Config) SortField() inventory.Field {
	f, _ := inventory.ParseField(c.SortBy)
	return f
}

func (c *Config) SearchField() inventory.Field {
	f, _ := inventory.ParseField(c.SearchBy)
	return f
}

func (c *Config) Speed() time.Duration {
	d, err := playback.ParseSpeed(c.SpeedMs)
	if err != nil {
		return playback.DefaultSpeed
	}
	return d
}

func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrap(err, "log_level")
	}
	return lvl, nil
}
