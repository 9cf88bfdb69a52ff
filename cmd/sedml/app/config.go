package app

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andaru/sedml/sederr"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultIndent = "  "
	defaultFailOn = "error"
	defaultFormat = "text"

	localConfig = ".sedml.yaml"
)

// Config is the content of a sedml config file. Unset keys leave the
// value of an earlier file in place.
type Config struct {
	Indent *string `yaml:"indent,omitempty"`
	FailOn *string `yaml:"failOn,omitempty"`
	Format *string `yaml:"format,omitempty"`
}

// GetConfig merges the built-in defaults, the user config file, a config
// file in the working directory and explicit, in that order. An explicit
// file must exist, the others are optional.
func GetConfig(explicit string) (*Config, error) {
	cfg := &Config{
		Indent: pointer(defaultIndent),
		FailOn: pointer(defaultFailOn),
		Format: pointer(defaultFormat),
	}
	var files []string
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "sedml", "config.yaml"))
	}
	files = append(files, localConfig)
	for _, path := range files {
		add, err := ReadConfig(path)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, add)
	}
	if explicit != "" {
		add, err := ReadConfig(explicit)
		if err != nil {
			return nil, err
		}
		if add == nil {
			return nil, errors.Errorf("config file %s not found", explicit)
		}
		MergeConfig(cfg, add)
	}
	return cfg, nil
}

// ReadConfig reads the config file at path. A missing file yields a nil
// Config and no error; a file which cannot be read or decoded is an error.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		glog.V(1).Infof("no config file %s", path)
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	glog.V(1).Infof("read config file %s", path)
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	return &cfg, nil
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Indent != nil {
		cfg.Indent = add.Indent
	}
	if add.FailOn != nil {
		cfg.FailOn = add.FailOn
	}
	if add.Format != nil {
		cfg.Format = add.Format
	}
}

// Validate checks the severity and output format names
func (c *Config) Validate() error {
	if _, err := c.Severity(); err != nil {
		return err
	}
	switch *c.Format {
	case "text", "json", "yaml":
		return nil
	}
	return errors.Errorf("unknown output format %q", *c.Format)
}

// Severity returns the failOn threshold
func (c *Config) Severity() (sederr.Severity, error) {
	var s sederr.Severity
	if err := s.UnmarshalText([]byte(*c.FailOn)); err != nil {
		return s, errors.Errorf("unknown severity %q", *c.FailOn)
	}
	return s, nil
}

func pointer[T any](v T) *T { return &v }
