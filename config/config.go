package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Engine  *EngineConfig `yaml:"engine"`
	LogFile string        `yaml:"logFile"`
}

func NewConfig(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	d := yaml.NewDecoder(file)
	config := &Config{}

	if err := d.Decode(&config); err != nil {
		return nil, errors.Wrap(err, "new config")
	}

	if config.Engine == nil {
		config.Engine = DefaultEngineConfig()
	}

	return config, config.Engine.Validate()
}

// LoadConfig reads config.yml from the directory configPath, creating both
// with defaults when they do not exist yet.
func LoadConfig(configPath string) (*Config, error) {
	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		fmt.Println("Creating config directory " + configPath)
		if err = os.Mkdir(configPath, fs.FileMode(0700)); err != nil {
			return nil, errors.Wrap(err, "load config")
		}
	} else {
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}

		if !info.IsDir() {
			return nil, errors.New(configPath + " is not a directory")
		}
	}

	path := filepath.Join(configPath, "config.yml")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Println("Generating default config...")
		if err = SaveConfig(configPath, &Config{
			Engine: DefaultEngineConfig(),
		}); err != nil {
			return nil, errors.Wrap(err, "load config")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return NewConfig(path)
}

func SaveConfig(configPath string, config *Config) error {
	file, err := os.OpenFile(
		filepath.Join(configPath, "config.yml"),
		os.O_CREATE|os.O_RDWR|os.O_TRUNC,
		os.FileMode(0600),
	)
	if err != nil {
		return err
	}

	defer file.Close()

	d := yaml.NewEncoder(file)

	if err := d.Encode(config); err != nil {
		return err
	}

	return d.Close()
}
