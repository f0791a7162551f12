package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// defaultConfigFile is looked up in the working directory when no -c
// flag is given.
const defaultConfigFile = "dsense.toml"

// ProjectConfig is the dsense.toml schema.
type ProjectConfig struct {
	ImportPaths []string `toml:"import_paths" validate:"omitempty,dive,required"`
	Extensions  []string `toml:"extensions" validate:"omitempty,dive,startswith=."`
}

// loadProjectConfig reads and validates a dsense.toml. A missing
// default config is not an error; a missing explicit -c file is.
func loadProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.Decode(string(content), &cfg); err != nil {
		return cfg, err
	}
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
