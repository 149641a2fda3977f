package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config is the shape of .rustcst.yaml: everything is optional and a flag of
// the same name always overrides it.
type config struct {
	MaxDepth int    `yaml:"maxDepth"`
	Format   string `yaml:"format"`
}

// loadConfig reads path if it is non-empty, falling back to ".rustcst.yaml" in
// the working directory when neither was requested explicitly. A missing
// default file is not an error; a missing explicit path is.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if path == "" {
		path = ".rustcst.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return config{}, nil
		}
		return config{}, err
	}
	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return config{}, err
	}
	return c, nil
}

// resolveFormat applies the precedence: --format flag, then config, then the
// "json" default.
func resolveFormat(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return "json"
}

// resolveMaxDepth applies the precedence: --max-depth flag, then config, then
// leave the parser's built-in default untouched (0 means "unset").
func resolveMaxDepth(flagValue, configValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configValue
}
