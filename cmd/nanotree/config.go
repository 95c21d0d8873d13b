package main

import (
	"encoding/json"
	"errors"
	"os"

	"dario.cat/mergo"
)

// config holds the settings every nanotree subcommand needs: where the
// loose-object store lives, which hash algorithm to use, and where the
// current root id is tracked between invocations (the CLI is stateless
// per process, so this file is its only persistent state).
type config struct {
	StoreDir string `json:"storeDir"`
	Algo     string `json:"algo"`
	RefFile  string `json:"refFile"`
}

func defaultConfig() config {
	return config{
		StoreDir: ".nanotree/objects",
		Algo:     "sha1",
		RefFile:  ".nanotree/HEAD",
	}
}

// loadConfig merges an optional JSON config file over the built-in
// defaults, then lets command-line flags (applied by the caller afterward)
// take final precedence. A missing config file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	var fromFile config
	if err := json.Unmarshal(data, &fromFile); err != nil {
		return cfg, err
	}

	if err := mergo.Merge(&cfg, fromFile, mergo.WithOverride); err != nil {
		return cfg, err
	}
	return cfg, nil
}
