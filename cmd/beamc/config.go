package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/riftlang/beamdriver"
)

type buildConfig struct {
	Out         string
	Lib         string
	Escript     string
	ArtifactDir string
	Verbose     bool
}

type fileConfig struct {
	Out         string `toml:"out"`
	Lib         string `toml:"lib"`
	Escript     string `toml:"escript"`
	ArtifactDir string `toml:"artifact_dir"`
	Verbose     bool   `toml:"verbose"`
}

func defaultConfig() buildConfig {
	return buildConfig{
		ArtifactDir: beamdriver.DefaultArtifactDir,
	}
}

func loadConfig(path string) (buildConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return buildConfig{}, fmt.Errorf("load beamc config: %w", err)
	}

	if meta.IsDefined("out") {
		cfg.Out = strings.TrimSpace(raw.Out)
	}

	if meta.IsDefined("lib") {
		cfg.Lib = strings.TrimSpace(raw.Lib)
	}

	if meta.IsDefined("escript") {
		cfg.Escript = strings.TrimSpace(raw.Escript)
	}

	if meta.IsDefined("artifact_dir") {
		dir := strings.TrimSpace(raw.ArtifactDir)
		if dir != "" {
			cfg.ArtifactDir = dir
		}
	}

	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}
