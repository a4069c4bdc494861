// Package config centralizes directory layout and environment settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"scenecut/segmenter"
)

// Settings holds the resolved directory layout for one process.
type Settings struct {
	OutputDir    string
	AlignDir     string
	SegmenterDir string
}

// Load reads .env when present and resolves the output tree from the
// environment. Directories are not created here; see EnsureDirs.
func Load() Settings {
	// Missing .env is fine, the environment still applies.
	_ = godotenv.Load()

	outputDir := os.Getenv("SCENECUT_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "./output"
	}
	return FromOutputDir(outputDir)
}

// FromOutputDir derives the full layout from a root output directory.
func FromOutputDir(outputDir string) Settings {
	return Settings{
		OutputDir:    outputDir,
		AlignDir:     filepath.Join(outputDir, "alignments"),
		SegmenterDir: filepath.Join(outputDir, "segmenter"),
	}
}

// EnsureDirs creates the output tree.
func (s Settings) EnsureDirs() error {
	for _, dir := range []string{s.AlignDir, s.SegmenterDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// LoadSegmenterDefaults reads pacing limits from an optional YAML file.
// An empty path returns the stock defaults. Fields left out of the file
// keep their default values.
func LoadSegmenterDefaults(path string) (segmenter.Config, error) {
	cfg := segmenter.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
