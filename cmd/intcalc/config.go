package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

// fileConfig is the optional intcalc.toml: persistent output defaults.
// Flags always win over the file.
type fileConfig struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

type outputOptions struct {
	color  bool
	format string
}

// findIntcalcToml walks up from startDir looking for intcalc.toml, the same
// way the compiler toolchains find their project manifest.
func findIntcalcToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "intcalc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// resolveOutputOptions merges flag values, the optional config file, and
// built-in defaults into concrete output options.
func resolveOutputOptions(cmd *cobra.Command) (outputOptions, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return outputOptions{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	formatFlag, err := cmd.Root().PersistentFlags().GetString("format")
	if err != nil {
		return outputOptions{}, fmt.Errorf("failed to get format flag: %w", err)
	}
	configFlag, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return outputOptions{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg fileConfig
	if configFlag != "" {
		cfg, err = loadFileConfig(configFlag)
		if err != nil {
			return outputOptions{}, err
		}
	} else if path, ok, err := findIntcalcToml(""); err != nil {
		return outputOptions{}, err
	} else if ok {
		cfg, err = loadFileConfig(path)
		if err != nil {
			return outputOptions{}, err
		}
	}

	colorMode := firstNonEmpty(colorFlag, cfg.Output.Color, "auto")
	format := firstNonEmpty(formatFlag, cfg.Output.Format, formatPretty)

	var useColor bool
	switch colorMode {
	case "on":
		useColor = true
	case "off":
		useColor = false
	case "auto":
		// Диагностика уходит в stderr, поэтому смотрим на него
		useColor = isTerminal(os.Stderr)
	default:
		return outputOptions{}, fmt.Errorf("unsupported color mode %q (must be auto, on, or off)", colorMode)
	}

	switch format {
	case formatPretty, formatJSON:
		// supported
	default:
		return outputOptions{}, fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	return outputOptions{color: useColor, format: format}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
