// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fopconsole/fop/internal/issue"
	"github.com/fopconsole/fop/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "fop"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the fop configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the path of the user config file inside ConfigDir.
func ConfigFilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions loads defaults, then the first config file found, and
// validates the result. It returns the path that was loaded ("" for defaults only).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("shop.root", defaults.Shop.Root)
	v.SetDefault("shop.modules_dir", defaults.Shop.ModulesDir)
	v.SetDefault("shop.install_command", defaults.Shop.InstallCommand)
	v.SetDefault("shop.uninstall_command", defaults.Shop.UninstallCommand)
	v.SetDefault("shop.status_command", defaults.Shop.StatusCommand)
	v.SetDefault("shop.core_utils", defaults.Shop.CoreUtils)
	v.SetDefault("rename.exclude", defaults.Rename.Exclude)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	candidates, explicit, err := candidatePaths(opts)
	if err != nil {
		return nil, "", err
	}

	resolvedPath := ""
	for _, path := range candidates {
		if !fileExists(path) {
			continue
		}
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'fop config show' to see the effective configuration").
				Wrap(err).
				BuildError()
		}
		resolvedPath = path
		break
	}

	if explicit && resolvedPath == "" {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			WithSuggestion("Run 'fop config init' to create a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Command templates use Go template syntax, e.g. {{.Module}}").
			WithSuggestion("Exclude patterns use doublestar syntax, e.g. vendor or **/cache").
			Wrap(validationError(errs)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// candidatePaths lists config files in lookup order. An explicit file path
// is the only candidate and must exist.
func candidatePaths(opts LoadOptions) (paths []string, explicit bool, err error) {
	if opts.ConfigFilePath != "" {
		return []string{opts.ConfigFilePath}, true, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		if cfgDir, err = ConfigDir(); err != nil {
			return nil, false, err
		}
	}

	name := ConfigFileName + "." + ConfigFileExt
	return []string{filepath.Join(cfgDir, name), name}, false, nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges the
// fields it sets into v. Config fields are all optional, so the document is
// decoded to a map rather than a Config to keep viper's defaults for the rest.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, "#Config", data, cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func validationError(errs []error) error {
	var lines []string
	var walk func(errs []error, indent string)
	walk = func(errs []error, indent string) {
		for _, err := range errs {
			lines = append(lines, indent+err.Error())
			switch e := err.(type) {
			case *InvalidConfigError:
				walk(e.FieldErrors, indent+"  ")
			case *InvalidShopConfigError:
				walk(e.FieldErrors, indent+"  ")
			case *InvalidRenameConfigError:
				walk(e.FieldErrors, indent+"  ")
			}
		}
	}
	walk(errs, "")
	return fmt.Errorf("%w:\n%s", ErrInvalidConfig, strings.Join(lines, "\n"))
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default config file unless one already
// exists. It returns the path and whether a file was written.
func CreateDefaultConfig() (string, bool, error) {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := Save(DefaultConfig()); err != nil {
		return "", false, err
	}
	return cfgPath, true, nil
}

// Save writes cfg to the user config file.
func Save(cfg *Config) error {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// fop configuration file\n\n")

	sb.WriteString("shop: {\n")
	fmt.Fprintf(&sb, "\troot: %q\n", cfg.Shop.Root)
	fmt.Fprintf(&sb, "\tmodules_dir: %q\n", cfg.Shop.ModulesDir)
	fmt.Fprintf(&sb, "\tinstall_command: %q\n", cfg.Shop.InstallCommand)
	fmt.Fprintf(&sb, "\tuninstall_command: %q\n", cfg.Shop.UninstallCommand)
	fmt.Fprintf(&sb, "\tstatus_command: %q\n", cfg.Shop.StatusCommand)
	fmt.Fprintf(&sb, "\tcore_utils: %v\n", cfg.Shop.CoreUtils)
	sb.WriteString("}\n")

	sb.WriteString("\nrename: {\n")
	sb.WriteString("\texclude: [")
	for i, pattern := range cfg.Rename.Exclude {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", pattern)
	}
	sb.WriteString("]\n")
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
