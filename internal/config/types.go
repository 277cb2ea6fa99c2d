// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/fopconsole/fop/internal/transform"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultInstallCommand installs a module through the PrestaShop console.
	DefaultInstallCommand CommandTemplate = "php bin/console prestashop:module install {{.Module}}"
	// DefaultUninstallCommand uninstalls a module through the PrestaShop console.
	DefaultUninstallCommand CommandTemplate = "php bin/console prestashop:module uninstall {{.Module}}"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidCommandTemplate is returned when a CommandTemplate does not parse.
	ErrInvalidCommandTemplate = errors.New("invalid command template")
	// ErrInvalidShopConfig is the sentinel error wrapped by InvalidShopConfigError.
	ErrInvalidShopConfig = errors.New("invalid shop config")
	// ErrInvalidRenameConfig is the sentinel error wrapped by InvalidRenameConfigError.
	ErrInvalidRenameConfig = errors.New("invalid rename config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// CommandTemplate is a shell command line parsed as a text/template.
	// The zero value ("") is valid and means "no command".
	CommandTemplate string

	// InvalidCommandTemplateError is returned when a CommandTemplate fails to parse.
	InvalidCommandTemplateError struct {
		Value CommandTemplate
		Err   error
	}

	// InvalidShopConfigError is returned when a ShopConfig has invalid fields.
	// It wraps ErrInvalidShopConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidShopConfigError struct {
		FieldErrors []error
	}

	// InvalidRenameConfigError is returned when a RenameConfig has invalid fields.
	InvalidRenameConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Shop locates the shop and the commands managing its modules
		Shop ShopConfig `json:"shop" mapstructure:"shop"`
		// Rename configures the module rename
		Rename RenameConfig `json:"rename" mapstructure:"rename"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// ShopConfig locates the shop and the commands managing its modules.
	ShopConfig struct {
		// Root is the shop root directory; commands run from here
		Root string `json:"root" mapstructure:"root"`
		// ModulesDir holds one directory per module, relative to Root unless absolute
		ModulesDir string `json:"modules_dir" mapstructure:"modules_dir"`
		// InstallCommand installs a module
		InstallCommand CommandTemplate `json:"install_command" mapstructure:"install_command"`
		// UninstallCommand uninstalls a module
		UninstallCommand CommandTemplate `json:"uninstall_command" mapstructure:"uninstall_command"`
		// StatusCommand exits 0 when a module is installed
		StatusCommand CommandTemplate `json:"status_command" mapstructure:"status_command"`
		// CoreUtils provides cat, cp, mkdir, mv, rm and touch to the commands
		// without relying on the host
		CoreUtils bool `json:"core_utils" mapstructure:"core_utils"`
	}

	// RenameConfig configures the module rename.
	RenameConfig struct {
		// Exclude lists doublestar patterns of subtrees left untouched
		Exclude []string `json:"exclude" mapstructure:"exclude"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Shop: ShopConfig{
			Root:             ".",
			ModulesDir:       "modules",
			InstallCommand:   DefaultInstallCommand,
			UninstallCommand: DefaultUninstallCommand,
			CoreUtils:        true,
		},
		Rename: RenameConfig{
			Exclude: append([]string(nil), transform.DefaultExclude...),
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// IsValid returns whether the Config has valid fields.
// It delegates to Shop.IsValid(), Rename.IsValid() and UI.ColorScheme.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Shop.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Rename.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether the ShopConfig has valid fields: non-blank
// directories and command templates that parse.
func (c ShopConfig) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.Root) == "" {
		errs = append(errs, errors.New("shop.root must not be empty"))
	}
	if strings.TrimSpace(c.ModulesDir) == "" {
		errs = append(errs, errors.New("shop.modules_dir must not be empty"))
	}
	for _, cmd := range []CommandTemplate{c.InstallCommand, c.UninstallCommand, c.StatusCommand} {
		if valid, fieldErrs := cmd.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidShopConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidShopConfigError.
func (e *InvalidShopConfigError) Error() string {
	return fmt.Sprintf("invalid shop config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidShopConfig for errors.Is() compatibility.
func (e *InvalidShopConfigError) Unwrap() error { return ErrInvalidShopConfig }

// IsValid returns whether every exclude pattern is a well-formed doublestar pattern.
func (c RenameConfig) IsValid() (bool, []error) {
	if err := transform.ValidateExclude(c.Exclude); err != nil {
		return false, []error{&InvalidRenameConfigError{FieldErrors: []error{err}}}
	}
	return true, nil
}

// Error implements the error interface for InvalidRenameConfigError.
func (e *InvalidRenameConfigError) Error() string {
	return fmt.Sprintf("invalid rename config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidRenameConfig for errors.Is() compatibility.
func (e *InvalidRenameConfigError) Unwrap() error { return ErrInvalidRenameConfig }

// String returns the string representation of the CommandTemplate.
func (t CommandTemplate) String() string { return string(t) }

// IsValid returns whether the CommandTemplate parses as a text/template.
func (t CommandTemplate) IsValid() (bool, []error) {
	if t == "" {
		return true, nil
	}
	if _, err := template.New("command").Option("missingkey=error").Parse(string(t)); err != nil {
		return false, []error{&InvalidCommandTemplateError{Value: t, Err: err}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCommandTemplateError.
func (e *InvalidCommandTemplateError) Error() string {
	return fmt.Sprintf("invalid command template %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidCommandTemplate for errors.Is() compatibility.
func (e *InvalidCommandTemplateError) Unwrap() error { return ErrInvalidCommandTemplate }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle returns the glamour style name matching the scheme.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark, ColorSchemeLight:
		return string(cs)
	default:
		return "auto"
	}
}

// ModulesPath returns the absolute-or-root-relative modules directory.
func (c ShopConfig) ModulesPath() string {
	if filepath.IsAbs(c.ModulesDir) {
		return c.ModulesDir
	}
	return filepath.Join(c.Root, c.ModulesDir)
}
