// Package cfg allows for reading the user's configuration.
package cfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/emberwm/ember/internal/log"
	"github.com/emberwm/ember/internal/res"
)

// Input backend names accepted in configuration.
var backendNames = map[string]bool{
	"":      true,
	"auto":  true,
	"x11":   true,
	"evdev": true,
}

// Input contains the input backend settings.
type Input struct {
	// Which backend provides raw input events: "auto" picks the nested X11
	// backend when a DISPLAY is available and evdev otherwise.
	Backend string `toml:"backend"`
}

// Output describes a display output and its place in the logical
// coordinate space. The first output is the primary output.
type Output struct {
	Name     string    `toml:"name"`
	Geometry Rectangle `toml:"geometry"`
}

// Profile contains an entire configuration profile.
type Profile struct {
	LogLevel string `toml:"log_level"` // Log visibility level

	Input    Input     `toml:"input"`
	Outputs  []Output  `toml:"outputs"`
	Keybinds []Keybind `toml:"keybinds"` // In priority order
}

// Rectangle is a rectangle. That's it.
type Rectangle struct {
	X, Y, W, H uint32
}

// GetDirectory returns the path to the user's configuration directory.
func GetDirectory() (string, error) {
	// UserConfigDir automatically checks for $XDG_CONFIG_HOME and falls back
	// to $HOME/.config, so we don't need to do any special checks ourselves.
	xdgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return xdgDir + "/ember/", nil
}

// GetProfile returns a parsed configuration profile.
func GetProfile(name string) (Profile, error) {
	dir, err := GetDirectory()
	if err != nil {
		return Profile{}, fmt.Errorf("get config directory: %w", err)
	}
	file, err := os.ReadFile(dir + name + ".toml")
	if err != nil {
		return Profile{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseProfile(file)
}

// ParseProfile parses and validates a configuration profile.
func ParseProfile(data []byte) (Profile, error) {
	profile := Profile{}
	if err := toml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := validateProfile(&profile); err != nil {
		return Profile{}, fmt.Errorf("validate config: %w", err)
	}
	return profile, nil
}

// MakeProfile makes a new configuration profile with the given name and the
// default settings.
func MakeProfile(name string) error {
	dir, err := GetDirectory()
	if err != nil {
		return fmt.Errorf("get config directory: %w", err)
	}
	stat, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			err := os.Mkdir(dir, 0755)
			if err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
		}
	} else {
		if !stat.IsDir() {
			return fmt.Errorf("config directory (%s) is not a directory", dir)
		}
	}
	return os.WriteFile(
		dir+name+".toml",
		res.DefaultConfig,
		0644,
	)
}

// validateProfile ensures that the user's configuration profile does not
// have any illegal or invalid settings.
func validateProfile(conf *Profile) error {
	if conf.LogLevel == "" {
		conf.LogLevel = "info"
	}
	if _, ok := log.FromName(conf.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q", conf.LogLevel)
	}
	if !backendNames[conf.Input.Backend] {
		return fmt.Errorf("invalid input backend %q", conf.Input.Backend)
	}
	for _, output := range conf.Outputs {
		if output.Geometry.W == 0 || output.Geometry.H == 0 {
			return fmt.Errorf("output %q has no size", output.Name)
		}
	}

	// Duplicate binds are legal (the first match wins) but almost always a
	// configuration mistake, so point them out.
	seen := make(map[string]bool)
	for _, kb := range conf.Keybinds {
		if seen[kb.Bind.String()] {
			log.Warn("Bind %q appears more than once; only the first is used.", kb.Bind)
		}
		seen[kb.Bind.String()] = true
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *Rectangle) UnmarshalTOML(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("rectangle value was not a string")
	}
	n, err := fmt.Sscanf(str, "%dx%d+%d,%d", &r.W, &r.H, &r.X, &r.Y)
	if err != nil {
		return err
	}
	if n != 4 {
		return errors.New("missing rectangle dimensions")
	}
	return nil
}
