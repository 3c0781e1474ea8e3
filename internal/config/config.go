// Package config loads dt's settings: defaults, then the YAML config file,
// then DT_* environment variables. Command-line flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/dt-cli/internal/calendar"
	"github.com/salmonumbrella/dt-cli/internal/dateparse"
	"github.com/salmonumbrella/dt-cli/internal/dialect"
	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// AppName names the config directory.
const AppName = "dt"

// Environment variables read by ApplyEnv.
const (
	EnvLocale            = "DT_LOCALE"
	EnvTimezone          = "DT_TIMEZONE"
	EnvStripLeadingZeros = "DT_STRIP_LEADING_ZEROS"
	EnvStrict            = "DT_STRICT"
	EnvOS                = "DT_OS"
	EnvDayStart          = "DT_DAY_START"
	EnvDayEnd            = "DT_DAY_END"
)

// Settings are the process-wide defaults every command starts from.
type Settings struct {
	Locale string `yaml:"locale"`
	// Timezone is an IANA zone name; empty means the host zone.
	Timezone          string `yaml:"timezone"`
	StripLeadingZeros bool   `yaml:"strip_leading_zeros"`
	Strict            bool   `yaml:"strict"`
	// OS selects the strftime padding modifier ("windows" or anything else).
	OS       string `yaml:"os"`
	DayStart string `yaml:"day_start"`
	DayEnd   string `yaml:"day_end"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Locale:            dialect.DefaultLocale,
		StripLeadingZeros: true,
		OS:                runtime.GOOS,
		DayStart:          "05:00",
		DayEnd:            "21:00",
	}
}

// DefaultPath returns the config file location, usually
// $XDG_CONFIG_HOME/dt/config.yaml.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName, "config.yaml")
	}
	return filepath.Join("."+AppName, "config.yaml")
}

// Load returns the defaults overlaid with the file at path and the
// environment. An empty path reads DefaultPath, which may be missing; an
// explicit path must exist.
func Load(path string) (Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, cerrors.WithContext(err, "parsing config file "+path)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Settings{}, cerrors.WithContext(err, "reading config file")
	}

	if err := s.ApplyEnv(os.Getenv); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ApplyEnv overrides s with the DT_* variables that are set.
func (s *Settings) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvLocale)); v != "" {
		s.Locale = v
	}
	if v := strings.TrimSpace(getenv(EnvTimezone)); v != "" {
		s.Timezone = v
	}
	if v := strings.TrimSpace(getenv(EnvOS)); v != "" {
		s.OS = v
	}
	if v := strings.TrimSpace(getenv(EnvDayStart)); v != "" {
		s.DayStart = v
	}
	if v := strings.TrimSpace(getenv(EnvDayEnd)); v != "" {
		s.DayEnd = v
	}

	for name, dst := range map[string]*bool{
		EnvStripLeadingZeros: &s.StripLeadingZeros,
		EnvStrict:            &s.Strict,
	} {
		v := strings.TrimSpace(getenv(name))
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q (expected true or false)", name, v)
		}
		*dst = b
	}
	return nil
}

// Validate checks the zone name and the day window.
func (s Settings) Validate() error {
	if _, err := dateparse.LoadLocation(s.Timezone); err != nil {
		return err
	}
	start, err := calendar.ParseClock(s.DayStart)
	if err != nil {
		return cerrors.WithSuggestion(cerrors.WithContext(err, "day_start"), cerrors.SuggestionClock)
	}
	end, err := calendar.ParseClock(s.DayEnd)
	if err != nil {
		return cerrors.WithSuggestion(cerrors.WithContext(err, "day_end"), cerrors.SuggestionClock)
	}
	if end <= start {
		err := fmt.Errorf("%w: day_end %s must be after day_start %s", cerrors.ErrInvalidArgument, s.DayEnd, s.DayStart)
		return cerrors.WithSuggestion(err, cerrors.SuggestionClock)
	}
	return nil
}

// Marshal renders s as YAML, in the shape Load reads.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
