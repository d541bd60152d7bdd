// Package config loads fscode's configuration by layering embedded
// defaults, the user's config file, and FSCODE_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/paths"
)

// Cycle policies accepted in [cycle] policy
const (
	PolicyDetour   = "detour"
	PolicyExchange = "exchange"
)

// Config is the fully merged fscode configuration.
type Config struct {
	// Editor is the editor command line. Empty means fall back to
	// $VISUAL, then $EDITOR, then "vi".
	Editor string `koanf:"editor" toml:"editor"`

	// Suffix is appended to the temporary edit file name so editors
	// pick a sensible mode.
	Suffix string `koanf:"suffix" toml:"suffix"`

	// Output is the path of the generated script.
	Output string `koanf:"output" toml:"output"`

	// Prefix is prepended to every generated command line.
	Prefix string `koanf:"prefix" toml:"prefix"`

	Cycle    CycleConfig    `koanf:"cycle" toml:"cycle"`
	Commands CommandsConfig `koanf:"commands" toml:"commands"`
}

// CycleConfig selects how rename cycles are broken.
type CycleConfig struct {
	// Policy is "detour" (route one move through a temporary path)
	// or "exchange" (atomic pairwise swaps).
	Policy string `koanf:"policy" toml:"policy"`

	// Template is the base name for temporary detour paths.
	Template string `koanf:"template" toml:"template"`

	// Rotate allows the exchange policy to decompose cycles longer
	// than two into a sequence of pairwise swaps.
	Rotate bool `koanf:"rotate" toml:"rotate"`

	// Fallback falls back to the detour policy when exchange cannot
	// handle a cycle; when false, planning fails instead.
	Fallback bool `koanf:"fallback" toml:"fallback"`
}

// CommandsConfig holds the command templates the script emitter uses.
type CommandsConfig struct {
	Move     string `koanf:"move" toml:"move"`
	Copy     string `koanf:"copy" toml:"copy"`
	Remove   string `koanf:"remove" toml:"remove"`
	Create   string `koanf:"create" toml:"create"`
	Link     string `koanf:"link" toml:"link"`
	Exchange string `koanf:"exchange" toml:"exchange"`
}

// Load layers defaults, the user config file, and FSCODE_* env vars.
func Load() (*Config, error) {
	return loadFrom(paths.ConfigFile())
}

func loadFrom(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, if present
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", userConfigPath)
		}
	}

	// 3. Environment overrides: FSCODE_CYCLE_POLICY -> cycle.policy
	err := k.Load(env.Provider("FSCODE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FSCODE_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the planner cannot honor.
func (c *Config) Validate() error {
	switch c.Cycle.Policy {
	case PolicyDetour, PolicyExchange:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown cycle policy %q", c.Cycle.Policy).
			WithDetail("policy", c.Cycle.Policy)
	}
	if c.Cycle.Template == "" {
		return errors.New(errors.ErrConfigValid, "cycle temp path template must not be empty")
	}
	for name, cmd := range map[string]string{
		"move":   c.Commands.Move,
		"copy":   c.Commands.Copy,
		"remove": c.Commands.Remove,
		"create": c.Commands.Create,
		"link":   c.Commands.Link,
	} {
		if strings.TrimSpace(cmd) == "" {
			return errors.Newf(errors.ErrConfigValid, "command template %q must not be empty", name).
				WithDetail("command", name)
		}
	}
	if c.Cycle.Policy == PolicyExchange && strings.TrimSpace(c.Commands.Exchange) == "" {
		return errors.New(errors.ErrConfigValid, "exchange policy requires an exchange command template")
	}
	return nil
}
