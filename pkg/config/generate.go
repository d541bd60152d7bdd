package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/fscode/pkg/errors"
)

// EffectiveTOML renders the merged configuration as TOML, as shown by
// `fscode config`.
func EffectiveTOML(cfg *Config) (string, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
