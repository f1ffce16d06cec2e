// Package config wires the application's settings schema into viper:
// registered defaults, the TOML config file and TWITCHY_* environment
// overrides.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/where"
)

// EnvKeyReplacer maps config key separators to environment variable form
// ("streamlink.quality" becomes "STREAMLINK_QUALITY" once prefixed).
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then loads the config
// file when one exists. A missing file is fine; defaults cover everything.
func Setup() error {
	viper.SetConfigName(constant.Twitchy)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Twitchy)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if _, missing := err.(viper.ConfigFileNotFoundError); missing {
		return nil
	}
	return err
}
