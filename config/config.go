// Package config holds settings for the shell and the autoplayer. Values
// come from defaults, an optional config.yaml in the data path, OTHELLO_
// environment variables and --key=value arguments, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ConfigDebug           = "debug"
	ConfigDefaultDepth    = "default-depth"
	ConfigThreads         = "threads"
	ConfigDataPath        = "data-path"
	ConfigAutoplayLogfile = "autoplay-logfile"
	ConfigCPUProfile      = "cpu-profile"
	ConfigMemProfile      = "mem-profile"
	ConfigOpeningPlies    = "autoplay-opening-plies"
)

const configFilename = "config.yaml"

type Config struct {
	*viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigDefaultDepth, 3)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigAutoplayLogfile, "/tmp/othello-autoplay.csv")
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
	c.SetDefault(ConfigOpeningPlies, 0)
	c.SetEnvPrefix("OTHELLO")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c
}

// Load reads the config file (if there is one) and then applies the
// given command-line arguments, which look like --key=value or --flag.
// A relative data path is resolved against basepath, the directory of the
// executable, so reads and writes of config.yaml land in the same place.
// An empty basepath leaves relative paths alone.
func (c *Config) Load(args []string, basepath string) error {
	if c.Viper == nil {
		*c = *DefaultConfig()
	}
	overrides := map[string]string{}
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			return fmt.Errorf("unrecognized argument %q", arg)
		}
		k, v, found := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !found {
			v = "true"
		}
		overrides[k] = v
	}
	// The data path can itself be overridden, so it decides where the
	// config file is looked for.
	dataPath := c.GetString(ConfigDataPath)
	if dp, ok := overrides[ConfigDataPath]; ok {
		dataPath = dp
	}
	if basepath != "" && dataPath != "" && !filepath.IsAbs(dataPath) {
		dataPath = filepath.Join(basepath, dataPath)
	}
	c.SetConfigFile(filepath.Join(dataPath, configFilename))
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config: %w", err)
		}
		log.Debug().Str("path", dataPath).Msg("no-config-file")
	}
	for k, v := range overrides {
		c.Set(k, v)
	}
	if basepath != "" {
		c.AdjustRelativePaths(basepath)
	}
	return nil
}

// AdjustRelativePaths makes relative paths absolute with respect to the
// directory the executable lives in.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigDataPath} {
		p := c.GetString(key)
		if p != "" && !filepath.IsAbs(p) {
			c.Set(key, filepath.Join(basepath, p))
		}
	}
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// Write saves the current settings to config.yaml in the data path.
func (c *Config) Write() error {
	dataPath := c.GetString(ConfigDataPath)
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return err
	}
	return c.WriteConfigAs(filepath.Join(dataPath, configFilename))
}

// ToDisplayText renders the settings as YAML, keys sorted.
func (c *Config) ToDisplayText() string {
	out, err := yaml.Marshal(c.AllSettings())
	if err != nil {
		return fmt.Sprintf("error rendering config: %v", err)
	}
	return string(out)
}
