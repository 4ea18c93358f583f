// Package config holds the network profiles the decoders depend on: which
// network the payloads come from and what its native asset is called.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Profile describes one network the tool can decode for.
type Profile struct {
	Name        string `mapstructure:"name"`
	NetworkID   uint32 `mapstructure:"network_id"`
	NativeAsset string `mapstructure:"native_asset"`
}

// Config is the resolved tool configuration.
type Config struct {
	// Network selects the active profile by name.
	Network  string             `mapstructure:"network"`
	Profiles map[string]Profile `mapstructure:"profiles"`
}

// Active returns the selected network profile.
func (c *Config) Active() (Profile, error) {
	profile, ok := c.Profiles[c.Network]
	if !ok {
		return Profile{}, fmt.Errorf("unknown network profile: %s", c.Network)
	}
	return profile, nil
}

// Load builds the configuration in priority order:
// 1. Built-in defaults (mainnet and xahau profiles)
// 2. Configuration file, when a path is given
// 3. Environment variables (LEDGERLENS_ prefix)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("LEDGERLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network", "mainnet")

	v.SetDefault("profiles.mainnet.name", "mainnet")
	v.SetDefault("profiles.mainnet.network_id", 0)
	v.SetDefault("profiles.mainnet.native_asset", "XRP")

	v.SetDefault("profiles.xahau.name", "xahau")
	v.SetDefault("profiles.xahau.network_id", 21337)
	v.SetDefault("profiles.xahau.native_asset", "XAH")
}

func validate(config *Config) error {
	if config.Network == "" {
		return fmt.Errorf("network cannot be empty")
	}
	if len(config.Profiles) == 0 {
		return fmt.Errorf("no network profiles configured")
	}
	for name, profile := range config.Profiles {
		if profile.NativeAsset == "" {
			return fmt.Errorf("profile %s has no native asset", name)
		}
	}
	if _, ok := config.Profiles[config.Network]; !ok {
		return fmt.Errorf("selected network %s has no profile", config.Network)
	}
	return nil
}
