/*
 * Copyright (C) 2024 The "PowerMesh/locator" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package config stores app configuration: default values overlaid by the
// user TOML file overlaid by CLI flags.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
)

// Config stores app configuration: default values + user configuration + CLI flags
type Config struct {
	userConfigLocation string
	defaults           map[string]interface{}
	user               map[string]interface{}
	cli                map[string]interface{}
}

// Current global configuration instance
var Current *Config

func init() {
	Current = NewConfig()
}

// NewConfig creates a new configuration instance
func NewConfig() *Config {
	return &Config{
		defaults: make(map[string]interface{}),
		user:     make(map[string]interface{}),
		cli:      make(map[string]interface{}),
	}
}

// LoadUserConfig loads and remembers user config location
func (cfg *Config) LoadUserConfig(location string) error {
	log.Debug().Msg("Loading user configuration: " + location)
	cfg.userConfigLocation = location
	_, err := toml.DecodeFile(cfg.userConfigLocation, &cfg.user)
	if err != nil {
		return errors.Wrap(err, "failed to decode configuration file")
	}
	log.Info().Msgf("User configuration loaded: %+v", cfg.user)
	return nil
}

// SaveUserConfig saves user configuration to the file from which it was loaded
func (cfg *Config) SaveUserConfig() error {
	log.Info().Msg("Saving user configuration")
	if cfg.userConfigLocation == "" {
		return errors.New("user configuration cannot be saved, because it must be loaded first")
	}
	var out strings.Builder
	if err := toml.NewEncoder(&out).Encode(cfg.user); err != nil {
		return errors.Wrap(err, "failed to write configuration as toml")
	}
	if err := os.WriteFile(cfg.userConfigLocation, []byte(out.String()), 0700); err != nil {
		return errors.Wrap(err, "failed to write configuration to file")
	}
	return nil
}

// SetDefault sets default value for key
func (cfg *Config) SetDefault(key string, value interface{}) {
	set(cfg.defaults, key, value)
}

// SetUser sets user configuration value for key
func (cfg *Config) SetUser(key string, value interface{}) {
	set(cfg.user, key, value)
}

// SetCLI sets value passed via CLI flag for key
func (cfg *Config) SetCLI(key string, value interface{}) {
	set(cfg.cli, key, value)
}

// Get gets stored config value as-is, CLI flags taking precedence over the
// user file, the user file over defaults
func (cfg *Config) Get(key string) interface{} {
	segments := strings.Split(strings.ToLower(key), ".")
	if cliValue := searchMap(cfg.cli, segments); cliValue != nil {
		return cliValue
	}
	if userValue := searchMap(cfg.user, segments); userValue != nil {
		return userValue
	}
	return searchMap(cfg.defaults, segments)
}

// GetInt gets config value as int
func (cfg *Config) GetInt(key string) int {
	return cast.ToInt(cfg.Get(key))
}

// GetString gets config value as string
func (cfg *Config) GetString(key string) string {
	return cast.ToString(cfg.Get(key))
}

// GetBool gets config value as bool
func (cfg *Config) GetBool(key string) bool {
	return cast.ToBool(cfg.Get(key))
}

// GetFloat64 gets config value as float64
func (cfg *Config) GetFloat64(key string) float64 {
	return cast.ToFloat64(cfg.Get(key))
}

// GetDuration gets config value as time.Duration
func (cfg *Config) GetDuration(key string) time.Duration {
	return cast.ToDuration(cfg.Get(key))
}

// set stores the value under the dot-separated key, materializing nested
// maps along the way
func set(configMap map[string]interface{}, key string, value interface{}) {
	segments := strings.Split(strings.ToLower(key), ".")
	deepestMap := deepSearch(configMap, segments[:len(segments)-1])
	deepestMap[segments[len(segments)-1]] = value
}

// searchMap walks nested maps along the path, returning nil when any
// segment is missing
func searchMap(source map[string]interface{}, path []string) interface{} {
	if len(path) == 0 {
		return source
	}
	next, ok := source[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return next
	}
	switch typed := next.(type) {
	case map[string]interface{}:
		return searchMap(typed, path[1:])
	default:
		return nil
	}
}

// deepSearch returns the map at the given path, creating intermediate maps
// as needed
func deepSearch(source map[string]interface{}, path []string) map[string]interface{} {
	for _, segment := range path {
		next, ok := source[segment]
		if !ok {
			nextMap := make(map[string]interface{})
			source[segment] = nextMap
			source = nextMap
			continue
		}
		nextMap, ok := next.(map[string]interface{})
		if !ok {
			nextMap = make(map[string]interface{})
			source[segment] = nextMap
		}
		source = nextMap
	}
	return source
}
