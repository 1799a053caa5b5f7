// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the settings of the frompq command line tool from a yaml file.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dolthub/frompq/libraries/frompq/conv"
	"github.com/dolthub/frompq/store/value"
)

const (
	LogLevelKey    = "log_level"
	FormatKey      = "format"
	ByteModeKey    = "byte_mode"
	NumberModeKey  = "number_mode"
	ParallelismKey = "parallelism"
)

// Config holds every setting of the tool. Unset values take the default in the struct tag.
type Config struct {
	LogLevelStr   string `yaml:"log_level" default:"warning"`
	FormatStr     string `yaml:"format" default:"json"`
	ByteModeStr   string `yaml:"byte_mode" default:"binary"`
	NumberModeStr string `yaml:"number_mode" default:"float"`
	Parallelism   int    `yaml:"parallelism" default:"1"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}

	return cfg
}

// Parse reads a yaml config from |r|. Unknown keys are an error. An empty document yields the default config.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(cfg)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err = defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to apply config defaults")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads the config file at |path|.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file '%s'", path)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config file '%s'", path)
	}

	return cfg, nil
}

// Validate returns an error naming the first invalid setting.
func (cfg *Config) Validate() error {
	if _, err := logrus.ParseLevel(cfg.LogLevelStr); err != nil {
		return errors.Wrap(err, LogLevelKey)
	}

	if _, err := value.ParseFormat(cfg.FormatStr); err != nil {
		return errors.Wrap(err, FormatKey)
	}

	if _, err := conv.ParseByteMode(cfg.ByteModeStr); err != nil {
		return errors.Wrap(err, ByteModeKey)
	}

	if _, err := conv.ParseNumberMode(cfg.NumberModeStr); err != nil {
		return errors.Wrap(err, NumberModeKey)
	}

	if cfg.Parallelism < 0 {
		return errors.Errorf("%s: must not be negative, got %d", ParallelismKey, cfg.Parallelism)
	}

	return nil
}

// LogLevel returns the parsed log level. The config must be valid.
func (cfg *Config) LogLevel() logrus.Level {
	lvl, _ := logrus.ParseLevel(cfg.LogLevelStr)
	return lvl
}

// Format returns the parsed output format. The config must be valid.
func (cfg *Config) Format() value.Format {
	f, _ := value.ParseFormat(cfg.FormatStr)
	return f
}

// ConvOptions returns the field conversion options. The config must be valid.
func (cfg *Config) ConvOptions() conv.Options {
	bm, _ := conv.ParseByteMode(cfg.ByteModeStr)
	nm, _ := conv.ParseNumberMode(cfg.NumberModeStr)
	return conv.Options{ByteMode: bm, NumberMode: nm}
}

func (cfg *Config) String() string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
