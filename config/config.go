//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2021-present Detlef Stern
//-----------------------------------------------------------------------------

// Package config provides the configuration of a parse run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"zettelstore.de/wikitree/logger"
	"zettelstore.de/wikitree/reference"
	"zettelstore.de/wikitree/strfun"
)

// Values for the dump format.
const (
	FormatNative = "native"
	FormatTree   = "tree"
	FormatText   = "text"
)

// Formats contains all valid dump formats.
var Formats = strfun.NewSet(FormatNative, FormatTree, FormatText)

// Values for the style of header anchors.
const (
	AnchorsHeader = "header" // "H" followed by letters and digits: HGettingStarted
	AnchorsSlug   = "slug"   // lower case, separated by dashes: getting-started
)

// Config stores all settings of the tool.
type Config struct {
	WikiMode       bool     `yaml:"wiki-mode"`
	Syntax         string   `yaml:"syntax"`
	LogLevel       string   `yaml:"log-level"`
	Format         string   `yaml:"format"`
	ReferenceTypes []string `yaml:"reference-types"`
	Anchors        string   `yaml:"anchors"`
}

// Default returns the configuration that is used when no file is given.
func Default() *Config {
	return &Config{
		WikiMode:       true,
		Syntax:         "markdown",
		LogLevel:       logger.InfoLevel.String(),
		Format:         FormatNative,
		ReferenceTypes: reference.BuiltinKeys(),
		Anchors:        AnchorsHeader,
	}
}

// Load reads the YAML file at path. Settings not mentioned in the file keep
// their default value. Environment variables in the file are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse the YAML data into a configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks all settings and returns every problem found.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Syntax == "" {
		errs = append(errs, errors.New("syntax must not be empty"))
	}
	if lvl := logger.ParseLevel(cfg.LogLevel); !lvl.IsValid() {
		errs = append(errs, fmt.Errorf("unknown log level %q", cfg.LogLevel))
	}
	if !Formats.Has(cfg.Format) {
		errs = append(errs, fmt.Errorf("unknown format %q, use one of %v", cfg.Format, Formats.Sorted()))
	}
	if cfg.Anchors != AnchorsHeader && cfg.Anchors != AnchorsSlug {
		errs = append(errs, fmt.Errorf("unknown anchor style %q", cfg.Anchors))
	}
	known := strfun.NewSet(reference.BuiltinKeys()...)
	for _, key := range cfg.ReferenceTypes {
		if !known.Has(key) {
			errs = append(errs, fmt.Errorf("unknown reference type %q", key))
		}
	}
	return errors.Join(errs...)
}

// Level returns the log level.
func (cfg *Config) Level() logger.Level {
	if lvl := logger.ParseLevel(cfg.LogLevel); lvl.IsValid() {
		return lvl
	}
	return logger.InfoLevel
}

// Registry returns a frozen reference type registry with the configured
// reference types.
func (cfg *Config) Registry() (*reference.Registry, error) {
	return reference.NewRegistryWith(cfg.ReferenceTypes...)
}

// IDGenerator returns a fresh generator for header anchors of one document.
func (cfg *Config) IDGenerator() *strfun.IDGenerator {
	if cfg.Anchors == AnchorsSlug {
		return strfun.NewSlugGenerator()
	}
	return strfun.NewAnchorGenerator()
}

// WikiModeCapability returns the configured wiki mode for resolvers.
func (cfg *Config) WikiModeCapability() reference.WikiMode {
	return reference.StaticWikiMode(cfg.WikiMode)
}
