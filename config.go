// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesConfig is the YAML document form of a set of keep rules.
//
//	keep:
//	  - class: com.example.**
//	    methods:
//	      - name: get*
//	        args: ["java.lang.String", "..."]
//	        type: "***"
type RulesConfig struct {
	Keep []KeepRule `yaml:"keep"`
}

// LoadRules reads and validates keep rules from a YAML file.
func LoadRules(path string) ([]KeepRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRules(data)
}

// ParseRules decodes and validates keep rules from a YAML document.
func ParseRules(data []byte) ([]KeepRule, error) {
	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Join(ErrValidation, fmt.Errorf("parsing rules: %w", err))
	}

	for i := range cfg.Keep {
		if err := cfg.Keep[i].validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	return cfg.Keep, nil
}
