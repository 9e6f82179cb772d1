// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type RenderConfig struct {
	Indent int  `yaml:"indent"`
	Color  bool `yaml:"color"`
}

type SortConfig struct {
	Algorithm string `yaml:"algorithm"`
}

type BenchConfig struct {
	Sizes []int `yaml:"sizes"`
}

type Config struct {
	Render RenderConfig `yaml:"render"`
	Sort   SortConfig   `yaml:"sort"`
	Bench  BenchConfig  `yaml:"bench"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		Indent: 4,
		Color:  true,
	},
	Sort: SortConfig{
		Algorithm: algoTree,
	},
	Bench: BenchConfig{
		Sizes: []int{1000, 10000, 100000},
	},
}

// LoadConfig reads ~/.treelab.yaml. Any failure along the way falls back
// to the compiled-in defaults rather than surfacing an error.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".treelab.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	if config.Render.Indent <= 0 {
		config.Render.Indent = defaultConfig.Render.Indent
	}
	if config.Sort.Algorithm == "" {
		config.Sort.Algorithm = defaultConfig.Sort.Algorithm
	}
	if len(config.Bench.Sizes) == 0 {
		config.Bench.Sizes = defaultConfig.Bench.Sizes
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".treelab.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}
