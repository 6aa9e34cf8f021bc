package common

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type TokenConfig struct {
	Symbol   string `yaml:"symbol"`
	Decimals int32  `yaml:"decimals"`
}

type AllocationConfig struct {
	Account string `yaml:"account"`
	Amount  string `yaml:"amount"`
}

// GenesisConfig describes the token and the balances minted at setup time.
type GenesisConfig struct {
	Token       TokenConfig        `yaml:"token"`
	Allocations []AllocationConfig `yaml:"allocations"`
}

func LoadGenesis(genesisFile string) (*GenesisConfig, error) {
	var genesisPath string
	if filepath.IsAbs(genesisFile) {
		genesisPath = genesisFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		genesisPath = filepath.Join(wd, genesisFile)
	}

	data, err := os.ReadFile(genesisPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", genesisFile, err)
	}

	var config GenesisConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", genesisFile, err)
	}

	if config.Token.Symbol == "" {
		return nil, fmt.Errorf("genesis token missing symbol")
	}
	if config.Token.Decimals < 0 || config.Token.Decimals > 18 {
		return nil, fmt.Errorf("genesis token decimals must be between 0 and 18, got %d", config.Token.Decimals)
	}
	for i, allocation := range config.Allocations {
		if allocation.Account == "" {
			return nil, fmt.Errorf("allocation at index %d missing account", i)
		}
		if allocation.Amount == "" {
			return nil, fmt.Errorf("allocation at index %d missing amount", i)
		}
	}

	return &config, nil
}
