package main

import (
	"github.com/spf13/viper"

	"github.com/denysRiman/privacy-preserving-auctions/boundary"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// defaultCircuitID and defaultMasterSeed match the deployment defaults
// named in the orchestration tool's external interface: H of fixed
// ASCII tags, used whenever the caller does not override them.
var (
	defaultCircuitID  = primitives.DomainHash([]byte("millionaires-yao-v1"))
	defaultMasterSeed = primitives.DomainHash([]byte("master-seed-v1"))
)

// sessionConfig bundles the flags common to every subcommand that touches
// a session's material.
type sessionConfig struct {
	BitWidth   int
	N          int
	CircuitID  [32]byte
	MasterSeed [32]byte
}

func loadSessionConfig() (*sessionConfig, error) {
	cfg := &sessionConfig{
		BitWidth:   viper.GetInt("bit-width"),
		N:          viper.GetInt("n"),
		CircuitID:  defaultCircuitID,
		MasterSeed: defaultMasterSeed,
	}

	if raw := viper.GetString("circuit-id"); raw != "" {
		v, err := boundary.DecodeBytes32(raw)
		if err != nil {
			return nil, err
		}
		cfg.CircuitID = v
	}
	if raw := viper.GetString("master-seed"); raw != "" {
		v, err := boundary.DecodeBytes32(raw)
		if err != nil {
			return nil, err
		}
		cfg.MasterSeed = v
	}
	return cfg, nil
}
