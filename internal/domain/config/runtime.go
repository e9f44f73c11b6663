package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Profile string   // Foundry profile to read [profile.<name>] from
	Network *Network // resolved network to deploy to
	Sender  string   // sender name under [profile.<name>.treb.senders]

	// Deployment settings
	Contract  string // contract deployed when no name is given
	SkipBuild bool   // don't run forge build before indexing artifacts

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration // 0 means wait indefinitely

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// IsLocal reports whether the network is a local development node
func (n *Network) IsLocal() bool {
	return n.ChainID == 31337 || n.Name == "localhost" || n.Name == "anvil" || n.Name == "hardhat"
}
