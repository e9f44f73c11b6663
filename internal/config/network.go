package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
)

// localRPCURL is where anvil and hardhat nodes listen by default
const localRPCURL = "http://localhost:8545"

// explorers maps well-known chain IDs to their block explorer
var explorers = map[uint64]string{
	1:        "https://etherscan.io",
	11155111: "https://sepolia.etherscan.io",
	10:       "https://optimistic.etherscan.io",
	137:      "https://polygonscan.com",
	8453:     "https://basescan.org",
	42161:    "https://arbiscan.io",
	43114:    "https://snowtrace.io",
	56:       "https://bscscan.com",
	42220:    "https://celoscan.io",
}

// NetworkResolver resolves network names against foundry.toml [rpc_endpoints]
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig}
}

// Resolve resolves a network name, or a raw RPC URL, to its configuration.
// The chain ID is left at zero; it is read from the node when connecting.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if networkName == "" {
		return nil, fmt.Errorf("network not specified")
	}

	if r.foundryConfig != nil {
		if rpcURL, ok := r.foundryConfig.RpcEndpoints[networkName]; ok {
			if rpcURL == "" {
				return nil, fmt.Errorf("network '%s' has an empty RPC URL (is its env var set?)", networkName)
			}
			return &config.Network{
				Name:        networkName,
				RPCURL:      rpcURL,
				ExplorerURL: r.explorerURL(networkName, 0),
			}, nil
		}
	}

	if isRPCURL(networkName) {
		return &config.Network{
			Name:   "custom",
			RPCURL: networkName,
		}, nil
	}

	switch strings.ToLower(networkName) {
	case "localhost", "anvil", "hardhat":
		return &config.Network{
			Name:   strings.ToLower(networkName),
			RPCURL: localRPCURL,
		}, nil
	}

	return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints]", networkName)
}

// Networks returns the configured network names in alphabetical order
func (r *NetworkResolver) Networks() []string {
	if r.foundryConfig == nil {
		return nil
	}
	names := lo.Keys(r.foundryConfig.RpcEndpoints)
	sort.Strings(names)
	return names
}

// ExplorerURL returns the explorer for a network once its chain ID is known
func (r *NetworkResolver) ExplorerURL(networkName string, chainID uint64) string {
	return r.explorerURL(networkName, chainID)
}

func (r *NetworkResolver) explorerURL(networkName string, chainID uint64) string {
	if r.foundryConfig != nil {
		if etherscan, ok := r.foundryConfig.Etherscan[networkName]; ok && etherscan.URL != "" {
			return etherscan.URL
		}
	}
	return explorers[chainID]
}

func isRPCURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
