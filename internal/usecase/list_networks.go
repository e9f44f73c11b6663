package usecase

import (
	"context"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name     string
	RPCURL   string
	ChainID  uint64
	Explorer string
	Error    error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	fetcher  ChainIDFetcher
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, fetcher ChainIDFetcher) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		fetcher:  fetcher,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.resolver.Networks()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{
			Name: name,
		}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = network.RPCURL
		status.Explorer = network.ExplorerURL

		chainID, err := uc.fetcher.FetchChainID(ctx, network.RPCURL)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = chainID
			status.Explorer = uc.resolver.ExplorerURL(name, chainID)
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
