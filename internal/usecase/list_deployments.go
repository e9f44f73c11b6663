package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	ContractName string
	// AllChains lists records from every chain instead of the configured network
	AllChains bool
}

// ListDeploymentsResult contains the recorded deployments, oldest first
type ListDeploymentsResult struct {
	ChainID     uint64
	Deployments []*models.Deployment
}

// ListDeployments is the use case for listing recorded deployments
type ListDeployments struct {
	config  *config.RuntimeConfig
	lister  DeploymentLister
	fetcher ChainIDFetcher
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, lister DeploymentLister, fetcher ChainIDFetcher) *ListDeployments {
	return &ListDeployments{
		config:  cfg,
		lister:  lister,
		fetcher: fetcher,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*ListDeploymentsResult, error) {
	var chainID uint64
	if !params.AllChains {
		network := uc.config.Network
		if network == nil {
			return nil, fmt.Errorf("network not specified")
		}
		chainID = network.ChainID
		if chainID == 0 {
			fetched, err := uc.fetcher.FetchChainID(ctx, network.RPCURL)
			if err != nil {
				return nil, fmt.Errorf("failed to get chain ID for %s: %w", network.Name, err)
			}
			chainID = fetched
		}
	}

	deployments := uc.lister.ListDeployments(ctx, chainID)
	if params.ContractName != "" {
		deployments = lo.Filter(deployments, func(dep *models.Deployment, _ int) bool {
			return dep.ContractName == params.ContractName
		})
	}

	return &ListDeploymentsResult{
		ChainID:     chainID,
		Deployments: deployments,
	}, nil
}
