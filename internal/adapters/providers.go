package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/anvil"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/blockchain"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/repository/contracts"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/repository/deployments"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/resolvers"
	internalconfig "github.com/trebuchet-org/treb-deploy/internal/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// ProvideNetworkResolver provides a network resolver over the loaded foundry config
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *internalconfig.NetworkResolver {
	return internalconfig.NewNetworkResolver(cfg.FoundryConfig)
}

// RepositorySet provides artifact and deployment record storage
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.Repository)),

	deployments.NewFileRepositoryFromConfig,
	wire.Bind(new(usecase.DeploymentStore), new(*deployments.FileRepository)),
	wire.Bind(new(usecase.DeploymentLister), new(*deployments.FileRepository)),
)

// ResolverSet provides name resolution for contracts
var ResolverSet = wire.NewSet(
	resolvers.NewContractResolver,
	wire.Bind(new(usecase.ContractResolver), new(*resolvers.ContractResolver)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.SelectorAdapter)),

	progress.NewIndicator,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewFactoryProvider,
	wire.Bind(new(usecase.ContractFactoryProvider), new(*blockchain.FactoryProvider)),

	blockchain.NewChainIDFetcher,
	wire.Bind(new(usecase.ChainIDFetcher), new(*blockchain.ChainIDFetcher)),
)

// NodeSet provides local node management
var NodeSet = wire.NewSet(
	anvil.NewManager,
	wire.Bind(new(usecase.NodeManager), new(*anvil.Manager)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	NodeSet,
	RepositorySet,
	ResolverSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
