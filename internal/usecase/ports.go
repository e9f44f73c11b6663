package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
)

// ContractFactoryProvider turns a contract name into a deployable factory
type ContractFactoryProvider interface {
	GetContractFactory(ctx context.Context, name string) (ContractFactory, error)
}

// ContractFactory constructs and deploys one contract type
type ContractFactory interface {
	Signer() Signer
	// Contract returns the artifact the factory was built from
	Contract() *models.Contract
	DeployTransaction(args ...any) (*models.DeployTransaction, error)
	Deploy(ctx context.Context, args ...any) (PendingDeployment, error)
}

// Signer is the funded account paying for the deployment
type Signer interface {
	Address() common.Address
	ChainID() uint64
	GetBalance(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, tx *models.DeployTransaction) (uint64, error)
	GetGasPrice(ctx context.Context) (*big.Int, error)
}

// PendingDeployment is a submitted creation transaction
type PendingDeployment interface {
	Address() common.Address
	TxHash() common.Hash
	// Deployed blocks until the network confirms the contract creation
	Deployed(ctx context.Context) error
}

// ContractRepository provides access to compiled contracts
type ContractRepository interface {
	GetContract(ctx context.Context, key string) (*models.Contract, error)
	GetContractsByName(ctx context.Context, name string) ([]*models.Contract, error)
	GetAllContracts(ctx context.Context) ([]*models.Contract, error)
}

// ContractResolver resolves a user supplied name to exactly one contract
type ContractResolver interface {
	ResolveContract(ctx context.Context, name string) (*models.Contract, error)
}

// ContractSelector picks one contract when a name is ambiguous
type ContractSelector interface {
	SelectContract(ctx context.Context, contracts []*models.Contract, prompt string) (*models.Contract, error)
}

// DeploymentStore handles persistence of deployments
type DeploymentStore interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	GetDeployment(ctx context.Context, id string) (*models.Deployment, error)
}

// DeployReporter receives the console report of a deployment as it happens
type DeployReporter interface {
	ReportBalance(ctx context.Context, signer common.Address, balance *big.Int)
	ReportGasEstimate(ctx context.Context, contractName string, estimate models.GasEstimate)
	ReportDeploying(ctx context.Context, contractName string, txHash common.Hash)
	ReportDeployed(ctx context.Context, contract models.DeployedContract)
}

// NetworkResolver lists and resolves configured networks
type NetworkResolver interface {
	Networks() []string
	Resolve(name string) (*config.Network, error)
	ExplorerURL(name string, chainID uint64) string
}

// ChainIDFetcher reads the chain ID from an RPC endpoint
type ChainIDFetcher interface {
	FetchChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// DeploymentLister reads back recorded deployments
type DeploymentLister interface {
	ListDeployments(ctx context.Context, chainID uint64) []*models.Deployment
}

// NodeManager controls a local anvil node
type NodeManager interface {
	Node(name, port, chainID string) *models.LocalNode
	Start(ctx context.Context, node *models.LocalNode) error
	Stop(ctx context.Context, node *models.LocalNode) error
	GetStatus(ctx context.Context, node *models.LocalNode) (*models.NodeStatus, error)
}
