package usecase_test

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// MockFactoryProvider is a mock implementation of ContractFactoryProvider
type MockFactoryProvider struct {
	mock.Mock
}

func (m *MockFactoryProvider) GetContractFactory(ctx context.Context, name string) (usecase.ContractFactory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ContractFactory), args.Error(1)
}

// MockFactory is a mock implementation of ContractFactory
type MockFactory struct {
	mock.Mock
	signer   usecase.Signer
	contract *models.Contract
}

func (m *MockFactory) Signer() usecase.Signer {
	return m.signer
}

func (m *MockFactory) Contract() *models.Contract {
	return m.contract
}

func (m *MockFactory) DeployTransaction(args ...any) (*models.DeployTransaction, error) {
	ret := m.Called(args...)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*models.DeployTransaction), ret.Error(1)
}

func (m *MockFactory) Deploy(ctx context.Context, args ...any) (usecase.PendingDeployment, error) {
	ret := m.Called(append([]any{ctx}, args...)...)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(usecase.PendingDeployment), ret.Error(1)
}

// MockSigner is a mock implementation of Signer
type MockSigner struct {
	mock.Mock
	address common.Address
	chainID uint64
}

func (m *MockSigner) Address() common.Address { return m.address }
func (m *MockSigner) ChainID() uint64         { return m.chainID }

func (m *MockSigner) GetBalance(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockSigner) EstimateGas(ctx context.Context, tx *models.DeployTransaction) (uint64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockSigner) GetGasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockPending is a mock implementation of PendingDeployment
type MockPending struct {
	mock.Mock
	address common.Address
	txHash  common.Hash
}

func (m *MockPending) Address() common.Address { return m.address }
func (m *MockPending) TxHash() common.Hash     { return m.txHash }

func (m *MockPending) Deployed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockReporter is a mock implementation of DeployReporter
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) ReportBalance(ctx context.Context, signer common.Address, balance *big.Int) {
	m.Called(ctx, signer, balance)
}

func (m *MockReporter) ReportGasEstimate(ctx context.Context, contractName string, estimate models.GasEstimate) {
	m.Called(ctx, contractName, estimate)
}

func (m *MockReporter) ReportDeploying(ctx context.Context, contractName string, txHash common.Hash) {
	m.Called(ctx, contractName, txHash)
}

func (m *MockReporter) ReportDeployed(ctx context.Context, contract models.DeployedContract) {
	m.Called(ctx, contract)
}

// MockDeploymentStore is a mock implementation of DeploymentStore
type MockDeploymentStore struct {
	mock.Mock
}

func (m *MockDeploymentStore) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}

func (m *MockDeploymentStore) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) Networks() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockNetworkResolver) Resolve(name string) (*config.Network, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

func (m *MockNetworkResolver) ExplorerURL(name string, chainID uint64) string {
	return m.Called(name, chainID).String(0)
}

// MockChainIDFetcher is a mock implementation of ChainIDFetcher
type MockChainIDFetcher struct {
	mock.Mock
}

func (m *MockChainIDFetcher) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// MockDeploymentLister is a mock implementation of DeploymentLister
type MockDeploymentLister struct {
	mock.Mock
}

func (m *MockDeploymentLister) ListDeployments(ctx context.Context, chainID uint64) []*models.Deployment {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.Deployment)
}

// MockNodeManager is a mock implementation of NodeManager
type MockNodeManager struct {
	mock.Mock
}

func (m *MockNodeManager) Node(name, port, chainID string) *models.LocalNode {
	return m.Called(name, port, chainID).Get(0).(*models.LocalNode)
}

func (m *MockNodeManager) Start(ctx context.Context, node *models.LocalNode) error {
	return m.Called(ctx, node).Error(0)
}

func (m *MockNodeManager) Stop(ctx context.Context, node *models.LocalNode) error {
	return m.Called(ctx, node).Error(0)
}

func (m *MockNodeManager) GetStatus(ctx context.Context, node *models.LocalNode) (*models.NodeStatus, error) {
	args := m.Called(ctx, node)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NodeStatus), args.Error(1)
}
