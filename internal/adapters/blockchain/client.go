package blockchain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	internalconfig "github.com/trebuchet-org/treb-deploy/internal/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// DialFunc opens a connection to an RPC endpoint
type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

func dialEthClient(ctx context.Context, rpcURL string) (Backend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// FactoryProvider builds contract factories bound to the configured network and sender
type FactoryProvider struct {
	config   *config.RuntimeConfig
	resolver usecase.ContractResolver
	dial     DialFunc
	log      *slog.Logger

	once    sync.Once
	backend Backend
	chainID uint64
	connErr error
}

// NewFactoryProvider creates a factory provider that dials the network's RPC URL
func NewFactoryProvider(cfg *config.RuntimeConfig, resolver usecase.ContractResolver, log *slog.Logger) *FactoryProvider {
	return NewFactoryProviderWithDialer(cfg, resolver, dialEthClient, log)
}

// NewFactoryProviderWithDialer is NewFactoryProvider with a custom dialer
func NewFactoryProviderWithDialer(cfg *config.RuntimeConfig, resolver usecase.ContractResolver, dial DialFunc, log *slog.Logger) *FactoryProvider {
	return &FactoryProvider{
		config:   cfg,
		resolver: resolver,
		dial:     dial,
		log:      log.With("component", "FactoryProvider"),
	}
}

// GetContractFactory resolves the artifact and binds it to the signing key
func (p *FactoryProvider) GetContractFactory(ctx context.Context, name string) (usecase.ContractFactory, error) {
	contract, err := p.resolver.ResolveContract(ctx, name)
	if err != nil {
		return nil, err
	}

	contractABI, err := abi.JSON(bytes.NewReader(contract.Artifact.ABI))
	if err != nil {
		return nil, &domain.ResolutionError{Name: name, Reason: fmt.Errorf("invalid ABI in %s: %w", contract.ArtifactPath, err)}
	}
	bytecode := common.FromHex(contract.Artifact.Bytecode.Object)

	sender, err := internalconfig.ResolveSender(p.config.FoundryConfig, p.config.Profile, p.config.Sender)
	if err != nil {
		return nil, err
	}

	backend, chainID, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(sender.PrivateKey, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	p.log.Debug("contract factory ready",
		"contract", contract.FullName(),
		"sender", sender.Address.Hex(),
		"chainId", chainID)

	return NewFactory(contract, contractABI, bytecode, backend, opts, chainID), nil
}

// connect dials once and verifies the endpoint serves the configured chain
func (p *FactoryProvider) connect(ctx context.Context) (Backend, uint64, error) {
	p.once.Do(func() {
		network := p.config.Network
		if network == nil {
			p.connErr = fmt.Errorf("network not specified")
			return
		}

		backend, err := p.dial(ctx, network.RPCURL)
		if err != nil {
			p.connErr = fmt.Errorf("failed to connect to RPC: %w", err)
			return
		}

		networkChainID, err := backend.ChainID(ctx)
		if err != nil {
			p.connErr = fmt.Errorf("failed to get chain ID: %w", err)
			return
		}

		// If chainID was 0, use the network's chain ID
		if network.ChainID == 0 {
			network.ChainID = networkChainID.Uint64()
		} else if networkChainID.Uint64() != network.ChainID {
			p.connErr = fmt.Errorf("%w: %s expects chain %d, RPC reports %d",
				domain.ErrNetworkMismatch, network.Name, network.ChainID, networkChainID.Uint64())
			return
		}

		p.backend = backend
		p.chainID = network.ChainID
	})
	return p.backend, p.chainID, p.connErr
}

// ChainIDFetcher queries eth_chainId from an RPC endpoint
type ChainIDFetcher struct {
	dial    DialFunc
	timeout time.Duration
}

// NewChainIDFetcher creates a fetcher with a 10 second per-endpoint timeout
func NewChainIDFetcher() *ChainIDFetcher {
	return &ChainIDFetcher{dial: dialEthClient, timeout: 10 * time.Second}
}

func (f *ChainIDFetcher) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	backend, err := f.dial(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.ContractFactoryProvider = (*FactoryProvider)(nil)
	_ usecase.ChainIDFetcher          = (*ChainIDFetcher)(nil)
)
