package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// Backend is the subset of an RPC client needed to deploy contracts.
// Both *ethclient.Client and the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Factory builds and submits creation transactions for one artifact
type Factory struct {
	contract *models.Contract
	abi      abi.ABI
	bytecode []byte
	backend  Backend
	opts     *bind.TransactOpts
	signer   *Signer
}

// NewFactory creates a factory signing with opts on the given chain
func NewFactory(contract *models.Contract, contractABI abi.ABI, bytecode []byte, backend Backend, opts *bind.TransactOpts, chainID uint64) *Factory {
	return &Factory{
		contract: contract,
		abi:      contractABI,
		bytecode: bytecode,
		backend:  backend,
		opts:     opts,
		signer: &Signer{
			address: opts.From,
			chainID: chainID,
			backend: backend,
		},
	}
}

func (f *Factory) Signer() usecase.Signer {
	return f.signer
}

func (f *Factory) Contract() *models.Contract {
	return f.contract
}

// DeployTransaction returns the creation transaction: bytecode followed by the encoded constructor args
func (f *Factory) DeployTransaction(args ...any) (*models.DeployTransaction, error) {
	coerced, err := CoerceArgs(f.abi.Constructor.Inputs, args)
	if err != nil {
		return nil, err
	}

	packed, err := f.abi.Pack("", coerced...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	data := make([]byte, 0, len(f.bytecode)+len(packed))
	data = append(data, f.bytecode...)
	data = append(data, packed...)

	return &models.DeployTransaction{
		From:  f.opts.From,
		Data:  data,
		Value: new(big.Int),
	}, nil
}

// Deploy signs and submits the creation transaction without waiting for it to be mined
func (f *Factory) Deploy(ctx context.Context, args ...any) (usecase.PendingDeployment, error) {
	coerced, err := CoerceArgs(f.abi.Constructor.Inputs, args)
	if err != nil {
		return nil, err
	}

	opts := *f.opts
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(&opts, f.abi, f.bytecode, f.backend, coerced...)
	if err != nil {
		return nil, fmt.Errorf("failed to submit deployment: %w", err)
	}

	return &pendingDeployment{
		address: address,
		tx:      tx,
		backend: f.backend,
	}, nil
}

// Signer reads account state for the deploying key
type Signer struct {
	address common.Address
	chainID uint64
	backend Backend
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) ChainID() uint64 {
	return s.chainID
}

func (s *Signer) GetBalance(ctx context.Context) (*big.Int, error) {
	return s.backend.BalanceAt(ctx, s.address, nil)
}

func (s *Signer) EstimateGas(ctx context.Context, tx *models.DeployTransaction) (uint64, error) {
	return s.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  tx.From,
		Data:  tx.Data,
		Value: tx.Value,
	})
}

func (s *Signer) GetGasPrice(ctx context.Context) (*big.Int, error) {
	return s.backend.SuggestGasPrice(ctx)
}

type pendingDeployment struct {
	address common.Address
	tx      *types.Transaction
	backend Backend
}

func (p *pendingDeployment) Address() common.Address {
	return p.address
}

func (p *pendingDeployment) TxHash() common.Hash {
	return p.tx.Hash()
}

// Deployed polls for the receipt and checks code exists at the new address
func (p *pendingDeployment) Deployed(ctx context.Context) error {
	address, err := bind.WaitDeployed(ctx, p.backend, p.tx)
	if err != nil {
		return err
	}
	if address != p.address {
		return fmt.Errorf("contract deployed to %s, expected %s", address.Hex(), p.address.Hex())
	}
	return nil
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.ContractFactory   = (*Factory)(nil)
	_ usecase.Signer            = (*Signer)(nil)
	_ usecase.PendingDeployment = (*pendingDeployment)(nil)
)
