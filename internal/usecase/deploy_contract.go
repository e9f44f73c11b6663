package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	ContractName    string
	ConstructorArgs []any
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Contract models.DeployedContract
	Balance  string
	Gas      models.GasEstimate
}

// DeployContract deploys a single contract and reports every step
type DeployContract struct {
	config   *config.RuntimeConfig
	provider ContractFactoryProvider
	reporter DeployReporter
	store    DeploymentStore
	log      *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	provider ContractFactoryProvider,
	reporter DeployReporter,
	store DeploymentStore,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:   cfg,
		provider: provider,
		reporter: reporter,
		store:    store,
		log:      log,
	}
}

// Run executes the deployment. Errors from the factory, signer and network
// are returned exactly as produced.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	req := models.DeploymentRequest{
		ContractName:    params.ContractName,
		ConstructorArgs: params.ConstructorArgs,
	}

	factory, err := uc.provider.GetContractFactory(ctx, req.ContractName)
	if err != nil {
		return nil, err
	}
	signer := factory.Signer()

	balance, err := signer.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	uc.reporter.ReportBalance(ctx, signer.Address(), balance)

	deployTx, err := factory.DeployTransaction(req.ConstructorArgs...)
	if err != nil {
		return nil, err
	}

	gasUnits, err := signer.EstimateGas(ctx, deployTx)
	if err != nil {
		return nil, err
	}
	gasPrice, err := signer.GetGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	estimate := models.NewGasEstimate(gasUnits, gasPrice)
	uc.reporter.ReportGasEstimate(ctx, req.ContractName, estimate)

	pending, err := factory.Deploy(ctx, req.ConstructorArgs...)
	if err != nil {
		return nil, err
	}
	uc.reporter.ReportDeploying(ctx, req.ContractName, pending.TxHash())

	if err := pending.Deployed(ctx); err != nil {
		return nil, err
	}

	deployed := models.DeployedContract{
		Name:    req.ContractName,
		Address: pending.Address(),
		TxHash:  pending.TxHash(),
	}
	uc.reporter.ReportDeployed(ctx, deployed)

	uc.record(ctx, factory, signer, deployed, estimate)

	return &DeployContractResult{
		Contract: deployed,
		Balance:  models.FormatEther(balance),
		Gas:      estimate,
	}, nil
}

// record persists the deployment; the transaction is already on-chain so a
// failure here is only logged.
func (uc *DeployContract) record(ctx context.Context, factory ContractFactory, signer Signer, deployed models.DeployedContract, estimate models.GasEstimate) {
	if uc.store == nil {
		return
	}

	name, artifact := deployed.Name, ""
	if contract := factory.Contract(); contract != nil {
		name, artifact = contract.Name, contract.FullName()
	}

	deployment := &models.Deployment{
		ID:           models.DeploymentID(signer.ChainID(), name),
		ChainID:      signer.ChainID(),
		ContractName: name,
		Artifact:     artifact,
		Address:      deployed.Address,
		TxHash:       deployed.TxHash,
		Deployer:     signer.Address(),
		Gas:          estimate,
		CreatedAt:    time.Now().UTC(),
	}
	if uc.config != nil && uc.config.Network != nil {
		deployment.Network = uc.config.Network.Name
	}

	if err := uc.store.SaveDeployment(ctx, deployment); err != nil {
		uc.log.Warn("failed to record deployment", "id", deployment.ID, "error", err)
		return
	}
	uc.log.Debug("recorded deployment", "id", deployment.ID, "address", deployed.Address.Hex())
}
