package render

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

var (
	deployedNameStyle = color.New(color.FgGreen, color.Bold)
	deployedAddrStyle = color.New(color.FgCyan)
)

// DeployRenderer prints the deployment report as it happens
type DeployRenderer struct {
	out       io.Writer
	indicator progress.Indicator
}

// NewDeployRenderer creates a renderer writing report lines to out
func NewDeployRenderer(out io.Writer, indicator progress.Indicator) *DeployRenderer {
	return &DeployRenderer{
		out:       out,
		indicator: indicator,
	}
}

func (r *DeployRenderer) ReportBalance(ctx context.Context, signer common.Address, balance *big.Int) {
	fmt.Fprintf(r.out, "Balance: %s\n", models.FormatEther(balance))
}

func (r *DeployRenderer) ReportGasEstimate(ctx context.Context, contractName string, estimate models.GasEstimate) {
	fmt.Fprintf(r.out, "Estimated gas for %s: %d\n", contractName, estimate.GasUnits)
	fmt.Fprintf(r.out, "Estimated gas price for %s: %s\n", contractName, models.FormatEther(estimate.TotalCostWei))
}

func (r *DeployRenderer) ReportDeploying(ctx context.Context, contractName string, txHash common.Hash) {
	r.indicator.Start(fmt.Sprintf("Waiting for %s deployment (tx %s)", contractName, txHash.Hex()))
}

func (r *DeployRenderer) ReportDeployed(ctx context.Context, contract models.DeployedContract) {
	r.indicator.Stop()
	fmt.Fprintf(r.out, "%s deployed to %s\n",
		deployedNameStyle.Sprint(contract.Name),
		deployedAddrStyle.Sprint(contract.Address.Hex()))
}

// Close stops the indicator if the deployment failed while waiting
func (r *DeployRenderer) Close() {
	r.indicator.Stop()
}

var _ usecase.DeployReporter = (*DeployRenderer)(nil)
