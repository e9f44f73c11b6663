package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	addressStyle   = color.New(color.FgWhite)
	timestampStyle = color.New(color.Faint)
	contractStyle  = color.New(color.FgGreen, color.Bold)
)

// DeploymentsRenderer renders recorded deployments as a table
type DeploymentsRenderer struct {
	out     io.Writer
	printer *message.Printer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

func (r *DeploymentsRenderer) Render(result *usecase.ListDeploymentsResult) error {
	if len(result.Deployments) == 0 {
		if result.ChainID != 0 {
			fmt.Fprintf(r.out, "No deployments found on chain %d\n", result.ChainID)
		} else {
			fmt.Fprintln(r.out, "No deployments found")
		}
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "CHAIN", "ADDRESS", "GAS", "COST (ETH)", "DEPLOYED"})
	for _, dep := range result.Deployments {
		t.AppendRow(table.Row{
			contractStyle.Sprint(dep.ContractName),
			r.chainLabel(dep),
			addressStyle.Sprint(dep.Address.Hex()),
			r.printer.Sprintf("%d", dep.Gas.GasUnits),
			models.FormatEther(dep.Gas.TotalCostWei),
			timestampStyle.Sprint(dep.CreatedAt.Format("2006-01-02 15:04:05")),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total deployments: %d\n", len(result.Deployments))
	return nil
}

func (r *DeploymentsRenderer) chainLabel(dep *models.Deployment) string {
	if dep.Network == "" {
		return fmt.Sprintf("%d", dep.ChainID)
	}
	return fmt.Sprintf("%s (%d)", dep.Network, dep.ChainID)
}

var _ Renderer[*usecase.ListDeploymentsResult] = (*DeploymentsRenderer)(nil)
