package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render prints one row per network with its chain ID, or the error reaching it
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in foundry.toml [rpc_endpoints]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "RPC URL", "EXPLORER"})
	for _, network := range result.Networks {
		if network.Error != nil {
			t.AppendRow(table.Row{
				color.New(color.FgRed).Sprint("❌ " + network.Name),
				"-",
				network.RPCURL,
				color.New(color.FgRed).Sprintf("Error: %v", network.Error),
			})
			continue
		}
		t.AppendRow(table.Row{
			color.New(color.FgGreen).Sprint("✅ " + network.Name),
			strconv.FormatUint(network.ChainID, 10),
			network.RPCURL,
			network.Explorer,
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
