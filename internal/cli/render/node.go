package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// NodeRenderer renders local node operations
type NodeRenderer struct {
	out io.Writer
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(out io.Writer) *NodeRenderer {
	return &NodeRenderer{out: out}
}

func (r *NodeRenderer) Render(result *usecase.ManageNodeResult) error {
	if result.Operation != usecase.NodeStatus {
		color.New(color.FgGreen).Fprintf(r.out, "✅ %s\n", result.Message)
		if result.Status != nil && result.Status.Running {
			color.New(color.FgBlue).Fprintf(r.out, "🌐 RPC URL: %s\n", result.Status.RPCURL)
			color.New(color.FgYellow).Fprintf(r.out, "📋 Logs: %s\n", result.Status.LogFile)
		}
		return nil
	}

	status := result.Status
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📊 Anvil Status ('%s'):\n", result.Node.Name)

	if !status.Running {
		color.New(color.FgRed).Fprintln(r.out, "Status: 🔴 Not running")
		color.New(color.FgHiBlack).Fprintf(r.out, "PID file: %s\n", result.Node.PidFile)
		color.New(color.FgHiBlack).Fprintf(r.out, "Log file: %s\n", result.Node.LogFile)
		return nil
	}

	color.New(color.FgGreen).Fprintf(r.out, "Status: 🟢 Running (PID %d)\n", status.PID)
	color.New(color.FgBlue).Fprintf(r.out, "RPC URL: %s\n", status.RPCURL)
	color.New(color.FgYellow).Fprintf(r.out, "Log file: %s\n", status.LogFile)
	if status.RPCHealthy {
		color.New(color.FgGreen).Fprintf(r.out, "RPC Health: ✅ Responding (chain %d)\n", status.ChainID)
	} else {
		color.New(color.FgRed).Fprintf(r.out, "RPC Health: ❌ Not responding (%s)\n", status.Error)
	}
	fmt.Fprintln(r.out)
	return nil
}

var _ Renderer[*usecase.ManageNodeResult] = (*NodeRenderer)(nil)
