package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// NewNodeCmd creates the node command group for the local anvil node
func NewNodeCmd() *cobra.Command {
	var (
		name    string
		port    string
		chainID string
	)

	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage the local anvil node",
		Long: `Start, stop and inspect a background anvil node for the localhost network.

The node's PID and log files are kept in .treb/.`,
	}

	run := func(op usecase.NodeOperation) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageNode.Run(cmd.Context(), usecase.ManageNodeParams{
				Operation: op,
				Name:      name,
				Port:      port,
				ChainID:   chainID,
			})
			if err != nil {
				return err
			}

			return app.NodeRenderer.Render(result)
		}
	}

	cmd.AddCommand(
		&cobra.Command{Use: "start", Short: "Start the node", Args: cobra.NoArgs, RunE: run(usecase.NodeStart)},
		&cobra.Command{Use: "stop", Short: "Stop the node", Args: cobra.NoArgs, RunE: run(usecase.NodeStop)},
		&cobra.Command{Use: "restart", Short: "Restart the node", Args: cobra.NoArgs, RunE: run(usecase.NodeRestart)},
		&cobra.Command{Use: "status", Short: "Show node status", Args: cobra.NoArgs, RunE: run(usecase.NodeStatus)},
	)

	cmd.PersistentFlags().StringVar(&name, "name", "", "Node name (defaults to 'anvil')")
	cmd.PersistentFlags().StringVar(&port, "port", "", "Port to listen on (defaults to 8545)")
	cmd.PersistentFlags().StringVar(&chainID, "chain-id", "", "Chain ID for a new node (anvil defaults to 31337)")

	return cmd
}
