package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		contractName string
		allChains    bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List deployments recorded in .treb/deployments.json for the selected network.

Use --all to include every chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				ContractName: contractName,
				AllChains:    allChains,
			})
			if err != nil {
				return err
			}

			return app.DeploymentsRenderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "name", "", "Only show deployments of this contract")
	cmd.Flags().BoolVar(&allChains, "all", false, "Show deployments on every chain")

	return cmd
}
