package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-deploy/internal/app"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy [contract] [args...]",
		Short: "Deploy a contract",
		Long: `Deploy a contract by name or path:Name. Remaining arguments are passed to
the constructor and converted to the types its ABI declares. Arrays are
given as JSON, e.g. '["0x..","0x.."]'.

Without a contract name the configured contract is deployed.`,
		Example: `  treb-deploy deploy
  treb-deploy deploy Persona --network sepolia
  treb-deploy deploy src/Registry.sol:Registry 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := app.Config.Contract
			if len(args) > 0 {
				name = args[0]
			}
			constructorArgs := lo.Map(lo.Drop(args, 1), func(arg string, _ int) any {
				return arg
			})

			return runDeploy(cmd, app, name, constructorArgs)
		},
	}
}

func runDeploy(cmd *cobra.Command, app *app.App, contractName string, constructorArgs []any) error {
	defer app.DeployRenderer.Close()

	_, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
		ContractName:    contractName,
		ConstructorArgs: constructorArgs,
	})
	return err
}
