package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-deploy/internal/app"
	"github.com/trebuchet-org/treb-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// AppInitializer builds the application for a command invocation
type AppInitializer func(v *viper.Viper, out io.Writer) (*app.App, error)

type rootOptions struct {
	initApp AppInitializer
	cancel  context.CancelFunc
}

func newRootOptions(opts ...Option) *rootOptions {
	options := &rootOptions{initApp: app.InitApp}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// release cancels the timeout context, if one was created
func (o *rootOptions) release() {
	if o.cancel != nil {
		o.cancel()
	}
}

// Option customizes the root command
type Option func(*rootOptions)

// WithAppInitializer replaces the wire-generated initializer
func WithAppInitializer(init AppInitializer) Option {
	return func(o *rootOptions) {
		o.initApp = init
	}
}

// Run executes the CLI and returns the process exit code
func Run(args []string, stdout, stderr io.Writer, opts ...Option) int {
	options := newRootOptions(opts...)
	defer options.release()

	rootCmd := newRootCmd(options)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd creates the root command. Without a subcommand it deploys the configured contract.
func NewRootCmd(opts ...Option) *cobra.Command {
	return newRootCmd(newRootOptions(opts...))
}

func newRootCmd(options *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treb-deploy",
		Short: "Deploy a compiled Foundry contract",
		Long: `treb-deploy deploys a compiled contract from the Foundry out/ directory.

Run without a subcommand it deploys the configured contract (Persona unless
--contract or the contract config key says otherwise), printing the sender
balance and the gas estimate before broadcasting.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			config.BindFlags(v, cmd)

			appInstance, err := options.initApp(v, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				ctx, options.cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			return runDeploy(cmd, app, app.Config.Contract, nil)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia, or an RPC URL)")
	rootCmd.PersistentFlags().String("sender", "", "Sender from [profile.<profile>.treb.senders] (defaults to 'deployer')")
	rootCmd.PersistentFlags().String("profile", "", "Foundry profile (defaults to 'default')")
	rootCmd.PersistentFlags().String("contract", "", "Contract deployed when no name is given (defaults to 'Persona')")
	rootCmd.PersistentFlags().Bool("skip-build", false, "Use existing artifacts instead of running forge build")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort if the command takes longer than this (0 waits indefinitely)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "main"
	rootCmd.AddCommand(listCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	nodeCmd := NewNodeCmd()
	nodeCmd.GroupID = "management"
	rootCmd.AddCommand(nodeCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
