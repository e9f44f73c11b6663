//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-deploy/internal/adapters"
	"github.com/trebuchet-org/treb-deploy/internal/cli/render"
	"github.com/trebuchet-org/treb-deploy/internal/config"
	"github.com/trebuchet-org/treb-deploy/internal/logging"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, out io.Writer) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Renderers
		render.NewDeployRenderer,
		wire.Bind(new(usecase.DeployReporter), new(*render.DeployRenderer)),
		render.NewNetworksRenderer,
		render.NewDeploymentsRenderer,
		render.NewNodeRenderer,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListNetworks,
		usecase.NewListDeployments,
		usecase.NewManageNode,

		// App
		NewApp,
	)
	return nil, nil
}
