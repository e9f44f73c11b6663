package app

import (
	"log/slog"

	"github.com/trebuchet-org/treb-deploy/internal/cli/render"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract  *usecase.DeployContract
	ListNetworks    *usecase.ListNetworks
	ListDeployments *usecase.ListDeployments
	ManageNode      *usecase.ManageNode

	// Renderers
	DeployRenderer      *render.DeployRenderer
	NetworksRenderer    render.Renderer[*usecase.ListNetworksResult]
	DeploymentsRenderer render.Renderer[*usecase.ListDeploymentsResult]
	NodeRenderer        render.Renderer[*usecase.ManageNodeResult]
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	listNetworks *usecase.ListNetworks,
	listDeployments *usecase.ListDeployments,
	manageNode *usecase.ManageNode,
	deployRenderer *render.DeployRenderer,
	networksRenderer *render.NetworksRenderer,
	deploymentsRenderer *render.DeploymentsRenderer,
	nodeRenderer *render.NodeRenderer,
) (*App, error) {
	return &App{
		Config:              cfg,
		Log:                 log,
		DeployContract:      deployContract,
		ListNetworks:        listNetworks,
		ListDeployments:     listDeployments,
		ManageNode:          manageNode,
		DeployRenderer:      deployRenderer,
		NetworksRenderer:    networksRenderer,
		DeploymentsRenderer: deploymentsRenderer,
		NodeRenderer:        nodeRenderer,
	}, nil
}
