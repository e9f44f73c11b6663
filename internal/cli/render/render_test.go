package render

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

type recordingIndicator struct {
	started []string
	stops   int
}

func (r *recordingIndicator) Start(message string) { r.started = append(r.started, message) }
func (r *recordingIndicator) Stop()                { r.stops++ }

func init() {
	color.NoColor = true
}

func TestDeployRenderer(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	indicator := &recordingIndicator{}
	r := NewDeployRenderer(&buf, indicator)

	balance, _ := new(big.Int).SetString("10000000000000000000000", 10)
	r.ReportBalance(ctx, common.Address{}, balance)
	r.ReportGasEstimate(ctx, "Persona", models.NewGasEstimate(1_500_000, big.NewInt(20_000_000_000)))

	txHash := common.HexToHash("0xabc")
	r.ReportDeploying(ctx, "Persona", txHash)
	assert.Equal(t, []string{"Waiting for Persona deployment (tx " + txHash.Hex() + ")"}, indicator.started)

	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	r.ReportDeployed(ctx, models.DeployedContract{Name: "Persona", Address: address, TxHash: txHash})
	assert.Equal(t, 1, indicator.stops)

	assert.Equal(t, "Balance: 10000.0\n"+
		"Estimated gas for Persona: 1500000\n"+
		"Estimated gas price for Persona: 0.03\n"+
		"Persona deployed to 0x5FbDB2315678afecb367f032d93F642f64180aa3\n", buf.String())
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{
		Networks: []usecase.NetworkStatus{
			{Name: "base", RPCURL: "https://base.example.org", ChainID: 8453, Explorer: "https://basescan.org"},
			{Name: "offline", RPCURL: "http://10.0.0.1:8545", Error: errors.New("connection refused")},
		},
	})
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Available Networks")
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "8453")
	assert.Contains(t, out, "https://basescan.org")
	assert.Contains(t, out, "Error: connection refused")
}

func TestNetworksRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewNetworksRenderer(&buf).Render(&usecase.ListNetworksResult{}))
	assert.Equal(t, "No networks configured in foundry.toml [rpc_endpoints]\n", buf.String())
}

func TestDeploymentsRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewDeploymentsRenderer(&buf).Render(&usecase.ListDeploymentsResult{
		ChainID: 31337,
		Deployments: []*models.Deployment{{
			ID:           "31337/Persona",
			ChainID:      31337,
			Network:      "localhost",
			ContractName: "Persona",
			Address:      common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			Gas:          models.NewGasEstimate(1_500_000, big.NewInt(20_000_000_000)),
			CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}},
	})
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Persona")
	assert.Contains(t, out, "localhost (31337)")
	assert.Contains(t, out, "1,500,000")
	assert.Contains(t, out, "0.03")
	assert.Contains(t, out, "2024-05-01 12:00:00")
	assert.Contains(t, out, "Total deployments: 1")
}

func TestDeploymentsRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewDeploymentsRenderer(&buf).Render(&usecase.ListDeploymentsResult{ChainID: 1}))
	assert.Equal(t, "No deployments found on chain 1\n", buf.String())
}

func TestNodeRenderer(t *testing.T) {
	node := &models.LocalNode{Name: "anvil", Port: "8545", PidFile: "/tmp/anvil.pid", LogFile: "/tmp/anvil.log"}

	t.Run("started", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNodeRenderer(&buf).Render(&usecase.ManageNodeResult{
			Operation: usecase.NodeStart,
			Node:      node,
			Status:    &models.NodeStatus{Running: true, PID: 42, RPCURL: "http://localhost:8545", LogFile: "/tmp/anvil.log"},
			Message:   "Anvil 'anvil' started with PID 42",
		})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Anvil 'anvil' started with PID 42")
		assert.Contains(t, buf.String(), "RPC URL: http://localhost:8545")
	})

	t.Run("status unhealthy", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNodeRenderer(&buf).Render(&usecase.ManageNodeResult{
			Operation: usecase.NodeStatus,
			Node:      node,
			Status:    &models.NodeStatus{Running: true, PID: 42, Error: "connection refused"},
		})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Running (PID 42)")
		assert.Contains(t, buf.String(), "Not responding (connection refused)")
	})

	t.Run("status stopped", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNodeRenderer(&buf).Render(&usecase.ManageNodeResult{
			Operation: usecase.NodeStatus,
			Node:      node,
			Status:    &models.NodeStatus{},
		})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Not running")
		assert.Contains(t, buf.String(), "PID file: /tmp/anvil.pid")
	})
}
