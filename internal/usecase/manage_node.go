package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
)

// NodeOperation is one of the local node commands
type NodeOperation string

const (
	NodeStart   NodeOperation = "start"
	NodeStop    NodeOperation = "stop"
	NodeRestart NodeOperation = "restart"
	NodeStatus  NodeOperation = "status"
)

// ManageNodeParams contains parameters for node operations
type ManageNodeParams struct {
	Operation NodeOperation
	Name      string
	Port      string
	ChainID   string
}

// ManageNodeResult contains the result of node operations
type ManageNodeResult struct {
	Operation NodeOperation
	Node      *models.LocalNode
	Status    *models.NodeStatus
	Message   string
}

// ManageNode starts, stops and inspects the local anvil node
type ManageNode struct {
	manager NodeManager
}

// NewManageNode creates a new node management use case
func NewManageNode(manager NodeManager) *ManageNode {
	return &ManageNode{manager: manager}
}

// Run performs the node operation
func (uc *ManageNode) Run(ctx context.Context, params ManageNodeParams) (*ManageNodeResult, error) {
	node := uc.manager.Node(params.Name, params.Port, params.ChainID)

	switch params.Operation {
	case NodeStart:
		return uc.start(ctx, node)
	case NodeStop:
		return uc.stop(ctx, node)
	case NodeRestart:
		if _, err := uc.stop(ctx, node); err != nil {
			return nil, err
		}
		result, err := uc.start(ctx, node)
		if err != nil {
			return nil, err
		}
		result.Operation = NodeRestart
		result.Message = fmt.Sprintf("Anvil '%s' restarted with PID %d", node.Name, result.Status.PID)
		return result, nil
	case NodeStatus:
		status, err := uc.manager.GetStatus(ctx, node)
		if err != nil {
			return nil, fmt.Errorf("failed to get status: %w", err)
		}
		return &ManageNodeResult{Operation: NodeStatus, Node: node, Status: status}, nil
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}
}

func (uc *ManageNode) start(ctx context.Context, node *models.LocalNode) (*ManageNodeResult, error) {
	status, err := uc.manager.GetStatus(ctx, node)
	if err == nil && status.Running {
		return nil, fmt.Errorf("anvil '%s' is already running (PID %d)", node.Name, status.PID)
	}

	if err := uc.manager.Start(ctx, node); err != nil {
		return nil, err
	}

	status, err = uc.manager.GetStatus(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("failed to get status after start: %w", err)
	}

	return &ManageNodeResult{
		Operation: NodeStart,
		Node:      node,
		Status:    status,
		Message:   fmt.Sprintf("Anvil '%s' started with PID %d", node.Name, status.PID),
	}, nil
}

func (uc *ManageNode) stop(ctx context.Context, node *models.LocalNode) (*ManageNodeResult, error) {
	status, err := uc.manager.GetStatus(ctx, node)
	if err != nil || !status.Running {
		return &ManageNodeResult{
			Operation: NodeStop,
			Node:      node,
			Status:    status,
			Message:   fmt.Sprintf("Anvil '%s' is not running", node.Name),
		}, nil
	}

	if err := uc.manager.Stop(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to stop anvil: %w", err)
	}

	return &ManageNodeResult{
		Operation: NodeStop,
		Node:      node,
		Message:   "Anvil stopped",
	}, nil
}
