package anvil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

const (
	DefaultName = "anvil"
	DefaultPort = "8545"
)

// Manager runs anvil as a detached process tracked by a pid file in the data dir
type Manager struct {
	dataDir string
	binary  string
	fetcher usecase.ChainIDFetcher
	log     *slog.Logger

	// how long Start waits for the RPC to answer
	startTimeout time.Duration
}

// NewManager creates a new anvil manager
func NewManager(cfg *config.RuntimeConfig, fetcher usecase.ChainIDFetcher, log *slog.Logger) *Manager {
	return &Manager{
		dataDir:      cfg.DataDir,
		binary:       "anvil",
		fetcher:      fetcher,
		log:          log.With("component", "AnvilManager"),
		startTimeout: 10 * time.Second,
	}
}

// Node fills in defaults and the pid/log file locations for a node
func (m *Manager) Node(name, port, chainID string) *models.LocalNode {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	if strings.TrimSpace(port) == "" {
		port = DefaultPort
	}
	return &models.LocalNode{
		Name:    name,
		Port:    port,
		ChainID: strings.TrimSpace(chainID),
		PidFile: filepath.Join(m.dataDir, fmt.Sprintf("%s.pid", name)),
		LogFile: filepath.Join(m.dataDir, fmt.Sprintf("%s.log", name)),
	}
}

// Start launches anvil and waits until its RPC answers
func (m *Manager) Start(ctx context.Context, node *models.LocalNode) error {
	if _, running := m.runningPID(node); running {
		return fmt.Errorf("anvil '%s' is already running (PID file exists at %s)", node.Name, node.PidFile)
	}

	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	logFile, err := os.Create(node.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	// not tied to ctx: the node outlives this command
	cmd := exec.Command(m.binary, buildAnvilArgs(node)...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start anvil: %w", err)
	}

	// reap the child if this process outlives it
	go func() { _ = cmd.Wait() }()

	if err := writePidFile(node.PidFile, cmd.Process.Pid); err != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	m.log.Debug("anvil started", "name", node.Name, "pid", cmd.Process.Pid, "port", node.Port)

	if err := m.waitHealthy(ctx, node); err != nil {
		return fmt.Errorf("anvil started but RPC is not responding (see %s): %w", node.LogFile, err)
	}
	return nil
}

// Stop terminates the node, escalating to SIGKILL after five seconds
func (m *Manager) Stop(ctx context.Context, node *models.LocalNode) error {
	pid, running := m.runningPID(node)
	if !running {
		_ = os.Remove(node.PidFile)
		return nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process: %w", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for processAlive(pid) {
		if time.Now().After(deadline) {
			_ = process.Kill()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	if err := os.Remove(node.PidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	m.log.Debug("anvil stopped", "name", node.Name, "pid", pid)
	return nil
}

// GetStatus reports whether the node process is alive and its RPC answers
func (m *Manager) GetStatus(ctx context.Context, node *models.LocalNode) (*models.NodeStatus, error) {
	status := &models.NodeStatus{
		LogFile: node.LogFile,
	}

	pid, running := m.runningPID(node)
	if !running {
		return status, nil
	}
	status.Running = true
	status.PID = pid
	status.RPCURL = node.RPCURL()

	chainID, err := m.fetcher.FetchChainID(ctx, node.RPCURL())
	if err != nil {
		status.Error = err.Error()
		return status, nil
	}
	status.RPCHealthy = true
	status.ChainID = chainID
	return status, nil
}

func (m *Manager) waitHealthy(ctx context.Context, node *models.LocalNode) error {
	ctx, cancel := context.WithTimeout(ctx, m.startTimeout)
	defer cancel()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		_, err := m.fetcher.FetchChainID(ctx, node.RPCURL())
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return err
		case <-ticker.C:
		}
	}
}

func (m *Manager) runningPID(node *models.LocalNode) (int, bool) {
	pid, err := readPidFile(node.PidFile)
	if err != nil {
		return 0, false
	}
	return pid, processAlive(pid)
}

func buildAnvilArgs(node *models.LocalNode) []string {
	args := []string{"--port", node.Port, "--host", "0.0.0.0"}
	if node.ChainID != "" {
		args = append(args, "--chain-id", node.ChainID)
	}
	return args
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

func readPidFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %s", string(data))
	}
	return pid, nil
}

func writePidFile(path string, pid int) error {
	return os.WriteFile(path, []byte(strconv.Itoa(pid)), 0644)
}

var _ usecase.NodeManager = (*Manager)(nil)
