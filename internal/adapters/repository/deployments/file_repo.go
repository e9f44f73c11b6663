package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-deploy/internal/domain"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

const DeploymentsFile = "deployments.json"

// FileRepository stores deployment records in a json file under the data dir
type FileRepository struct {
	dataDir     string
	mu          sync.RWMutex
	deployments map[string]*models.Deployment
}

// NewFileRepository loads the deployments file from dataDir, if present
func NewFileRepository(dataDir string) (*FileRepository, error) {
	m := &FileRepository{
		dataDir:     dataDir,
		deployments: make(map[string]*models.Deployment),
	}

	if err := m.load(); err != nil {
		return nil, fmt.Errorf("failed to load deployments: %w", err)
	}

	return m, nil
}

// NewFileRepositoryFromConfig creates a new FileRepository from RuntimeConfig
func NewFileRepositoryFromConfig(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepository(cfg.DataDir)
}

func (m *FileRepository) load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(m.dataDir, DeploymentsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(data, &m.deployments)
}

// save writes the file atomically through a temp file
func (m *FileRepository) save() error {
	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(m.dataDir, DeploymentsFile)
	data, err := json.MarshalIndent(m.deployments, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// GetDeployment retrieves a deployment by ID
func (m *FileRepository) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dep, exists := m.deployments[id]
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Clone to avoid mutations
	clone := *dep
	return &clone, nil
}

// ListDeployments returns all deployments on a chain, oldest first. A zero chainID lists every chain.
func (m *FileRepository) ListDeployments(ctx context.Context, chainID uint64) []*models.Deployment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := lo.FilterMap(lo.Values(m.deployments), func(dep *models.Deployment, _ int) (*models.Deployment, bool) {
		if chainID != 0 && dep.ChainID != chainID {
			return nil, false
		}
		clone := *dep
		return &clone, true
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// SaveDeployment saves or replaces a deployment and persists the file
func (m *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if deployment.CreatedAt.IsZero() {
		deployment.CreatedAt = time.Now()
	}

	m.deployments[deployment.ID] = deployment

	return m.save()
}

var _ usecase.DeploymentStore = (*FileRepository)(nil)
