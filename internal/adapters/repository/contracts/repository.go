package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-deploy/internal/domain"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
	"github.com/trebuchet-org/treb-deploy/internal/usecase"
)

// Repository discovers and indexes contracts and their artifacts
type Repository struct {
	projectRoot   string
	outDir        string
	skipBuild     bool
	contracts     map[string]*models.Contract   // key: "path:contractName"
	contractNames map[string][]*models.Contract // key: contract name, value: all contracts with that name
	log           *slog.Logger
	mu            sync.RWMutex
	indexed       bool
}

// NewRepository creates a new contract indexer
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot:   cfg.ProjectRoot,
		outDir:        cfg.FoundryConfig.OutDir(cfg.Profile),
		skipBuild:     cfg.SkipBuild,
		log:           log,
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
	}
}

// Index discovers all contracts and artifacts
func (i *Repository) Index(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.indexed {
		return nil
	}

	i.contracts = make(map[string]*models.Contract)
	i.contractNames = make(map[string][]*models.Contract)

	if !i.skipBuild {
		if err := i.runForgeBuild(ctx); err != nil {
			return fmt.Errorf("failed to build contracts: %w", err)
		}
	}

	outDir := i.outDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(i.projectRoot, outDir)
	}
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		return fmt.Errorf("artifact directory %s not found (run forge build)", outDir)
	}

	err := filepath.Walk(outDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}
		return i.processArtifact(path)
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	i.indexed = true
	i.log.Debug("indexed contracts", "count", len(i.contracts), "outDir", outDir)
	return nil
}

// runForgeBuild runs forge build command
func (i *Repository) runForgeBuild(ctx context.Context) error {
	i.log.Debug("running forge build", "dir", i.projectRoot)

	cmd := exec.CommandContext(ctx, "forge", "build")
	cmd.Dir = i.projectRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("forge build failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// processArtifact processes a single artifact file
func (i *Repository) processArtifact(artifactPath string) error {
	data, err := os.ReadFile(artifactPath) //nolint:gosec // paths come from walking the out dir
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Skip files that aren't artifacts
		i.log.Debug("skipping invalid artifact", "path", artifactPath, "error", err)
		return nil
	}

	// Extract contract name and source from compilation target
	var contractName, sourceName string
	for source, contract := range artifact.Metadata.Settings.CompilationTarget {
		sourceName = source
		contractName = contract
		break // There should only be one entry
	}

	if contractName == "" || sourceName == "" {
		return nil
	}

	relArtifactPath, _ := filepath.Rel(i.projectRoot, artifactPath)

	info := &models.Contract{
		Name:         contractName,
		Path:         sourceName,
		ArtifactPath: relArtifactPath,
		Artifact:     &artifact,
	}

	if _, exists := i.contracts[info.FullName()]; exists {
		return nil
	}
	i.contracts[info.FullName()] = info
	i.contractNames[info.Name] = append(i.contractNames[info.Name], info)

	return nil
}

// GetContract retrieves a contract by "path:Name", or by bare name when that name is unique
func (i *Repository) GetContract(ctx context.Context, key string) (*models.Contract, error) {
	if err := i.Index(ctx); err != nil {
		return nil, err
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	if contract, exists := i.contracts[key]; exists {
		return contract, nil
	}

	matches := i.contractNames[key]
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, key)
	case 1:
		return matches[0], nil
	default:
		return nil, &domain.AmbiguousContractError{Name: key, Matches: matches}
	}
}

// GetContractsByName returns every artifact compiled under the given contract name
func (i *Repository) GetContractsByName(ctx context.Context, name string) ([]*models.Contract, error) {
	if err := i.Index(ctx); err != nil {
		return nil, err
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	return append([]*models.Contract(nil), i.contractNames[name]...), nil
}

// GetAllContracts returns all indexed contracts sorted by full name
func (i *Repository) GetAllContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := i.Index(ctx); err != nil {
		return nil, err
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	result := lo.Values(i.contracts)
	sort.Slice(result, func(a, b int) bool {
		return strings.Compare(result[a].FullName(), result[b].FullName()) < 0
	})
	return result, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractRepository = (*Repository)(nil)
