package contracts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-deploy/internal/domain"
	"github.com/trebuchet-org/treb-deploy/internal/domain/config"
)

func writeArtifact(t *testing.T, root, rel, source, name, bytecode string) {
	t.Helper()
	content := fmt.Sprintf(`{
  "abi": [{"type": "constructor", "inputs": [], "stateMutability": "nonpayable"}],
  "bytecode": {"object": %q, "sourceMap": "", "linkReferences": {}},
  "deployedBytecode": {"object": "0x", "sourceMap": "", "linkReferences": {}},
  "metadata": {"settings": {"compilationTarget": {%q: %q}}}
}`, bytecode, source, name)
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	root := t.TempDir()
	writeArtifact(t, root, "out/Persona.sol/Persona.json", "src/Persona.sol", "Persona", "0x6080")
	writeArtifact(t, root, "out/Token.sol/Token.json", "src/Token.sol", "Token", "0x6080")
	writeArtifact(t, root, "out/v2/Token.sol/Token.json", "src/v2/Token.sol", "Token", "0x6081")
	writeArtifact(t, root, "out/IPersona.sol/IPersona.json", "src/IPersona.sol", "IPersona", "0x")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "out", "build-info"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "out", "build-info", "abc.json"), []byte(`{"id":"abc"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "out", "garbage.json"), []byte(`not json`), 0644))

	cfg := &config.RuntimeConfig{ProjectRoot: root, Profile: "default", SkipBuild: true}
	return NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRepositoryGetContract(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	t.Run("unique name", func(t *testing.T) {
		c, err := repo.GetContract(ctx, "Persona")
		require.NoError(t, err)
		assert.Equal(t, "src/Persona.sol", c.Path)
		assert.Equal(t, filepath.Join("out", "Persona.sol", "Persona.json"), c.ArtifactPath)
		assert.True(t, c.HasBytecode())
	})

	t.Run("full name", func(t *testing.T) {
		c, err := repo.GetContract(ctx, "src/v2/Token.sol:Token")
		require.NoError(t, err)
		assert.Equal(t, "0x6081", c.Artifact.Bytecode.Object)
	})

	t.Run("ambiguous name", func(t *testing.T) {
		_, err := repo.GetContract(ctx, "Token")
		var ambiguous *domain.AmbiguousContractError
		require.True(t, errors.As(err, &ambiguous))
		assert.Len(t, ambiguous.Matches, 2)
		assert.Contains(t, err.Error(), "src/v2/Token.sol")
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := repo.GetContract(ctx, "Missing")
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
	})
}

func TestRepositoryListing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	all, err := repo.GetAllContracts(ctx)
	require.NoError(t, err)
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.FullName()
	}
	assert.Equal(t, []string{
		"src/IPersona.sol:IPersona",
		"src/Persona.sol:Persona",
		"src/Token.sol:Token",
		"src/v2/Token.sol:Token",
	}, names)

	tokens, err := repo.GetContractsByName(ctx, "Token")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestRepositoryMissingOutDir(t *testing.T) {
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir(), SkipBuild: true}
	repo := NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.GetContract(context.Background(), "Persona")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRepositoryCustomOutDir(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "artifacts/Persona.sol/Persona.json", "src/Persona.sol", "Persona", "0x6080")
	cfg := &config.RuntimeConfig{
		ProjectRoot: root,
		Profile:     "default",
		SkipBuild:   true,
		FoundryConfig: &config.FoundryConfig{
			Profile: map[string]config.ProfileConfig{"default": {OutPath: "artifacts"}},
		},
	}
	repo := NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.GetContract(context.Background(), "Persona")
	require.NoError(t, err)
}
