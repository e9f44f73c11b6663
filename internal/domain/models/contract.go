package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Contract represents information about a discovered contract
type Contract struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// FullName returns the "path:Name" identifier used to disambiguate contracts
func (c *Contract) FullName() string {
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}

// HasBytecode reports whether the artifact can be deployed at all
func (c *Contract) HasBytecode() bool {
	if c.Artifact == nil {
		return false
	}
	obj := strings.TrimPrefix(c.Artifact.Bytecode.Object, "0x")
	return obj != ""
}

// NeedsLinking reports whether the creation bytecode still contains library placeholders
func (c *Contract) NeedsLinking() bool {
	if c.Artifact == nil {
		return false
	}
	return len(c.Artifact.Bytecode.LinkReferences) > 0 || strings.Contains(c.Artifact.Bytecode.Object, "__$")
}

// BytecodeObject represents bytecode information in a Foundry artifact
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// Artifact represents a Foundry compilation artifact
type Artifact struct {
	ABI               json.RawMessage   `json:"abi"`
	Bytecode          BytecodeObject    `json:"bytecode"`
	DeployedBytecode  BytecodeObject    `json:"deployedBytecode"`
	MethodIdentifiers map[string]string `json:"methodIdentifiers"`
	Metadata          ArtifactMetadata  `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}
