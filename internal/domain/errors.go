package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/treb-deploy/internal/domain/models"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrContractNotFound is returned when a contract can't be found
	ErrContractNotFound = errors.New("contract not found")

	// ErrNoBytecode is returned when an artifact has no creation bytecode
	// (abstract contracts, interfaces, or sources that were never compiled)
	ErrNoBytecode = errors.New("artifact has no bytecode")

	// ErrUnlinkedLibraries is returned when creation bytecode still has library placeholders
	ErrUnlinkedLibraries = errors.New("bytecode has unlinked libraries")

	// ErrNetworkMismatch is returned when the RPC reports a different chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrSenderNotFound is returned when no signing account is configured
	ErrSenderNotFound = errors.New("sender not found")

	// ErrUnsupportedSender is returned for sender types that can't sign locally
	ErrUnsupportedSender = errors.New("unsupported sender type")
)

// ResolutionError is returned when a contract name can't be turned into a deployable factory
type ResolutionError struct {
	Name        string
	Reason      error
	Suggestions []string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("cannot resolve contract %q: %v", e.Name, e.Reason)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Reason
}

// AmbiguousContractError is returned when a bare contract name matches several artifacts
type AmbiguousContractError struct {
	Name    string
	Matches []*models.Contract
}

func (e *AmbiguousContractError) Error() string {
	sorted := make([]*models.Contract, len(e.Matches))
	copy(sorted, e.Matches)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FullName() < sorted[j].FullName()
	})

	var suggestions []string
	for _, contract := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s (%s)", contract.Name, contract.Path))
	}

	return fmt.Sprintf("multiple contracts found matching %q - use full path:contract format to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}
